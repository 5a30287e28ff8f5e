package board

import (
	"time"

	"boardkit/internal/domain"
)

// Stats is a read-only summary of the board.
type Stats struct {
	Tasks        int
	Columns      int
	ByPriority   map[domain.Priority]int
	Overdue      int
	DueToday     int
	LastModified time.Time
}

// Stats computes the summary in a single pass over the tasks. It never
// mutates the board.
func (b Board) Stats(now time.Time) Stats {
	s := Stats{
		Tasks:        len(b.Tasks),
		Columns:      len(b.Columns),
		ByPriority:   make(map[domain.Priority]int, 3),
		LastModified: b.LastModified,
	}
	for _, t := range b.Tasks {
		s.ByPriority[t.Priority]++
		if t.IsOverdue(now) {
			s.Overdue++
		}
		if t.IsDueToday(now) {
			s.DueToday++
		}
	}
	return s
}
