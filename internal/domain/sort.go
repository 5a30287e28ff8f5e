package domain

import "sort"

// SortField represents a field to sort by
type SortField string

const (
	SortByPriority SortField = "priority"
	SortByDueDate  SortField = "due"
	SortByUpdated  SortField = "updated"
)

// SortOrder represents sort direction
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// Sort represents sorting state
type Sort struct {
	Field SortField
	Order SortOrder
}

// Toggle toggles the sort field or direction. Selecting a new field starts
// ascending; selecting the current field flips the direction.
func (s *Sort) Toggle(field SortField) {
	if s.Field == field {
		if s.Order == SortAsc {
			s.Order = SortDesc
		} else {
			s.Order = SortAsc
		}
	} else {
		s.Field = field
		s.Order = SortAsc
	}
}

// priorityRank orders priorities for sorting (high first in ascending).
func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Apply returns a sorted copy of tasks; the input slice is not modified.
// Tasks without a due date sort after dated ones regardless of direction.
func (s Sort) Apply(tasks []Task) []Task {
	if len(tasks) == 0 {
		return tasks
	}

	result := make([]Task, len(tasks))
	copy(result, tasks)

	switch s.Field {
	case SortByPriority:
		sort.SliceStable(result, func(i, j int) bool {
			if s.Order == SortAsc {
				return priorityRank(result[i].Priority) < priorityRank(result[j].Priority)
			}
			return priorityRank(result[i].Priority) > priorityRank(result[j].Priority)
		})

	case SortByDueDate:
		sort.SliceStable(result, func(i, j int) bool {
			di, dj := result[i].DueDate, result[j].DueDate
			if (di == "") != (dj == "") {
				return di != ""
			}
			if s.Order == SortAsc {
				return di < dj
			}
			return di > dj
		})

	case SortByUpdated:
		sort.SliceStable(result, func(i, j int) bool {
			if s.Order == SortAsc {
				return result[i].UpdatedAt.Before(result[j].UpdatedAt)
			}
			return result[i].UpdatedAt.After(result[j].UpdatedAt)
		})
	}

	return result
}
