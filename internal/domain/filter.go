package domain

import "strings"

// Filter represents task filtering state
type Filter struct {
	Priority    map[Priority]bool
	Assignee    string
	OverdueOnly bool
	SearchQuery string
}

// NewFilter creates a new empty filter
func NewFilter() *Filter {
	return &Filter{
		Priority: make(map[Priority]bool),
	}
}

// IsActive returns true if any filter is active
func (f *Filter) IsActive() bool {
	return len(f.Priority) > 0 ||
		f.Assignee != "" ||
		f.OverdueOnly ||
		f.SearchQuery != ""
}

// Apply filters a list of tasks. now is used for the overdue check.
func (f *Filter) Apply(tasks []Task, now Clock) []Task {
	if !f.IsActive() {
		return tasks
	}

	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task, now) {
			result = append(result, task)
		}
	}
	return result
}

// Matches returns true if the task passes all active filters.
// AND logic between filter kinds, OR logic within the priority set.
func (f *Filter) Matches(t Task, now Clock) bool {
	if len(f.Priority) > 0 && !f.Priority[t.Priority] {
		return false
	}

	if f.Assignee != "" && !strings.EqualFold(t.Assignee, f.Assignee) {
		return false
	}

	if f.OverdueOnly && !t.IsOverdue(now()) {
		return false
	}

	if f.SearchQuery != "" {
		q := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			return false
		}
	}

	return true
}
