// Package domain contains the core entity types for the boardkit task board.
package domain

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Field limits for Task validation.
const (
	MaxTaskTitleLen   = 100
	MaxDescriptionLen = 500
	MaxAssigneeLen    = 50
	DueDateLayout     = "2006-01-02"
)

// Priority represents task priority
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// String returns the display string
func (p Priority) String() string {
	return string(p)
}

// Task represents a single work item on the board
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Assignee    string    `json:"assignee"`
	DueDate     string    `json:"dueDate"` // calendar date, empty when unset
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate checks all field constraints and returns the accumulated
// violation messages. An empty slice means the task is valid.
func (t Task) Validate() []string {
	var errs []string

	if t.ID == "" {
		errs = append(errs, "id must not be empty")
	}
	if t.Title == "" {
		errs = append(errs, "title must not be empty")
	}
	if utf8.RuneCountInString(t.Title) > MaxTaskTitleLen {
		errs = append(errs, fmt.Sprintf("title must be at most %d characters", MaxTaskTitleLen))
	}
	if utf8.RuneCountInString(t.Description) > MaxDescriptionLen {
		errs = append(errs, fmt.Sprintf("description must be at most %d characters", MaxDescriptionLen))
	}
	if utf8.RuneCountInString(t.Assignee) > MaxAssigneeLen {
		errs = append(errs, fmt.Sprintf("assignee must be at most %d characters", MaxAssigneeLen))
	}
	if !t.Priority.Valid() {
		errs = append(errs, fmt.Sprintf("priority must be one of low, medium, high (got %q)", t.Priority))
	}
	if t.DueDate != "" {
		if _, err := time.ParseInLocation(DueDateLayout, t.DueDate, time.Local); err != nil {
			errs = append(errs, fmt.Sprintf("due date %q is not a valid calendar date", t.DueDate))
		}
	}

	return errs
}

// TaskPatch is a partial update to a Task. Nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	Assignee    *string
	DueDate     *string
}

// Apply merges the patch over the task, stamps UpdatedAt and re-validates.
// On validation failure it returns a ValidationError and the original task
// is unaffected; the caller never observes a partially applied update.
func (t Task) Apply(p TaskPatch, now time.Time) (Task, error) {
	out := t
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.Assignee != nil {
		out.Assignee = *p.Assignee
	}
	if p.DueDate != nil {
		out.DueDate = *p.DueDate
	}
	out.UpdatedAt = now

	if errs := out.Validate(); len(errs) > 0 {
		return Task{}, &ValidationError{Errors: errs}
	}
	return out, nil
}

// IsOverdue reports whether the due date falls strictly before the current
// calendar day. Comparison is at day granularity in now's location; an
// empty due date is never overdue.
func (t Task) IsOverdue(now time.Time) bool {
	due, ok := t.dueDay(now)
	if !ok {
		return false
	}
	return due.Before(startOfDay(now))
}

// IsDueToday reports whether the due date falls on the current calendar day.
func (t Task) IsDueToday(now time.Time) bool {
	due, ok := t.dueDay(now)
	if !ok {
		return false
	}
	return due.Equal(startOfDay(now))
}

// dueDay parses DueDate into a midnight timestamp in now's location.
// DueDate is validated up front, so a parse failure here only happens for
// tasks constructed outside the store; those are treated as having no due
// date.
func (t Task) dueDay(now time.Time) (time.Time, bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	due, err := time.ParseInLocation(DueDateLayout, t.DueDate, now.Location())
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

func startOfDay(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}
