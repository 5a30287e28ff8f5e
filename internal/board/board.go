// Package board implements the normalized board aggregate: tasks, columns
// and column ordering, plus every operation allowed to mutate them.
//
// A Board is a value. Mutations return a fresh snapshot built with
// copy-on-write at the map/slice level; on error the input snapshot is
// returned untouched. Cross-entity invariants (column order matches the
// column set, every task lives in exactly one column) hold after every
// successful operation.
package board

import (
	"time"

	"boardkit/internal/domain"
)

// Board is the aggregate root holding all tasks, columns and their order.
type Board struct {
	Tasks        map[string]domain.Task   `json:"tasks"`
	Columns      map[string]domain.Column `json:"columns"`
	ColumnOrder  []string                 `json:"columnOrder"`
	LastModified time.Time                `json:"lastModified"`
}

// Empty returns a board with no tasks and no columns.
func Empty() Board {
	return Board{
		Tasks:       map[string]domain.Task{},
		Columns:     map[string]domain.Column{},
		ColumnOrder: []string{},
	}
}

// Clear resets to the empty board. Unlike deleting entities one by one it
// is unconditional and does not iterate.
func (b Board) Clear(now time.Time) Board {
	out := Empty()
	out.LastModified = now
	return out
}

// FromSnapshot accepts a decoded board after defensively verifying its
// shape and invariants. The import codec performs its own structural
// check, but the store never trusts the caller to have run it: a snapshot
// that would put the store into an invariant-violating state is rejected
// with a ValidationError.
func FromSnapshot(data Board, now time.Time) (Board, error) {
	var errs []string
	if data.Tasks == nil {
		errs = append(errs, "snapshot is missing tasks")
	}
	if data.Columns == nil {
		errs = append(errs, "snapshot is missing columns")
	}
	if data.ColumnOrder == nil {
		errs = append(errs, "snapshot is missing columnOrder")
	}
	if len(errs) > 0 {
		return Board{}, &domain.ValidationError{Errors: errs}
	}
	if err := data.Verify(); err != nil {
		return Board{}, err
	}

	out := data
	out.LastModified = now
	return out, nil
}

// Verify checks every invariant the store guarantees:
//   - ColumnOrder is a duplicate-free permutation of the Columns key set
//   - every entry in a column's TaskIDs references an existing task
//   - every task id appears in exactly one column's TaskIDs
//   - every task and column passes its own field validation
//
// It returns a ValidationError listing every violation, or nil.
func (b Board) Verify() error {
	var errs []string

	seen := make(map[string]bool, len(b.ColumnOrder))
	for _, id := range b.ColumnOrder {
		if seen[id] {
			errs = append(errs, "columnOrder contains duplicate id "+id)
			continue
		}
		seen[id] = true
		if _, ok := b.Columns[id]; !ok {
			errs = append(errs, "columnOrder references unknown column "+id)
		}
	}
	for id := range b.Columns {
		if !seen[id] {
			errs = append(errs, "column "+id+" is missing from columnOrder")
		}
	}

	owners := make(map[string][]string, len(b.Tasks))
	for _, col := range b.Columns {
		for _, taskID := range col.TaskIDs {
			if _, ok := b.Tasks[taskID]; !ok {
				errs = append(errs, "column "+col.ID+" references unknown task "+taskID)
			}
			owners[taskID] = append(owners[taskID], col.ID)
		}
	}
	for id := range b.Tasks {
		cols := owners[id]
		switch {
		case len(cols) == 0:
			errs = append(errs, "task "+id+" belongs to no column")
		case len(cols) == 1:
		case allSame(cols):
			errs = append(errs, "task "+id+" appears more than once in column "+cols[0])
		default:
			errs = append(errs, "task "+id+" belongs to more than one column")
		}
	}

	for id, task := range b.Tasks {
		for _, msg := range task.Validate() {
			errs = append(errs, "task "+id+": "+msg)
		}
	}
	for id, col := range b.Columns {
		for _, msg := range col.Validate() {
			errs = append(errs, "column "+id+": "+msg)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func allSame(ids []string) bool {
	for _, id := range ids[1:] {
		if id != ids[0] {
			return false
		}
	}
	return true
}

// columnOf scans column membership for the task's owning column.
func (b Board) columnOf(taskID string) (string, bool) {
	for _, col := range b.Columns {
		for _, id := range col.TaskIDs {
			if id == taskID {
				return col.ID, true
			}
		}
	}
	return "", false
}

// cloneTasks returns a shallow copy of the task map.
func (b Board) cloneTasks() map[string]domain.Task {
	out := make(map[string]domain.Task, len(b.Tasks))
	for k, v := range b.Tasks {
		out[k] = v
	}
	return out
}

// cloneColumns returns a shallow copy of the column map.
func (b Board) cloneColumns() map[string]domain.Column {
	out := make(map[string]domain.Column, len(b.Columns))
	for k, v := range b.Columns {
		out[k] = v
	}
	return out
}

// cloneOrder returns a copy of the column ordering.
func (b Board) cloneOrder() []string {
	out := make([]string, len(b.ColumnOrder))
	copy(out, b.ColumnOrder)
	return out
}

// withoutID returns a copy of ids with the first occurrence of id removed.
func withoutID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	removed := false
	for _, v := range ids {
		if !removed && v == id {
			removed = true
			continue
		}
		out = append(out, v)
	}
	return out
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
