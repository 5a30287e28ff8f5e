package board

import (
	"time"

	"github.com/google/uuid"

	"boardkit/internal/domain"
)

// ColumnDraft carries the caller-supplied fields for a new column. Color
// defaults to the gray palette token when left empty.
type ColumnDraft struct {
	Title string
	Color domain.Color
}

// AddColumn constructs and validates a new empty column, appending it to
// the end of the column order.
func (b Board) AddColumn(draft ColumnDraft, now time.Time) (Board, string, error) {
	color := draft.Color
	if color == "" {
		color = domain.ColorGray
	}
	col := domain.Column{
		ID:        uuid.NewString(),
		Title:     draft.Title,
		Color:     color,
		TaskIDs:   []string{},
		CreatedAt: now,
		UpdatedAt: now,
		Order:     len(b.ColumnOrder),
	}
	if errs := col.Validate(); len(errs) > 0 {
		return b, "", &domain.ValidationError{Errors: errs}
	}

	out := b
	out.Columns = b.cloneColumns()
	out.Columns[col.ID] = col
	out.ColumnOrder = append(b.cloneOrder(), col.ID)
	out.LastModified = now
	return out, col.ID, nil
}

// UpdateColumn applies the patch to the column, propagating validation
// failures unchanged.
func (b Board) UpdateColumn(columnID string, patch domain.ColumnPatch, now time.Time) (Board, error) {
	col, ok := b.Columns[columnID]
	if !ok {
		return b, &domain.NotFoundError{Kind: "column", ID: columnID}
	}

	updated, err := col.Apply(patch, now)
	if err != nil {
		return b, err
	}

	out := b
	out.Columns = b.cloneColumns()
	out.Columns[columnID] = updated
	out.LastModified = now
	return out, nil
}

// DeleteColumn removes the column and cascades deletion of every task it
// references, keeping the no-orphan invariant intact.
func (b Board) DeleteColumn(columnID string, now time.Time) (Board, error) {
	col, ok := b.Columns[columnID]
	if !ok {
		return b, &domain.NotFoundError{Kind: "column", ID: columnID}
	}

	out := b
	out.Tasks = b.cloneTasks()
	for _, taskID := range col.TaskIDs {
		delete(out.Tasks, taskID)
	}
	out.Columns = b.cloneColumns()
	delete(out.Columns, columnID)
	out.ColumnOrder = withoutID(b.ColumnOrder, columnID)
	out.LastModified = now
	return out, nil
}

// ReorderColumns replaces the column order. newOrder must be a
// permutation of the current order: same members, same cardinality.
func (b Board) ReorderColumns(newOrder []string, now time.Time) (Board, error) {
	var errs []string
	if len(newOrder) != len(b.ColumnOrder) {
		errs = append(errs, "new order must contain every column exactly once")
	}
	seen := make(map[string]bool, len(newOrder))
	for _, id := range newOrder {
		if seen[id] {
			errs = append(errs, "new order contains duplicate id "+id)
			continue
		}
		seen[id] = true
		if _, ok := b.Columns[id]; !ok {
			errs = append(errs, "new order references unknown column "+id)
		}
	}
	for _, id := range b.ColumnOrder {
		if !seen[id] {
			errs = append(errs, "new order is missing column "+id)
		}
	}
	if len(errs) > 0 {
		return b, &domain.ValidationError{Errors: errs}
	}

	out := b
	out.ColumnOrder = append([]string{}, newOrder...)
	out.LastModified = now
	return out, nil
}
