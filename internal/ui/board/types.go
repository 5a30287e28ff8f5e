package board

import "boardkit/internal/domain"

// ColumnView is a column resolved to its tasks, ready to render.
type ColumnView struct {
	Column domain.Column
	Tasks  []domain.Task
}

// Cursor represents the current cursor position
type Cursor struct {
	Column int // column index in board order
	Task   int // task index within the column
}
