package board

import "boardkit/internal/domain"

// GetTask looks up a task by id.
func (b Board) GetTask(taskID string) (domain.Task, bool) {
	t, ok := b.Tasks[taskID]
	return t, ok
}

// GetColumn looks up a column by id.
func (b Board) GetColumn(columnID string) (domain.Column, bool) {
	c, ok := b.Columns[columnID]
	return c, ok
}

// TasksForColumn returns the column's tasks in membership order.
func (b Board) TasksForColumn(columnID string) ([]domain.Task, bool) {
	col, ok := b.Columns[columnID]
	if !ok {
		return nil, false
	}
	tasks := make([]domain.Task, 0, len(col.TaskIDs))
	for _, id := range col.TaskIDs {
		if t, ok := b.Tasks[id]; ok {
			tasks = append(tasks, t)
		}
	}
	return tasks, true
}

// OrderedColumns returns the columns in board order.
func (b Board) OrderedColumns() []domain.Column {
	cols := make([]domain.Column, 0, len(b.ColumnOrder))
	for _, id := range b.ColumnOrder {
		if c, ok := b.Columns[id]; ok {
			cols = append(cols, c)
		}
	}
	return cols
}
