package board

import (
	"time"

	"github.com/google/uuid"

	"boardkit/internal/domain"
)

// TaskDraft carries the caller-supplied fields for a new task. Priority
// defaults to medium when left empty.
type TaskDraft struct {
	Title       string
	Description string
	Priority    domain.Priority
	Assignee    string
	DueDate     string
}

// AddTask constructs and validates a new task, appends it to the end of
// the target column and returns the new snapshot plus the generated id.
func (b Board) AddTask(columnID string, draft TaskDraft, now time.Time) (Board, string, error) {
	col, ok := b.Columns[columnID]
	if !ok {
		return b, "", &domain.NotFoundError{Kind: "column", ID: columnID}
	}

	priority := draft.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    priority,
		Assignee:    draft.Assignee,
		DueDate:     draft.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if errs := task.Validate(); len(errs) > 0 {
		return b, "", &domain.ValidationError{Errors: errs}
	}

	newCol := col
	newCol.TaskIDs = append(append([]string{}, col.TaskIDs...), task.ID)
	newCol.UpdatedAt = now
	if errs := newCol.Validate(); len(errs) > 0 {
		return b, "", &domain.ValidationError{Errors: errs}
	}

	out := b
	out.Tasks = b.cloneTasks()
	out.Tasks[task.ID] = task
	out.Columns = b.cloneColumns()
	out.Columns[columnID] = newCol
	out.LastModified = now
	return out, task.ID, nil
}

// UpdateTask applies the patch to the task. Validation failures propagate
// unchanged; column membership is never affected.
func (b Board) UpdateTask(taskID string, patch domain.TaskPatch, now time.Time) (Board, error) {
	task, ok := b.Tasks[taskID]
	if !ok {
		return b, &domain.NotFoundError{Kind: "task", ID: taskID}
	}

	updated, err := task.Apply(patch, now)
	if err != nil {
		return b, err
	}

	out := b
	out.Tasks = b.cloneTasks()
	out.Tasks[taskID] = updated
	out.LastModified = now
	return out, nil
}

// DeleteTask removes the task from the store and from its owning column.
func (b Board) DeleteTask(taskID string, now time.Time) (Board, error) {
	columnID, ok := b.columnOf(taskID)
	if !ok {
		return b, &domain.NotFoundError{Kind: "task", ID: taskID}
	}

	col := b.Columns[columnID]
	newCol := col
	newCol.TaskIDs = withoutID(col.TaskIDs, taskID)
	newCol.UpdatedAt = now

	out := b
	out.Tasks = b.cloneTasks()
	delete(out.Tasks, taskID)
	out.Columns = b.cloneColumns()
	out.Columns[columnID] = newCol
	out.LastModified = now
	return out, nil
}

// MoveTask reassigns the task from its current column to the tail of the
// target column. Moving a task onto its own column is a no-op and returns
// the input snapshot unchanged. Within-column reordering is index-based;
// see MoveTaskWithinColumn.
func (b Board) MoveTask(taskID, targetColumnID string, now time.Time) (Board, error) {
	sourceID, ok := b.columnOf(taskID)
	if !ok {
		return b, &domain.NotFoundError{Kind: "task", ID: taskID}
	}
	target, ok := b.Columns[targetColumnID]
	if !ok {
		return b, &domain.NotFoundError{Kind: "column", ID: targetColumnID}
	}
	if sourceID == targetColumnID {
		return b, nil
	}

	source := b.Columns[sourceID]
	newSource := source
	newSource.TaskIDs = withoutID(source.TaskIDs, taskID)
	newSource.UpdatedAt = now

	newTarget := target
	newTarget.TaskIDs = append(append([]string{}, target.TaskIDs...), taskID)
	newTarget.UpdatedAt = now
	if errs := newTarget.Validate(); len(errs) > 0 {
		return b, &domain.ValidationError{Errors: errs}
	}

	out := b
	out.Columns = b.cloneColumns()
	out.Columns[sourceID] = newSource
	out.Columns[targetColumnID] = newTarget
	out.LastModified = now
	return out, nil
}

// MoveTaskWithinColumn removes the task at its current index and reinserts
// it at newIndex, clamped into [0, len]. The relative order of every other
// task is preserved.
func (b Board) MoveTaskWithinColumn(columnID, taskID string, newIndex int, now time.Time) (Board, error) {
	col, ok := b.Columns[columnID]
	if !ok {
		return b, &domain.NotFoundError{Kind: "column", ID: columnID}
	}
	cur := indexOf(col.TaskIDs, taskID)
	if cur < 0 {
		return b, &domain.NotFoundError{Kind: "task", ID: taskID}
	}

	ids := withoutID(col.TaskIDs, taskID)
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(ids) {
		newIndex = len(ids)
	}
	ids = append(ids[:newIndex], append([]string{taskID}, ids[newIndex:]...)...)

	newCol := col
	newCol.TaskIDs = ids
	newCol.UpdatedAt = now

	out := b
	out.Columns = b.cloneColumns()
	out.Columns[columnID] = newCol
	out.LastModified = now
	return out, nil
}
