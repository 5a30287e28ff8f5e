// Package board renders the kanban board: one bordered column per board
// column, task cards inside, the drag target highlighted.
package board

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"boardkit/internal/ui/styles"
)

// Render renders the entire board.
func Render(
	columns []ColumnView,
	cursor Cursor,
	dragItemID string,
	dragTargetID string,
	now time.Time,
	s *styles.Styles,
	width int,
	height int,
) string {
	if len(columns) == 0 {
		return s.StatusHint.Render("no columns yet - press c to add one")
	}

	columnWidth := width / len(columns)

	var columnStrings []string
	for i, col := range columns {
		isActive := i == cursor.Column
		cursorTask := -1
		if isActive {
			cursorTask = cursor.Task
		}

		columnStr := renderColumn(
			col,
			cursorTask,
			isActive,
			col.Column.ID == dragTargetID,
			dragItemID,
			now,
			columnWidth,
			height,
			s,
		)

		sized := lipgloss.NewStyle().Width(columnWidth).Height(height).Render(columnStr)
		columnStrings = append(columnStrings, sized)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columnStrings...)
}
