package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"boardkit/internal/ui/styles"
)

// renderColumn renders a column with header and task cards
func renderColumn(
	view ColumnView,
	cursorTask int,
	isActive bool,
	isDropTarget bool,
	dragItemID string,
	now time.Time,
	width int,
	height int,
	s *styles.Styles,
) string {
	headerStyle := s.ColumnHeader
	if isActive {
		headerStyle = s.ColumnHeaderActive
	}
	headerStyle = headerStyle.Foreground(styles.ColumnColor(view.Column.Color))

	// Header like "─ To Do (3) ────"
	headerText := fmt.Sprintf("─ %s (%d) ", view.Column.Title, len(view.Tasks))
	remainingWidth := width - lipgloss.Width(headerText) - 2
	if remainingWidth > 0 {
		headerText += strings.Repeat("─", remainingWidth)
	}
	header := headerStyle.Render(headerText)

	var cardStrings []string
	cardWidth := width - 4
	for i, task := range view.Tasks {
		isCursor := isActive && i == cursorTask
		isDragged := task.ID == dragItemID
		cardStrings = append(cardStrings, renderCard(task, isCursor, isDragged, now, cardWidth, s))
	}

	content := ""
	if len(cardStrings) > 0 {
		content = strings.Join(cardStrings, "\n")
	}

	columnStyle := s.Column.Width(width).Height(height)
	if isDropTarget {
		columnStyle = columnStyle.BorderForeground(styles.Lavender)
	}
	columnContent := columnStyle.Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, columnContent)
}
