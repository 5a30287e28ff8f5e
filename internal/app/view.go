package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"boardkit/internal/domain"
	uiboard "boardkit/internal/ui/board"
)

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	boardHeight := m.height - 2 // status bar

	views := make([]uiboard.ColumnView, 0, len(m.board.ColumnOrder))
	for _, col := range m.board.OrderedColumns() {
		views = append(views, uiboard.ColumnView{Column: col, Tasks: m.visibleTasks(col.ID)})
	}

	dragItemID := ""
	dragTargetID := ""
	if itemID, _ := m.drag.Item(); itemID != "" {
		dragItemID = itemID
		dragTargetID = m.drag.Target()
	}

	boardView := uiboard.Render(
		views,
		m.cursor,
		dragItemID,
		dragTargetID,
		m.now(),
		m.styles,
		m.width,
		boardHeight,
	)

	main := lipgloss.JoinVertical(lipgloss.Left, boardView, m.statusBar())

	// An overlay floats centered over the board.
	if overlayView := m.overlayView(); overlayView != "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlayView)
	}
	return main
}

func (m Model) overlayView() string {
	switch {
	case m.taskForm != nil:
		return m.taskForm.View()
	case m.columnForm != nil:
		return m.columnForm.View()
	case m.confirm != nil:
		return m.confirm.View()
	}
	return ""
}

func (m Model) statusBar() string {
	var left string
	switch {
	case m.searching:
		left = m.searchInput.View()
	case m.errMsg != "":
		left = m.styles.StatusErr.Render(m.errMsg)
	case m.statusMsg != "":
		left = m.statusMsg
	default:
		left = m.styles.StatusHint.Render(
			"a:task c:column e:edit d/D:delete space:move s:sort /:search o:overdue q:quit")
	}

	right := ""
	if mode := m.queryIndicator(); mode != "" {
		right = mode
	}
	if m.prefs.ShowStats {
		stats := m.board.Stats(m.now())
		counts := fmt.Sprintf("%d tasks / %d columns", stats.Tasks, stats.Columns)
		if stats.Overdue > 0 {
			counts += fmt.Sprintf(" / %d overdue", stats.Overdue)
		}
		if right != "" {
			right += "  "
		}
		right += counts
	}

	return m.renderStatusLine(left, right)
}

// queryIndicator summarizes the active sort and filters for the status bar.
func (m Model) queryIndicator() string {
	var parts []string
	if m.sort.Field != "" {
		dir := "↑"
		if m.sort.Order == domain.SortDesc {
			dir = "↓"
		}
		parts = append(parts, "sort:"+string(m.sort.Field)+dir)
	}
	if m.filter.OverdueOnly {
		parts = append(parts, "overdue")
	}
	if m.filter.SearchQuery != "" {
		parts = append(parts, "q:"+m.filter.SearchQuery)
	}
	if len(parts) == 0 {
		return ""
	}
	return m.styles.StatusHint.Render("[" + strings.Join(parts, " ") + "]")
}

func (m Model) renderStatusLine(left, right string) string {
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return m.styles.StatusBar.Width(m.width).Render(
		left + strings.Repeat(" ", gap) + right)
}
