package board

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"boardkit/internal/domain"
	"boardkit/internal/ui/styles"
)

// renderCard renders a task card
func renderCard(task domain.Task, isCursor, isDragged bool, now time.Time, width int, s *styles.Styles) string {
	cardStyle := s.Card
	if isCursor {
		cardStyle = s.CardActive
	}
	cardStyle = cardStyle.Width(width)

	priorityBadge := s.PriorityBadge(task.Priority).Render(task.Priority.String())

	// Truncate the title by runes, accounting for padding and border
	maxTitleLen := width - 4
	title := task.Title
	if r := []rune(title); maxTitleLen > 1 && len(r) > maxTitleLen {
		title = string(r[:maxTitleLen-1]) + "…"
	}

	cursor := ""
	if isCursor {
		cursor = "▶"
	}
	if isDragged {
		cursor = "✥"
	}

	titleLine := s.TaskTitle.Render(cursor + title)

	badges := []string{priorityBadge}
	if task.IsOverdue(now) {
		badges = append(badges, " ", s.OverdueBadge.Render("overdue"))
	} else if task.IsDueToday(now) {
		badges = append(badges, " ", s.DueTodayBadge.Render("today"))
	}
	if task.Assignee != "" {
		badges = append(badges, " ", s.TaskMeta.Render("@"+task.Assignee))
	}
	badgeLine := lipgloss.JoinHorizontal(lipgloss.Left, badges...)

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, badgeLine)

	return cardStyle.Render(content)
}
