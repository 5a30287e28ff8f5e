package styles

import (
	"github.com/charmbracelet/lipgloss"

	"boardkit/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Board
	Board              lipgloss.Style
	Column             lipgloss.Style
	ColumnHeader       lipgloss.Style
	ColumnHeaderActive lipgloss.Style

	// Cards
	Card       lipgloss.Style
	CardActive lipgloss.Style
	TaskTitle  lipgloss.Style
	TaskMeta   lipgloss.Style

	// Badges
	PriorityBadge func(p domain.Priority) lipgloss.Style
	OverdueBadge  lipgloss.Style
	DueTodayBadge lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusHint lipgloss.Style
	StatusErr  lipgloss.Style

	// Overlays
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	FieldLabel   lipgloss.Style
	FieldError   lipgloss.Style
}

// New creates a new Styles instance with the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Board: lipgloss.NewStyle().
			Background(Base),

		Column: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		ColumnHeaderActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Surface2).
			Padding(0, 1).
			MarginBottom(1),

		CardActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Lavender).
			Padding(0, 1).
			MarginBottom(1),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Text),

		TaskMeta: lipgloss.NewStyle().
			Foreground(Subtext0),

		PriorityBadge: func(p domain.Priority) lipgloss.Style {
			color, ok := PriorityColors[p]
			if !ok {
				color = Overlay0
			}
			return lipgloss.NewStyle().
				Foreground(Mantle).
				Background(color).
				Padding(0, 1).
				Bold(true)
		},

		OverdueBadge: lipgloss.NewStyle().
			Foreground(Mantle).
			Background(Red).
			Padding(0, 1).
			Bold(true),

		DueTodayBadge: lipgloss.NewStyle().
			Foreground(Mantle).
			Background(Peach).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Background(Mantle).
			Foreground(Subtext1).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay0),

		StatusErr: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true).
			MarginBottom(1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(Subtext0),

		FieldError: lipgloss.NewStyle().
			Foreground(Red),
	}
}

// ColumnColor resolves a palette token to its theme color.
func ColumnColor(c domain.Color) lipgloss.Color {
	if color, ok := ColumnColors[c]; ok {
		return color
	}
	return Overlay0
}
