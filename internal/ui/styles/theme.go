package styles

import (
	"github.com/charmbracelet/lipgloss"

	"boardkit/internal/domain"
)

// Catppuccin Macchiato palette
var (
	// Base colors
	Base     = lipgloss.Color("#24273a")
	Mantle   = lipgloss.Color("#1e2030")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Surface2 = lipgloss.Color("#5b6078")
	Overlay0 = lipgloss.Color("#6e738d")
	Subtext0 = lipgloss.Color("#a5adcb")
	Subtext1 = lipgloss.Color("#b8c0e0")
	Text     = lipgloss.Color("#cad3f5")

	// Accent colors
	Pink     = lipgloss.Color("#f5bde6")
	Mauve    = lipgloss.Color("#c6a0f6")
	Red      = lipgloss.Color("#ed8796")
	Peach    = lipgloss.Color("#f5a97f")
	Yellow   = lipgloss.Color("#eed49f")
	Green    = lipgloss.Color("#a6da95")
	Sapphire = lipgloss.Color("#7dc4e4")
	Blue     = lipgloss.Color("#8aadf4")
	Lavender = lipgloss.Color("#b7bdf8")
)

// PriorityColors maps task priorities to accent colors
var PriorityColors = map[domain.Priority]lipgloss.Color{
	domain.PriorityHigh:   Red,
	domain.PriorityMedium: Yellow,
	domain.PriorityLow:    Green,
}

// ColumnColors maps the board's palette tokens onto theme colors
var ColumnColors = map[domain.Color]lipgloss.Color{
	domain.ColorGray:   Overlay0,
	domain.ColorRed:    Red,
	domain.ColorYellow: Yellow,
	domain.ColorGreen:  Green,
	domain.ColorBlue:   Blue,
	domain.ColorIndigo: Sapphire,
	domain.ColorPurple: Mauve,
	domain.ColorPink:   Pink,
}
