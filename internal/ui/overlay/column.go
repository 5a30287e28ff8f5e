package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"boardkit/internal/domain"
	"boardkit/internal/ui/styles"
)

// ColumnSubmittedMsg is emitted when the column form is submitted.
type ColumnSubmittedMsg struct {
	ColumnID string // empty for a new column, set when editing
	Title    string
	Color    domain.Color
}

// ColumnForm is the create/edit column overlay: a title plus a palette
// picker.
type ColumnForm struct {
	columnID   string
	title      textinput.Model
	colorIndex int
	errText    string
	styles     *styles.Styles
}

// NewColumnForm creates an empty form for a new column.
func NewColumnForm(s *styles.Styles) *ColumnForm {
	ti := textinput.New()
	ti.Placeholder = "Column title..."
	ti.Focus()
	ti.CharLimit = domain.MaxColumnTitleLen * 2
	ti.Width = 40

	return &ColumnForm{title: ti, styles: s}
}

// NewColumnEditForm creates a form pre-filled from an existing column.
func NewColumnEditForm(c domain.Column, s *styles.Styles) *ColumnForm {
	f := NewColumnForm(s)
	f.columnID = c.ID
	f.title.SetValue(c.Title)
	for i, color := range domain.Palette {
		if color == c.Color {
			f.colorIndex = i
			break
		}
	}
	return f
}

// SetError shows a validation message inside the form.
func (f *ColumnForm) SetError(msg string) {
	f.errText = msg
}

// Init initializes the overlay
func (f *ColumnForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *ColumnForm) Update(msg tea.Msg) (*ColumnForm, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return CloseMsg{} }

		case "enter", "ctrl+s":
			submitted := ColumnSubmittedMsg{
				ColumnID: f.columnID,
				Title:    strings.TrimSpace(f.title.Value()),
				Color:    domain.Palette[f.colorIndex],
			}
			return f, func() tea.Msg { return submitted }

		case "left", "ctrl+h":
			f.colorIndex = (f.colorIndex - 1 + len(domain.Palette)) % len(domain.Palette)
			return f, nil

		case "right", "ctrl+l", "tab":
			f.colorIndex = (f.colorIndex + 1) % len(domain.Palette)
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.title, cmd = f.title.Update(msg)
	return f, cmd
}

// View renders the form
func (f *ColumnForm) View() string {
	var b strings.Builder

	heading := "New Column"
	if f.columnID != "" {
		heading = "Edit Column"
	}
	b.WriteString(f.styles.OverlayTitle.Render(heading))
	b.WriteString("\n")

	b.WriteString(f.styles.FieldLabel.Render("Title"))
	b.WriteString("\n" + f.title.View() + "\n\n")

	// Palette swatches, current selection bracketed
	var swatches []string
	for i, color := range domain.Palette {
		swatch := lipgloss.NewStyle().
			Foreground(styles.ColumnColor(color)).
			Render("■")
		if i == f.colorIndex {
			swatch = "[" + swatch + "]"
		} else {
			swatch = " " + swatch + " "
		}
		swatches = append(swatches, swatch)
	}
	b.WriteString(f.styles.FieldLabel.Render("Color"))
	b.WriteString("\n" + lipgloss.JoinHorizontal(lipgloss.Left, swatches...) + "\n")

	if f.errText != "" {
		b.WriteString("\n" + f.styles.FieldError.Render(f.errText) + "\n")
	}

	b.WriteString("\n" + f.styles.StatusHint.Render("←/→: color • enter: save • esc: cancel"))

	return f.styles.Overlay.Render(b.String())
}
