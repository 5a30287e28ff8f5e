package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"boardkit/internal/ui/styles"
)

// ConfirmDialog asks the user to confirm a destructive action before the
// controller runs the store operation. The store deletes are unconditional;
// confirmation lives entirely here.
type ConfirmDialog struct {
	title    string
	message  string
	selected bool // true = Yes
	styles   *styles.Styles
}

// NewConfirmDialog creates a confirmation dialog, defaulting to No.
func NewConfirmDialog(title, message string, s *styles.Styles) *ConfirmDialog {
	return &ConfirmDialog{title: title, message: message, styles: s}
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (*ConfirmDialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		return c, confirmCmd(true)
	case "n", "N", "esc":
		return c, confirmCmd(false)
	case "enter":
		return c, confirmCmd(c.selected)
	case "left", "h":
		c.selected = false
	case "right", "l", "tab":
		c.selected = true
	}
	return c, nil
}

func confirmCmd(confirmed bool) tea.Cmd {
	return func() tea.Msg { return ConfirmResultMsg{Confirmed: confirmed} }
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	b.WriteString(c.styles.OverlayTitle.Render(c.title))
	b.WriteString("\n")
	if c.message != "" {
		b.WriteString(c.message + "\n\n")
	}

	yes, no := "  Yes  ", "  No  "
	if c.selected {
		yes = "▶ Yes ◀"
	} else {
		no = "▶ No ◀"
	}
	b.WriteString(no + "   " + yes + "\n\n")
	b.WriteString(c.styles.StatusHint.Render("y/n • enter: confirm • esc: cancel"))

	return c.styles.Overlay.Render(b.String())
}
