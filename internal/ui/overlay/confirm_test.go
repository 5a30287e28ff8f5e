package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardkit/internal/ui/styles"
)

func pressKey(t *testing.T, d *ConfirmDialog, msg tea.KeyMsg) (*ConfirmDialog, tea.Msg) {
	t.Helper()
	d, cmd := d.Update(msg)
	if cmd == nil {
		return d, nil
	}
	return d, cmd()
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestConfirmDialogDirectAnswers(t *testing.T) {
	s := styles.New()

	d := NewConfirmDialog("Delete task?", "Fix login flow", s)
	_, msg := pressKey(t, d, runeKey('y'))
	assert.Equal(t, ConfirmResultMsg{Confirmed: true}, msg)

	d = NewConfirmDialog("Delete task?", "Fix login flow", s)
	_, msg = pressKey(t, d, runeKey('n'))
	assert.Equal(t, ConfirmResultMsg{Confirmed: false}, msg)

	d = NewConfirmDialog("Delete task?", "Fix login flow", s)
	_, msg = pressKey(t, d, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ConfirmResultMsg{Confirmed: false}, msg)
}

func TestConfirmDialogEnterDefaultsToNo(t *testing.T) {
	d := NewConfirmDialog("Clear board?", "", styles.New())

	_, msg := pressKey(t, d, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ConfirmResultMsg{Confirmed: false}, msg)
}

func TestConfirmDialogSelectThenEnter(t *testing.T) {
	d := NewConfirmDialog("Clear board?", "", styles.New())

	d, msg := pressKey(t, d, runeKey('l'))
	require.Nil(t, msg)

	_, msg = pressKey(t, d, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ConfirmResultMsg{Confirmed: true}, msg)
}

func TestConfirmDialogViewShowsTitle(t *testing.T) {
	d := NewConfirmDialog("Delete column?", "Done and every task in it", styles.New())

	out := d.View()

	assert.Contains(t, out, "Delete column?")
	assert.Contains(t, out, "Done and every task in it")
	assert.Contains(t, out, "▶ No ◀")
}
