// Package overlay contains the modal forms and dialogs drawn over the
// board. Overlays collect input and emit messages; mutations stay with the
// controller.
package overlay

// CloseMsg asks the controller to dismiss the active overlay.
type CloseMsg struct{}

// ConfirmResultMsg carries the outcome of a confirmation dialog.
type ConfirmResultMsg struct {
	Confirmed bool
}
