package components

import (
	"github.com/abhisek/browserquiz/internal/ui/theme"
)

// Button renders a form button. Focused buttons are highlighted.
type Button struct {
	Label   string
	Focused bool
}

// NewButton creates a new button.
func NewButton(label string, focused bool) Button {
	return Button{Label: label, Focused: focused}
}

// View renders the button.
func (b Button) View() string {
	if b.Focused {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render("  " + b.Label)
}
