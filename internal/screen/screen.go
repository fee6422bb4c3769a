// Package screen defines the contract between the router and the views it
// stacks: the home menu and the quiz form.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/browserquiz/internal/ui/layout"
)

// Screen is one full-body view managed by the router.
type Screen interface {
	Init() tea.Cmd

	// Update handles a message and returns the (possibly replaced) screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between the header and footer bars.
	View(width, height int) string

	// Title is shown on the right of the header bar.
	Title() string
}

// KeyHintProvider is implemented by screens that want their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
