package components

import (
	"github.com/abhisek/browserquiz/internal/ui/theme"
)

// ChoiceKind distinguishes single-choice from multi-select options.
type ChoiceKind int

const (
	ChoiceRadio ChoiceKind = iota
	ChoiceCheckbox
)

// Choice is one selectable option of a question.
type Choice struct {
	Kind    ChoiceKind
	Label   string
	Checked bool
	Focused bool
}

// View renders the option as "( ) label" / "[x] label" with a focus marker.
func (c Choice) View() string {
	var mark string
	switch c.Kind {
	case ChoiceCheckbox:
		mark = "[ ]"
		if c.Checked {
			mark = "[x]"
		}
	default:
		mark = "( )"
		if c.Checked {
			mark = "(•)"
		}
	}

	if c.Focused {
		return theme.Focused.Render("▸ " + mark + " " + c.Label)
	}
	return theme.Unfocused.Render("  " + mark + " " + c.Label)
}
