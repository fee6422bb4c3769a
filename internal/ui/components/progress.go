package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/browserquiz/internal/ui/theme"
)

// ScoreBar is a horizontal bar filled to a whole-number percentage.
// The filled part is green when passed and red otherwise.
type ScoreBar struct {
	Percent int
	Passed  bool
	Width   int
}

// View renders the bar followed by the percentage.
func (p ScoreBar) View() string {
	barWidth := p.Width - 6
	if barWidth < 4 {
		barWidth = 4
	}

	percent := min(max(p.Percent, 0), 100)
	filled := barWidth * percent / 100
	empty := barWidth - filled

	fill := theme.Success
	if !p.Passed {
		fill = theme.Error
	}

	return lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty)) +
		theme.Subtitle.Render(fmt.Sprintf(" %3d%%", percent))
}
