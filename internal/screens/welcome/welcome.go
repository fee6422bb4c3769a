package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/browserquiz/internal/router"
	"github.com/abhisek/browserquiz/internal/screen"
	"github.com/abhisek/browserquiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	loadEnd      = 1000 * time.Millisecond
	totalDur     = 1500 * time.Millisecond
)

const windowArt = `╭──────────────────────╮
│ ● ● ●  ┌──────────┐  │
│        │ https:// │  │
├──────────────────────┤
│  <html>              │
│    <form> ? </form>  │
│  </html>             │
╰──────────────────────╯`

const loadWidth = 24

type tickMsg time.Time

// WelcomeScreen shows a short splash while a mock page "loads", then hands
// over to the screen built by next. Any key skips ahead.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with next().
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
			return w, tick()
		}
		return w, nil

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	s := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: s}
	}
}

// loaded reports the fraction of the load bar that is filled.
func (w *WelcomeScreen) loaded() float64 {
	return min(float64(w.elapsed)/float64(loadEnd), 1)
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Render(windowArt),
	}

	filled := int(w.loaded() * loadWidth)
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("━", filled))+
			lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("━", loadWidth-filled)))

	if w.elapsed >= totalDur {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			theme.Legend.Render("How well do you know your browser?"),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
