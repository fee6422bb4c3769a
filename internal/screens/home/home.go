package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/browserquiz/internal/quiz"
	"github.com/abhisek/browserquiz/internal/router"
	"github.com/abhisek/browserquiz/internal/screen"
	quizscreen "github.com/abhisek/browserquiz/internal/screens/quiz"
	"github.com/abhisek/browserquiz/internal/ui/components"
)

// HomeScreen is the landing screen with the quiz introduction.
type HomeScreen struct {
	def  *quiz.Definition
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. Taking the quiz always opens a freshly loaded
// page.
func New(def *quiz.Definition, log *zap.Logger) *HomeScreen {
	items := []components.MenuItem{
		{Label: "TAKE QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(def, log)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &HomeScreen{def: def, menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := contentWidth(width)

	labels := make([]string, len(h.menu.Items))
	for i, item := range h.menu.Items {
		labels[i] = item.Label
	}

	intro := fmt.Sprintf("%d questions · pass mark %d%%\nTab moves between answers, Space selects, Ctrl+S submits.",
		len(h.def.Questions), h.def.PassPercent)

	content := strings.Join([]string{
		renderTitle(h.def.Title, cw),
		renderIntro(intro, cw),
		renderMenu(labels, h.menu.Selected, cw),
	}, "\n\n")
	return renderFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
