package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/browserquiz/internal/quiz"
	"github.com/abhisek/browserquiz/internal/router"
)

func newTestHome(t *testing.T) *HomeScreen {
	t.Helper()
	def, err := quiz.Default()
	require.NoError(t, err)
	return New(def, nil)
}

func TestTakeQuizPushesQuizScreen(t *testing.T) {
	h := newTestHome(t)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Quiz", push.Screen.Title())
}

func TestExitQuits(t *testing.T) {
	h := newTestHome(t)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestViewShowsIntro(t *testing.T) {
	view := newTestHome(t).View(100, 30)
	assert.Contains(t, view, "Browsers: Self-Assessment Quiz")
	assert.Contains(t, view, "5 questions")
	assert.Contains(t, view, "pass mark 70%")
	assert.Contains(t, view, "TAKE QUIZ")
}
