package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/browserquiz/internal/page"
	quizdef "github.com/abhisek/browserquiz/internal/quiz"
)

func newTestScreen(t *testing.T) *QuizScreen {
	t.Helper()
	def, err := quizdef.Default()
	require.NoError(t, err)
	s := New(def, nil)
	require.Empty(t, s.errMsg)
	return s
}

func press(s *QuizScreen, msgs ...tea.KeyPressMsg) {
	for _, m := range msgs {
		s.Update(m)
	}
}

func typeText(s *QuizScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

var (
	keyTab   = tea.KeyPressMsg{Code: tea.KeyTab}
	keySpace = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keySave  = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	keyReset = tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
)

// moveTo tabs until the control with the given name and value is focused.
func moveTo(t *testing.T, s *QuizScreen, name, value string) {
	t.Helper()
	for range len(s.controls) {
		c := s.controls[s.cursor]
		if c.el.Name() == name && c.el.Value() == value {
			return
		}
		press(s, keyTab)
	}
	t.Fatalf("no control %s=%s", name, value)
}

func moveToID(t *testing.T, s *QuizScreen, id string) {
	t.Helper()
	for range len(s.controls) {
		if s.controls[s.cursor].el.ID() == id {
			return
		}
		press(s, keyTab)
	}
	t.Fatalf("no control #%s", id)
}

func answerAllCorrectly(t *testing.T, s *QuizScreen) {
	t.Helper()
	moveToID(t, s, "q1")
	typeText(s, "  GECKO ")
	for _, q := range []string{"q2", "q3", "q4"} {
		moveTo(t, s, q, "b")
		press(s, keySpace)
	}
	for _, v := range []string{"offline", "push", "homescreen"} {
		moveTo(t, s, "q5", v)
		press(s, keySpace)
	}
}

func TestControlsInDocumentOrder(t *testing.T) {
	s := newTestScreen(t)

	require.Len(t, s.blocks, 5)
	require.Len(t, s.controls, 19)
	assert.Equal(t, controlText, s.controls[0].kind)
	assert.Equal(t, controlRadio, s.controls[1].kind)
	assert.Equal(t, controlCheckbox, s.controls[13].kind)
	assert.Equal(t, page.SubmitID, s.controls[17].el.ID())
	assert.Equal(t, page.ResetID, s.controls[18].el.ID())
	assert.True(t, s.input.Focused(), "first control is a text field")
}

func TestTabWraps(t *testing.T) {
	s := newTestScreen(t)

	press(s, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, len(s.controls)-1, s.cursor)
	assert.False(t, s.input.Focused())

	press(s, keyTab)
	assert.Equal(t, 0, s.cursor)
	assert.True(t, s.input.Focused())
}

func TestTypingWritesThroughToDocument(t *testing.T) {
	s := newTestScreen(t)
	typeText(s, "gecko")
	assert.Equal(t, "gecko", s.doc.ElementByID("q1").Value())
}

func TestSpaceSelectsRadioExclusively(t *testing.T) {
	s := newTestScreen(t)

	moveTo(t, s, "q2", "a")
	press(s, keySpace)
	moveTo(t, s, "q2", "c")
	press(s, keySpace)

	got, ok := s.doc.Checked("q2")
	require.True(t, ok)
	assert.Equal(t, "c", got)
}

func TestSpaceTogglesCheckbox(t *testing.T) {
	s := newTestScreen(t)

	moveTo(t, s, "q5", "push")
	press(s, keySpace)
	assert.Equal(t, []string{"push"}, s.doc.CheckedValues("q5"))
	press(s, keySpace)
	assert.Empty(t, s.doc.CheckedValues("q5"))
}

func TestSubmitAllCorrect(t *testing.T) {
	s := newTestScreen(t)
	answerAllCorrectly(t, s)

	press(s, keySave)

	require.NotNil(t, s.last)
	assert.Equal(t, 5, s.last.Score)
	assert.True(t, s.last.Passed)
	assert.False(t, s.summary.Hidden())

	_, navigated := s.doc.NavigationRequested()
	assert.False(t, navigated, "grading replaces the page submit")

	view := s.View(100, 200)
	assert.Contains(t, view, "You scored 5 / 5 (100%).")
	assert.Contains(t, view, "Great job!")
	assert.Contains(t, view, "Correct! Firefox uses the Gecko engine.")
}

func TestEnterOnSubmitButton(t *testing.T) {
	s := newTestScreen(t)
	moveToID(t, s, page.SubmitID)

	press(s, keyEnter)

	require.NotNil(t, s.last)
	assert.Equal(t, 0, s.last.Score)
	assert.Contains(t, s.View(100, 200), "Not yet")
	assert.Contains(t, s.View(100, 200), "You scored 0 / 5 (0%).")
}

func TestEnterInTextFieldSubmits(t *testing.T) {
	s := newTestScreen(t)
	typeText(s, "gecko")

	press(s, keyEnter)

	require.NotNil(t, s.last)
	assert.Equal(t, 1, s.last.Score)
	assert.Equal(t, 0, s.cursor, "focus stays in the text field")
}

func TestResetClearsAndFocusesFirstQuestion(t *testing.T) {
	s := newTestScreen(t)
	answerAllCorrectly(t, s)
	press(s, keySave)
	moveToID(t, s, page.ResetID)

	press(s, keyEnter)

	assert.Equal(t, 0, s.cursor)
	assert.True(t, s.input.Focused())
	assert.Empty(t, s.input.Value())
	assert.Empty(t, s.doc.ElementByID("q1").Value())
	_, ok := s.doc.Checked("q2")
	assert.False(t, ok)
	assert.True(t, s.summary.Hidden())

	view := s.View(100, 200)
	assert.NotContains(t, view, "You scored")
	assert.NotContains(t, view, "Correct!")
}

func TestCtrlRResets(t *testing.T) {
	s := newTestScreen(t)
	moveTo(t, s, "q3", "b")
	press(s, keySpace, keySave, keyReset)

	assert.True(t, s.summary.Hidden())
	assert.Empty(t, s.doc.CheckedValues("q3"))
}

func TestSubmitScrollsSummaryIntoView(t *testing.T) {
	s := newTestScreen(t)
	s.View(100, 10)
	assert.Equal(t, 0, s.scrollOffset)

	press(s, keySave)
	view := s.View(100, 10)

	assert.Positive(t, s.scrollOffset)
	assert.Contains(t, view, "You scored 0 / 5")
}

func TestFocusedControlStaysVisible(t *testing.T) {
	s := newTestScreen(t)
	moveToID(t, s, page.ResetID)

	view := s.View(100, 8)
	assert.Contains(t, view, "Reset")
	assert.NotContains(t, view, "Engine name")

	press(s, keyTab)
	view = s.View(100, 8)
	assert.True(t, strings.Contains(view, "Engine name"))
}

func TestKeyHints(t *testing.T) {
	s := newTestScreen(t)
	var keys []string
	for _, h := range s.KeyHints() {
		keys = append(keys, h.Key)
	}
	assert.Contains(t, keys, "Ctrl+S")
	assert.Contains(t, keys, "Esc")
}
