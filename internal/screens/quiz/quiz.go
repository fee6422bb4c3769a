// Package quiz is the interactive quiz form. It renders the host document
// in the terminal and turns key presses into clicks, typing and form
// submission on that document, so the grading handlers see exactly what a
// browser would give them.
package quiz

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/browserquiz/internal/dom"
	"github.com/abhisek/browserquiz/internal/grader"
	"github.com/abhisek/browserquiz/internal/page"
	quizdef "github.com/abhisek/browserquiz/internal/quiz"
	"github.com/abhisek/browserquiz/internal/screen"
	"github.com/abhisek/browserquiz/internal/ui/components"
	"github.com/abhisek/browserquiz/internal/ui/layout"
)

type controlKind int

const (
	controlText controlKind = iota
	controlRadio
	controlCheckbox
	controlButton
)

// control is one focusable element of the form, in tab order.
type control struct {
	kind     controlKind
	el       *dom.Element
	question int // index into blocks, -1 for buttons
}

// block is one question fieldset.
type block struct {
	legend   string
	feedback *dom.Element
}

// QuizScreen implements screen.Screen for the quiz form.
type QuizScreen struct {
	def *quizdef.Definition
	log *zap.Logger

	doc      *dom.Document
	binding  *grader.Binding
	blocks   []block
	controls []control
	summary  *dom.Element
	overall  *dom.Element
	score    *dom.Element
	last     *quizdef.Result

	cursor       int
	input        components.TextInput
	scrollOffset int
	scrollTo     *dom.Element
	errMsg       string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over a freshly loaded host page.
func New(def *quizdef.Definition, log *zap.Logger) *QuizScreen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &QuizScreen{def: def, log: log}
	s.load()
	return s
}

// load parses the host page and binds the grading handlers, as a browser
// does on every page load.
func (s *QuizScreen) load() {
	doc, err := page.Load()
	if err != nil {
		s.errMsg = err.Error()
		s.log.Error("load quiz page", zap.Error(err))
		return
	}

	s.doc = doc
	s.last = nil
	s.scrollOffset = 0
	s.binding, _ = grader.Attach(doc, s.def,
		grader.WithLogger(s.log),
		grader.WithObserver(func(_ string, res quizdef.Result) { s.last = &res }),
	)
	s.summary = doc.ElementByID(page.SummaryID)
	s.overall = doc.ElementByID(page.OverallID)
	s.score = doc.ElementByID(page.ScoreID)
	s.collectControls()

	s.input = components.NewTextInput("Type your answer...", 64)
	s.cursor = 0
	if len(s.controls) > 0 {
		s.controls[0].el.Focus()
	}
	s.syncInput()
}

// collectControls walks the question fieldsets and action buttons in
// document order.
func (s *QuizScreen) collectControls() {
	s.blocks = nil
	s.controls = nil

	for i, fs := range s.doc.ElementsByClass(page.QuestionClass) {
		b := block{}
		if legends := fs.ElementsByTag("legend"); len(legends) > 0 {
			b.legend = legends[0].TextContent()
		}
		if fbs := fs.ElementsByClass(page.FeedbackClass); len(fbs) > 0 {
			b.feedback = fbs[0]
		}
		s.blocks = append(s.blocks, b)

		for _, in := range fs.ElementsByTag("input") {
			kind := controlText
			switch in.Type() {
			case "radio":
				kind = controlRadio
			case "checkbox":
				kind = controlCheckbox
			}
			s.controls = append(s.controls, control{kind: kind, el: in, question: i})
		}
	}

	for _, id := range []string{page.SubmitID, page.ResetID} {
		if el := s.doc.ElementByID(id); el != nil {
			s.controls = append(s.controls, control{kind: controlButton, el: el, question: -1})
		}
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.syncInput()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next"},
		{Key: "Space", Description: "Select"},
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Ctrl+R", Description: "Reset"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.doc == nil || len(s.controls) == 0 {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	current := s.controls[s.cursor]
	switch kmsg.String() {
	case "tab", "down":
		return s, s.focus(s.cursor + 1)
	case "shift+tab", "up":
		return s, s.focus(s.cursor - 1)
	case "ctrl+s":
		return s, s.dispatch(s.submit)
	case "ctrl+r":
		return s, s.dispatch(s.clickReset)
	case "enter":
		if current.kind == controlText {
			// Enter in a text field submits its form.
			return s, s.dispatch(s.submit)
		}
		return s, s.dispatch(current.el.Click)
	case "space":
		if current.kind != controlText {
			return s, s.dispatch(current.el.Click)
		}
	}

	if current.kind != controlText {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	current.el.SetValue(s.input.Value())
	return s, cmd
}

func (s *QuizScreen) submit() {
	if form := s.doc.ElementByID(page.FormID); form != nil {
		form.RequestSubmit()
	}
}

func (s *QuizScreen) clickReset() {
	if el := s.doc.ElementByID(page.ResetID); el != nil {
		el.Click()
	}
}

// dispatch runs an action against the document and then reflects its side
// effects: focus changes, scroll requests and navigation.
func (s *QuizScreen) dispatch(action func()) tea.Cmd {
	action()

	if url, ok := s.doc.TakeNavigation(); ok {
		s.log.Info("form navigated, reloading page", zap.String("action", url))
		s.load()
		return s.syncInput()
	}

	if target := s.doc.TakeScrollTarget(); target != nil {
		s.scrollTo = target
	}
	if active := s.doc.ActiveElement(); active != nil {
		for i, c := range s.controls {
			if c.el == active {
				s.cursor = i
				break
			}
		}
	}
	return s.syncInput()
}

// focus moves the cursor, wrapping at both ends.
func (s *QuizScreen) focus(i int) tea.Cmd {
	n := len(s.controls)
	s.cursor = (i%n + n) % n
	s.controls[s.cursor].el.Focus()
	return s.syncInput()
}

// syncInput points the text input at the focused control. The document
// owns the value, so a form reset shows up here too.
func (s *QuizScreen) syncInput() tea.Cmd {
	if len(s.controls) == 0 {
		return nil
	}
	c := s.controls[s.cursor]
	if c.kind != controlText {
		s.input.Blur()
		return nil
	}
	if s.input.Value() != c.el.Value() {
		s.input.SetValue(c.el.Value())
	}
	return s.input.Focus()
}
