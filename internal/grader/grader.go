// Package grader binds the quiz answer key to a host document: it grades
// the form on submit and restores the page on reset.
package grader

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/browserquiz/internal/dom"
	"github.com/abhisek/browserquiz/internal/page"
	"github.com/abhisek/browserquiz/internal/quiz"
)

// Observer is notified after every graded submission.
type Observer func(attemptID string, res quiz.Result)

// Option configures a Binding.
type Option func(*Binding)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(b *Binding) { b.log = l }
}

// WithObserver registers fn to run after each submission has been rendered.
func WithObserver(fn Observer) Option {
	return func(b *Binding) { b.observers = append(b.observers, fn) }
}

// Binding is the pair of handlers attached to one document.
type Binding struct {
	doc *dom.Document
	def *quiz.Definition

	form    *dom.Element
	reset   *dom.Element
	summary *dom.Element
	overall *dom.Element
	score   *dom.Element

	log       *zap.Logger
	observers []Observer
}

// Attach binds the submit handler to the quiz form and the reset handler to
// the reset control. When any required top-level element is missing it
// binds nothing and returns false.
func Attach(doc *dom.Document, def *quiz.Definition, opts ...Option) (*Binding, bool) {
	b := &Binding{doc: doc, def: def, log: zap.NewNop()}
	for _, o := range opts {
		o(b)
	}

	b.form = doc.ElementByID(page.FormID)
	b.reset = doc.ElementByID(page.ResetID)
	b.summary = doc.ElementByID(page.SummaryID)
	b.overall = doc.ElementByID(page.OverallID)
	b.score = doc.ElementByID(page.ScoreID)

	for _, id := range page.Required() {
		if doc.ElementByID(id) == nil {
			b.log.Debug("quiz handlers not attached", zap.String("missing", id))
			return nil, false
		}
	}

	b.form.AddEventListener(dom.EventSubmit, b.onSubmit)
	b.reset.AddEventListener(dom.EventClick, func(*dom.Event) { b.Reset() })
	b.log.Debug("quiz handlers attached", zap.Int("questions", len(def.Questions)))
	return b, true
}

func (b *Binding) onSubmit(ev *dom.Event) {
	ev.PreventDefault()
	b.Submit()
}

// Submit grades the current control values and renders the feedback. It is
// what the form's submit listener runs.
func (b *Binding) Submit() quiz.Result {
	attemptID := uuid.NewString()

	res := quiz.Grade(b.def, b.readResponses())
	b.render(res)

	b.log.Debug("quiz graded",
		zap.String("attempt", attemptID),
		zap.Int("score", res.Score),
		zap.Int("total", res.Total),
		zap.Int("percentage", res.Percentage),
		zap.Bool("passed", res.Passed),
	)
	for _, fn := range b.observers {
		fn(attemptID, res)
	}
	return res
}

// readResponses pulls the learner's answers out of the document. A missing
// control reads as no answer.
func (b *Binding) readResponses() map[string]quiz.Response {
	out := make(map[string]quiz.Response, len(b.def.Questions))
	for _, q := range b.def.Questions {
		var r quiz.Response
		switch q.Kind {
		case quiz.KindText:
			if el := b.doc.ElementByID(q.ID); el != nil {
				r.Text = el.Value()
			}
		case quiz.KindSingle:
			r.Choice, _ = b.doc.Checked(q.ID)
		case quiz.KindMulti:
			r.Choices = b.doc.CheckedValues(q.ID)
		}
		out[q.ID] = r
	}
	return out
}

func (b *Binding) render(res quiz.Result) {
	for _, qr := range res.Questions {
		fb := b.doc.ElementByID(page.FeedbackID(qr.ID))
		if fb == nil {
			continue
		}
		fb.SetInnerHTML(qr.Feedback)
		fb.RemoveClass(page.CorrectClass, page.IncorrectClass)
		if qr.Correct {
			fb.AddClass(page.CorrectClass)
		} else {
			fb.AddClass(page.IncorrectClass)
		}
	}

	verdict := page.FailClass
	if res.Passed {
		verdict = page.PassClass
	}
	b.overall.SetTextContent(b.def.OverallMessage(res.Passed))
	b.overall.SetClassName(page.OverallClass + " " + verdict)
	b.score.SetInnerHTML(quiz.ScoreHTML(res))

	b.summary.SetHidden(false)
	b.summary.ScrollIntoView()
}

// Reset returns the page to its unanswered state and focuses the first
// question's control.
func (b *Binding) Reset() {
	b.form.Reset()

	for _, fb := range b.doc.ElementsByClass(page.FeedbackClass) {
		fb.SetTextContent("")
		fb.RemoveClass(page.CorrectClass, page.IncorrectClass)
	}
	b.overall.SetTextContent("")
	b.overall.SetClassName(page.OverallClass)
	b.score.SetTextContent("")
	b.summary.SetHidden(true)

	if first := b.doc.ElementByID(page.FirstControlID); first != nil {
		first.Focus()
	}
	b.log.Info("quiz reset")
}
