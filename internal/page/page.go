// Package page holds the host markup for the quiz and the identifiers the
// grading handlers bind to.
package page

import (
	"bytes"
	_ "embed"

	"github.com/abhisek/browserquiz/internal/dom"
)

// Element identifiers and classes the host page must provide.
const (
	FormID    = "browser-quiz"
	ResetID   = "reset-quiz"
	SubmitID  = "submit-quiz"
	SummaryID = "quiz-summary"
	OverallID = "quiz-overall"
	ScoreID   = "quiz-score"

	// FirstControlID receives focus after a reset.
	FirstControlID = "q1"

	QuestionClass  = "quiz-question"
	FeedbackClass  = "quiz-feedback"
	CorrectClass   = "correct"
	IncorrectClass = "incorrect"
	OverallClass   = "quiz-overall"
	PassClass      = "quiz-pass"
	FailClass      = "quiz-fail"

	feedbackSuffix = "-feedback"
)

//go:embed quiz.html
var markup []byte

// Markup returns a copy of the embedded host page.
func Markup() []byte {
	return bytes.Clone(markup)
}

// Load parses a fresh copy of the host page. Every call returns an
// independent document, the way a page reload would.
func Load() (*dom.Document, error) {
	return dom.Parse(bytes.NewReader(markup))
}

// FeedbackID returns the identifier of a question's feedback element.
func FeedbackID(questionID string) string {
	return questionID + feedbackSuffix
}

// Required lists the top-level elements without which no handler is bound.
func Required() []string {
	return []string{FormID, ResetID, SummaryID, OverallID, ScoreID}
}
