package grader

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/abhisek/browserquiz/internal/dom"
	"github.com/abhisek/browserquiz/internal/page"
	"github.com/abhisek/browserquiz/internal/quiz"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "grading",
		ScenarioInitializer: initializeScenario,
		Options: &godog.Options{
			Format:   "progress",
			Paths:    []string{"features"},
			Output:   io.Discard,
			TestingT: t,
			Strict:   true,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("grading features failed")
	}
}

// pageState is the document under test for one scenario.
type pageState struct {
	doc *dom.Document
}

func initializeScenario(ctx *godog.ScenarioContext) {
	s := &pageState{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		s.doc = nil
		return ctx, nil
	})

	ctx.Step(`^the quiz page is loaded$`, s.theQuizPageIsLoaded)
	ctx.Step(`^I type "([^"]*)" into question "([^"]+)"$`, s.iType)
	ctx.Step(`^I choose "([^"]+)" for question "([^"]+)"$`, s.iChoose)
	ctx.Step(`^I check "([^"]+)" for question "([^"]+)"$`, s.iCheck)
	ctx.Step(`^I submit the quiz$`, s.iSubmit)
	ctx.Step(`^I press reset$`, s.iPressReset)
	ctx.Step(`^the score reads "([^"]*)"$`, s.theScoreReads)
	ctx.Step(`^the verdict is "(pass|fail)"$`, s.theVerdictIs)
	ctx.Step(`^the verdict is empty$`, s.theVerdictIsEmpty)
	ctx.Step(`^every question is marked "(correct|incorrect)"$`, s.everyQuestionIsMarked)
	ctx.Step(`^question "([^"]+)" is marked "(correct|incorrect)"$`, s.questionIsMarked)
	ctx.Step(`^no question shows feedback$`, s.noQuestionShowsFeedback)
	ctx.Step(`^the summary is (visible|hidden)$`, s.theSummaryIs)
	ctx.Step(`^question "([^"]+)" has focus$`, s.questionHasFocus)
}

func (s *pageState) theQuizPageIsLoaded() error {
	doc, err := page.Load()
	if err != nil {
		return err
	}
	def, err := quiz.Default()
	if err != nil {
		return err
	}
	if _, ok := Attach(doc, def); !ok {
		return fmt.Errorf("quiz handlers were not attached")
	}
	s.doc = doc
	return nil
}

func (s *pageState) iType(text, id string) error {
	el := s.doc.ElementByID(id)
	if el == nil {
		return fmt.Errorf("no element #%s", id)
	}
	el.SetValue(text)
	return nil
}

func (s *pageState) iChoose(value, name string) error {
	return s.click(name, value)
}

func (s *pageState) iCheck(values, name string) error {
	for _, v := range strings.Split(values, ",") {
		if err := s.click(name, strings.TrimSpace(v)); err != nil {
			return err
		}
	}
	return nil
}

func (s *pageState) click(name, value string) error {
	for _, el := range s.doc.ElementsByName(name) {
		if el.Value() == value {
			el.Click()
			return nil
		}
	}
	return fmt.Errorf("question %q has no option %q", name, value)
}

func (s *pageState) iSubmit() error {
	s.doc.ElementByID(page.SubmitID).Click()
	if _, ok := s.doc.NavigationRequested(); ok {
		return fmt.Errorf("submission navigated away from the page")
	}
	return nil
}

func (s *pageState) iPressReset() error {
	s.doc.ElementByID(page.ResetID).Click()
	return nil
}

func (s *pageState) theScoreReads(want string) error {
	if got := s.doc.ElementByID(page.ScoreID).TextContent(); got != want {
		return fmt.Errorf("score reads %q, want %q", got, want)
	}
	return nil
}

func (s *pageState) theVerdictIs(verdict string) error {
	class := page.FailClass
	if verdict == "pass" {
		class = page.PassClass
	}
	overall := s.doc.ElementByID(page.OverallID)
	if !overall.HasClass(class) {
		return fmt.Errorf("overall element has classes %q, want %q", overall.ClassName(), class)
	}
	if overall.TextContent() == "" {
		return fmt.Errorf("overall element has no message")
	}
	return nil
}

func (s *pageState) theVerdictIsEmpty() error {
	overall := s.doc.ElementByID(page.OverallID)
	if overall.TextContent() != "" || overall.ClassName() != page.OverallClass {
		return fmt.Errorf("overall element still shows %q (%q)", overall.TextContent(), overall.ClassName())
	}
	return nil
}

func (s *pageState) everyQuestionIsMarked(mark string) error {
	for _, fb := range s.doc.ElementsByClass(page.FeedbackClass) {
		if !fb.HasClass(mark) || fb.TextContent() == "" {
			return fmt.Errorf("#%s is %q, want %q with a message", fb.ID(), fb.ClassName(), mark)
		}
	}
	return nil
}

func (s *pageState) questionIsMarked(id, mark string) error {
	fb := s.doc.ElementByID(page.FeedbackID(id))
	if fb == nil {
		return fmt.Errorf("no feedback element for %s", id)
	}
	other := page.IncorrectClass
	if mark == page.IncorrectClass {
		other = page.CorrectClass
	}
	if !fb.HasClass(mark) || fb.HasClass(other) {
		return fmt.Errorf("#%s is %q, want %q", fb.ID(), fb.ClassName(), mark)
	}
	return nil
}

func (s *pageState) noQuestionShowsFeedback() error {
	for _, fb := range s.doc.ElementsByClass(page.FeedbackClass) {
		if fb.TextContent() != "" || fb.HasClass(page.CorrectClass) || fb.HasClass(page.IncorrectClass) {
			return fmt.Errorf("#%s still shows %q (%q)", fb.ID(), fb.TextContent(), fb.ClassName())
		}
	}
	return nil
}

func (s *pageState) theSummaryIs(state string) error {
	if hidden := s.doc.ElementByID(page.SummaryID).Hidden(); hidden != (state == "hidden") {
		return fmt.Errorf("summary hidden=%v, want %s", hidden, state)
	}
	return nil
}

func (s *pageState) questionHasFocus(id string) error {
	active := s.doc.ActiveElement()
	if active == nil || active.ID() != id {
		return fmt.Errorf("focus is on %v, want #%s", active, id)
	}
	return nil
}
