package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/browserquiz/internal/dom"
	"github.com/abhisek/browserquiz/internal/grader"
	"github.com/abhisek/browserquiz/internal/page"
	"github.com/abhisek/browserquiz/internal/quiz"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the answer key and the host page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.OutOrStdout(), quiz.Default, page.Load, log)
	},
}

// runCheck validates the definition, then verifies the page carries every
// element the handlers and the answer key refer to.
func runCheck(w io.Writer, loadDef func() (*quiz.Definition, error), loadPage func() (*dom.Document, error), log *zap.Logger) error {
	def, err := loadDef()
	if err != nil {
		fmt.Fprintf(w, "definition: FAIL %v\n", err)
		return fmt.Errorf("check definition: %w", err)
	}
	fmt.Fprintf(w, "definition: ok (%d questions, pass mark %d%%)\n", len(def.Questions), def.PassPercent)

	doc, err := loadPage()
	if err != nil {
		fmt.Fprintf(w, "page: FAIL %v\n", err)
		return fmt.Errorf("check page: %w", err)
	}

	problems := pageProblems(doc, def)
	if _, ok := grader.Attach(doc, def, grader.WithLogger(log)); !ok {
		problems = append(problems, "handlers could not be attached")
	}
	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(w, "page: FAIL %s\n", p)
		}
		return fmt.Errorf("check page: %s", strings.Join(problems, "; "))
	}
	fmt.Fprintln(w, "page: ok")
	return nil
}

// pageProblems lists what the document lacks for def to be graded in full.
func pageProblems(doc *dom.Document, def *quiz.Definition) []string {
	var problems []string
	for _, id := range page.Required() {
		if doc.ElementByID(id) == nil {
			problems = append(problems, fmt.Sprintf("missing #%s", id))
		}
	}

	for _, q := range def.Questions {
		if doc.ElementByID(page.FeedbackID(q.ID)) == nil {
			problems = append(problems, fmt.Sprintf("%s: missing #%s", q.ID, page.FeedbackID(q.ID)))
		}

		switch q.Kind {
		case quiz.KindText:
			if doc.ElementByID(q.ID) == nil {
				problems = append(problems, fmt.Sprintf("%s: missing text control", q.ID))
			}
		case quiz.KindSingle, quiz.KindMulti:
			values := make(map[string]bool)
			for _, el := range doc.ElementsByName(q.ID) {
				values[el.Value()] = true
			}
			for _, a := range q.Accepted {
				if !values[a] {
					problems = append(problems, fmt.Sprintf("%s: no option %q", q.ID, a))
				}
			}
		}
	}
	return problems
}
