package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/browserquiz/internal/dom"
	"github.com/abhisek/browserquiz/internal/grader"
	"github.com/abhisek/browserquiz/internal/page"
	"github.com/abhisek/browserquiz/internal/quiz"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatHTML = "html"
)

// errBelowThreshold is returned by grade --fail-under when the percentage
// is lower than the requested threshold.
var errBelowThreshold = errors.New("score below threshold")

// gradeOptions are the answers and output settings of one grade run.
type gradeOptions struct {
	Text      string
	Choices   map[string]string
	Selected  []string
	Format    string
	FailUnder int
}

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Fill in the quiz from flags, submit it and print the result",
	Example: `  browserquiz grade --q1 gecko --q2 b --q3 b --q4 b --q5 offline,push,homescreen
  browserquiz grade --q1 gecko --format json
  browserquiz grade --q1 gecko --q2 b --fail-under 70`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		opts := gradeOptions{Choices: map[string]string{}}
		opts.Text, _ = f.GetString("q1")
		for _, q := range []string{"q2", "q3", "q4"} {
			opts.Choices[q], _ = f.GetString(q)
		}
		opts.Selected, _ = f.GetStringSlice("q5")
		opts.Format, _ = f.GetString("format")
		opts.FailUnder, _ = f.GetInt("fail-under")

		def, err := quiz.Default()
		if err != nil {
			return fmt.Errorf("load quiz: %w", err)
		}
		return runGrade(cmd.OutOrStdout(), def, opts, log)
	},
}

func init() {
	f := gradeCmd.Flags()
	f.String("q1", "", "Answer to question 1 (free text)")
	f.String("q2", "", "Answer to question 2 (a-d)")
	f.String("q3", "", "Answer to question 3 (a-d)")
	f.String("q4", "", "Answer to question 4 (a-d)")
	f.StringSlice("q5", nil, "Answers to question 5, comma separated (offline, push, homescreen, kernel)")
	f.String("format", formatText, "Output format: text, json or html")
	f.Int("fail-under", 0, "Return an error when the percentage is below this value (0-100, 0 disables)")
}

// gradeReport is the JSON output of grade.
type gradeReport struct {
	Attempt string `json:"attempt"`
	Message string `json:"message"`
	quiz.Result
}

// runGrade drives the host page the way a learner would: it fills every
// control, submits the form and reports what the page shows afterwards.
func runGrade(w io.Writer, def *quiz.Definition, opts gradeOptions, log *zap.Logger) error {
	switch opts.Format {
	case formatText, formatJSON, formatHTML:
	default:
		return fmt.Errorf("unknown format %q (want text, json or html)", opts.Format)
	}
	if opts.FailUnder < 0 || opts.FailUnder > 100 {
		return fmt.Errorf("--fail-under %d out of range (want 0-100)", opts.FailUnder)
	}

	doc, err := page.Load()
	if err != nil {
		return fmt.Errorf("load page: %w", err)
	}

	var (
		attempt string
		result  *quiz.Result
	)
	_, ok := grader.Attach(doc, def,
		grader.WithLogger(log),
		grader.WithObserver(func(id string, res quiz.Result) {
			attempt, result = id, &res
		}),
	)
	if !ok {
		return errors.New("quiz form not bound")
	}

	if err := fillAnswers(doc, opts); err != nil {
		return err
	}
	doc.ElementByID(page.FormID).RequestSubmit()
	if result == nil {
		return errors.New("quiz was not graded")
	}

	switch opts.Format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(gradeReport{
			Attempt: attempt,
			Message: def.OverallMessage(result.Passed),
			Result:  *result,
		})
	case formatHTML:
		err = doc.Render(w)
	default:
		err = writeTextReport(w, doc, *result)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if result.Percentage < opts.FailUnder {
		return fmt.Errorf("%w: %d%% is below %d%%", errBelowThreshold, result.Percentage, opts.FailUnder)
	}
	return nil
}

// fillAnswers sets the text control and clicks every chosen option.
func fillAnswers(doc *dom.Document, opts gradeOptions) error {
	if opts.Text != "" {
		el := doc.ElementByID("q1")
		if el == nil {
			return errors.New("q1: no text control")
		}
		el.SetValue(opts.Text)
	}

	for _, q := range []string{"q2", "q3", "q4"} {
		if v := opts.Choices[q]; v != "" {
			if err := clickOption(doc, q, v); err != nil {
				return err
			}
		}
	}
	for _, v := range opts.Selected {
		if err := clickOption(doc, "q5", v); err != nil {
			return err
		}
	}
	return nil
}

func clickOption(doc *dom.Document, name, value string) error {
	for _, el := range doc.ElementsByName(name) {
		if el.Value() == value {
			if name == "q5" && el.Checked() {
				// Repeated values select once.
				return nil
			}
			el.Click()
			return nil
		}
	}
	return fmt.Errorf("%s: no option %q", name, value)
}

// writeTextReport prints each question's verdict and feedback as the page
// renders it, then the summary.
func writeTextReport(w io.Writer, doc *dom.Document, res quiz.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, qr := range res.Questions {
		verdict := "incorrect"
		if qr.Correct {
			verdict = "correct"
		}
		feedback := ""
		if fb := doc.ElementByID(page.FeedbackID(qr.ID)); fb != nil {
			feedback = fb.TextContent()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", qr.ID, verdict, feedback)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	overall := doc.ElementByID(page.OverallID).TextContent()
	score := doc.ElementByID(page.ScoreID).TextContent()
	_, err := fmt.Fprintf(w, "\n%s\n%s\n", overall, score)
	return err
}
