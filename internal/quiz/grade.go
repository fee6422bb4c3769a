package quiz

import (
	"fmt"
	"math"
	"strings"
)

// predicate decides whether a response satisfies a question.
type predicate func(q QuestionSpec, r Response) bool

var predicates = map[Kind]predicate{
	KindText:   matchText,
	KindSingle: matchSingle,
	KindMulti:  matchSet,
}

// Grade evaluates responses against def. Questions without an entry in
// responses are graded as unanswered. Grade never fails: a blank or absent
// answer is an incorrect answer.
func Grade(def *Definition, responses map[string]Response) Result {
	res := Result{
		Questions: make([]QuestionResult, 0, len(def.Questions)),
		Total:     len(def.Questions),
	}
	for _, q := range def.Questions {
		ok := Check(q, responses[q.ID])
		qr := QuestionResult{ID: q.ID, Correct: ok, Feedback: q.Incorrect}
		if ok {
			res.Score++
			qr.Feedback = q.Correct
		}
		res.Questions = append(res.Questions, qr)
	}
	res.Percentage = Percentage(res.Score, res.Total)
	res.Passed = res.Percentage >= def.PassPercent
	return res
}

// Check applies the predicate for q's kind to r.
func Check(q QuestionSpec, r Response) bool {
	p, ok := predicates[q.Kind]
	if !ok {
		return false
	}
	return p(q, r)
}

// Percentage returns score/total as a whole percentage, rounding halves up.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// OverallMessage returns the verdict text for a result.
func (d *Definition) OverallMessage(passed bool) string {
	if passed {
		return d.Verdict.Pass
	}
	return d.Verdict.Fail
}

// ScoreHTML renders the score line shown under the verdict.
func ScoreHTML(r Result) string {
	return fmt.Sprintf(`You scored <span class="score-badge">%d / %d</span> (%d%%).`, r.Score, r.Total, r.Percentage)
}

func matchText(q QuestionSpec, r Response) bool {
	answer := strings.TrimSpace(r.Text)
	for _, a := range q.Accepted {
		if strings.EqualFold(answer, a) {
			return true
		}
	}
	return false
}

func matchSingle(q QuestionSpec, r Response) bool {
	return r.Choice != "" && len(q.Accepted) == 1 && r.Choice == q.Accepted[0]
}

func matchSet(q QuestionSpec, r Response) bool {
	return setEqual(toSet(q.Accepted), toSet(r.Choices))
}

func toSet(values []string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

func setEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
