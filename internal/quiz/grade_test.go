package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultDef(t *testing.T) *Definition {
	t.Helper()
	def, err := Default()
	require.NoError(t, err)
	return def
}

func allCorrect() map[string]Response {
	return map[string]Response{
		"q1": {Text: "Gecko"},
		"q2": {Choice: "b"},
		"q3": {Choice: "b"},
		"q4": {Choice: "b"},
		"q5": {Choices: []string{"offline", "push", "homescreen"}},
	}
}

func TestGrade_AllCorrect(t *testing.T) {
	def := defaultDef(t)
	res := Grade(def, allCorrect())

	assert.Equal(t, 5, res.Score)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 100, res.Percentage)
	assert.True(t, res.Passed)
	require.Len(t, res.Questions, 5)
	for i, qr := range res.Questions {
		assert.True(t, qr.Correct, qr.ID)
		assert.Equal(t, def.Questions[i].Correct, qr.Feedback)
	}
}

func TestGrade_AllBlank(t *testing.T) {
	def := defaultDef(t)

	for name, responses := range map[string]map[string]Response{
		"nil map":      nil,
		"empty values": {"q1": {}, "q2": {}, "q3": {}, "q4": {}, "q5": {}},
	} {
		t.Run(name, func(t *testing.T) {
			res := Grade(def, responses)
			assert.Equal(t, 0, res.Score)
			assert.Equal(t, 0, res.Percentage)
			assert.False(t, res.Passed)
			for i, qr := range res.Questions {
				assert.False(t, qr.Correct, qr.ID)
				assert.Equal(t, def.Questions[i].Incorrect, qr.Feedback)
			}
		})
	}
}

func TestCheck_Text(t *testing.T) {
	q := defaultDef(t).Questions[0]

	tests := []struct {
		input string
		want  bool
	}{
		{"gecko", true},
		{"Gecko", true},
		{"  GECKO\t", true},
		{"\ngecko \n", true},
		{"geck o", false},
		{"webkit", false},
		{"", false},
		{"   ", false},
	}
	for _, tc := range tests {
		got := Check(q, Response{Text: tc.input})
		assert.Equal(t, tc.want, got, "Check(%q)", tc.input)
	}
}

func TestCheck_Single(t *testing.T) {
	q := defaultDef(t).Questions[1]

	assert.True(t, Check(q, Response{Choice: "b"}))
	for _, choice := range []string{"a", "c", "d", "B", ""} {
		assert.False(t, Check(q, Response{Choice: choice}), "choice %q", choice)
	}
}

func TestCheck_Multi(t *testing.T) {
	q := defaultDef(t).Questions[4]

	tests := []struct {
		name    string
		choices []string
		want    bool
	}{
		{"exact", []string{"offline", "push", "homescreen"}, true},
		{"exact, other order", []string{"homescreen", "offline", "push"}, true},
		{"duplicates collapse", []string{"push", "offline", "push", "homescreen"}, true},
		{"subset", []string{"offline", "push"}, false},
		{"superset with distractor", []string{"offline", "push", "homescreen", "kernel"}, false},
		{"same size, wrong member", []string{"offline", "push", "kernel"}, false},
		{"none", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(q, Response{Choices: tt.choices}))
		})
	}
}

func TestCheck_UnknownKind(t *testing.T) {
	q := QuestionSpec{ID: "x", Kind: "essay", Accepted: []string{"a"}}
	assert.False(t, Check(q, Response{Text: "a", Choice: "a"}))
}

func TestGrade_ScoreMatchesCorrectCount(t *testing.T) {
	def := defaultDef(t)
	wrong := map[string]Response{
		"q1": {Text: "blink"},
		"q2": {Choice: "a"},
		"q3": {Choice: "c"},
		"q4": {Choice: "d"},
		"q5": {Choices: []string{"offline"}},
	}

	// Every subset of correct answers, encoded as a bitmask over q1..q5.
	for mask := 0; mask < 1<<5; mask++ {
		responses := map[string]Response{}
		want := 0
		for i, q := range def.Questions {
			if mask&(1<<i) != 0 {
				responses[q.ID] = allCorrect()[q.ID]
				want++
			} else {
				responses[q.ID] = wrong[q.ID]
			}
		}

		res := Grade(def, responses)
		assert.Equal(t, want, res.Score, "mask %05b", mask)
		assert.Equal(t, Percentage(want, 5), res.Percentage)
		assert.Equal(t, res.Percentage >= 70, res.Passed)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{0, 5, 0},
		{1, 5, 20},
		{3, 5, 60},
		{4, 5, 80},
		{5, 5, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{0, 0, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Percentage(tc.score, tc.total), "%d/%d", tc.score, tc.total)
	}
}

func TestPassThreshold(t *testing.T) {
	def := &Definition{PassPercent: 70, Questions: make([]QuestionSpec, 10)}
	for i := range def.Questions {
		def.Questions[i] = QuestionSpec{ID: string(rune('a' + i)), Kind: KindSingle, Accepted: []string{"y"}}
	}

	responses := func(correct int) map[string]Response {
		out := map[string]Response{}
		for i := 0; i < correct; i++ {
			out[def.Questions[i].ID] = Response{Choice: "y"}
		}
		return out
	}

	assert.False(t, Grade(def, responses(6)).Passed)
	assert.True(t, Grade(def, responses(7)).Passed, "exactly 70% passes")
}

func TestMessages(t *testing.T) {
	def := defaultDef(t)

	assert.Contains(t, def.OverallMessage(true), "Pass")
	assert.Contains(t, def.OverallMessage(false), "Not yet")

	res := Result{Score: 4, Total: 5, Percentage: 80}
	assert.Equal(t, `You scored <span class="score-badge">4 / 5</span> (80%).`, ScoreHTML(res))
}
