package quiz

// Kind selects the predicate used to grade a question.
type Kind string

const (
	// KindText matches trimmed free text case-insensitively against any
	// accepted string.
	KindText Kind = "text"
	// KindSingle matches a single selected option against the one accepted id.
	KindSingle Kind = "single"
	// KindMulti requires the selected set to equal the accepted set.
	KindMulti Kind = "multi"
)

// QuestionSpec is one entry of the answer key.
type QuestionSpec struct {
	ID        string   `yaml:"id"`
	Kind      Kind     `yaml:"kind"`
	Accepted  []string `yaml:"accepted"`
	Correct   string   `yaml:"correct"`
	Incorrect string   `yaml:"incorrect"`
}

// Verdict holds the overall pass and fail messages.
type Verdict struct {
	Pass string `yaml:"pass"`
	Fail string `yaml:"fail"`
}

// Definition is the complete, ordered answer key of a quiz.
type Definition struct {
	Title       string         `yaml:"title"`
	PassPercent int            `yaml:"pass_percent"`
	Verdict     Verdict        `yaml:"verdict"`
	Questions   []QuestionSpec `yaml:"questions"`
}

// Response is what the learner entered for one question. Only the field
// matching the question's Kind is consulted; the zero value is "no answer".
type Response struct {
	Text    string   `json:"text,omitempty"`
	Choice  string   `json:"choice,omitempty"`
	Choices []string `json:"choices,omitempty"`
}

// QuestionResult is the outcome for one question.
type QuestionResult struct {
	ID       string `json:"id"`
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback"`
}

// Result is the outcome of grading one submission.
type Result struct {
	Questions  []QuestionResult `json:"questions"`
	Score      int              `json:"score"`
	Total      int              `json:"total"`
	Percentage int              `json:"percentage"`
	Passed     bool             `json:"passed"`
}
