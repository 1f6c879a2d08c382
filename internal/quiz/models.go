package quiz

// QuestionType enumerates the closed set of supported question kinds.
type QuestionType string

const (
	TypeShort QuestionType = "short"
	TypeMC    QuestionType = "mc"
	TypeTF    QuestionType = "tf"
	TypeYN    QuestionType = "yn"
)

func (t QuestionType) Valid() bool {
	switch t {
	case TypeShort, TypeMC, TypeTF, TypeYN:
		return true
	}
	return false
}

// Question is the canonical record produced by the schema normalizer; no
// other component constructs one from raw draft data. Options is populated
// only for TypeMC. AnswerMissing marks a question the draft left without an
// answer key; such a question never grades correct.
type Question struct {
	ID            int          `json:"id"`
	Type          QuestionType `json:"type"`
	Prompt        string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	Answer        string       `json:"answer,omitempty"`
	AnswerMissing bool         `json:"-"`
}

// Quiz owns its questions exclusively; ids are unique within a quiz and
// never reassigned after drafting.
type Quiz struct {
	ID        string     `json:"id,omitempty"`
	Questions []Question `json:"questions"`
}

// LearnerView returns a copy with answer keys removed for serving to
// learners.
func (q Quiz) LearnerView() Quiz {
	out := Quiz{ID: q.ID, Questions: make([]Question, len(q.Questions))}
	copy(out.Questions, q.Questions)
	for i := range out.Questions {
		out.Questions[i].Answer = ""
	}
	return out
}

// Submission maps question-id-as-string to the learner's raw answer text.
// Keys may be missing or extraneous; grading tolerates both.
type Submission map[string]string

// ParseSubmission coerces a decoded JSON object into a Submission. An entry
// whose value is not a string degrades to the empty answer (graded
// incorrect) rather than failing the whole submission.
func ParseSubmission(m map[string]any) Submission {
	sub := make(Submission, len(m))
	for k, v := range m {
		s, _ := v.(string)
		sub[k] = s
	}
	return sub
}

// Scoreboard is the grading result. TotalQuestions always equals the quiz's
// question count; TotalCorrect equals the number of true entries in Scores.
type Scoreboard struct {
	Scores         map[string]bool `json:"scores"`
	TotalCorrect   int             `json:"total_correct"`
	TotalQuestions int             `json:"total_questions"`
}
