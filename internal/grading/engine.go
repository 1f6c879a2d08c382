package grading

import (
	"context"
	"strconv"
	"strings"

	"github.com/quizforge/quizforge/internal/quiz"
)

// DefaultShortAnswerThreshold is the similarity ratio a short answer must
// exceed to be accepted without an exact match. It is configuration, not
// derived data; override with WithShortAnswerThreshold.
const DefaultShortAnswerThreshold = 0.75

// equivalenceFloor bounds the escalation window: a short answer scoring
// below it is plainly wrong and never escalated to the checker.
const equivalenceFloor = 0.5

// EquivalenceChecker decides whether two short answers mean the same thing.
// It is a convenience escalation, not a correctness guarantee: any error
// from it grades the answer incorrect.
type EquivalenceChecker interface {
	Equivalent(ctx context.Context, canonical, submitted string) (bool, error)
}

// strategy grades a single question's submitted answer.
type strategy interface {
	correct(ctx context.Context, q quiz.Question, submitted string) bool
}

// Engine grades submissions against a quiz's answer key. It routes by
// question type to a per-type comparison strategy and never mutates its
// inputs, so the same (quiz, submission) pair always grades identically.
type Engine struct {
	threshold  float64
	equiv      EquivalenceChecker
	strategies map[quiz.QuestionType]strategy
}

type Option func(*Engine)

func WithShortAnswerThreshold(t float64) Option {
	return func(e *Engine) {
		if t > 0 && t <= 1 {
			e.threshold = t
		}
	}
}

func WithEquivalenceChecker(c EquivalenceChecker) Option {
	return func(e *Engine) { e.equiv = c }
}

// NewEngine installs the built-in strategies.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{threshold: DefaultShortAnswerThreshold}
	for _, o := range opts {
		o(e)
	}
	e.strategies = map[quiz.QuestionType]strategy{
		quiz.TypeMC:    exactStrategy{},
		quiz.TypeTF:    exactStrategy{},
		quiz.TypeYN:    exactStrategy{},
		quiz.TypeShort: shortStrategy{threshold: e.threshold, equiv: e.equiv},
	}
	return e
}

// GradeSubmission grades every question of the quiz, in quiz order, so
// questions the learner skipped are still scored. A missing submission
// entry grades as the empty answer; extra entries are ignored. A question
// whose canonical answer is empty grades incorrect no matter what was
// submitted, closing the loophole where both sides are blank.
func (e *Engine) GradeSubmission(ctx context.Context, q quiz.Quiz, sub quiz.Submission) quiz.Scoreboard {
	sb := quiz.Scoreboard{
		Scores:         make(map[string]bool, len(q.Questions)),
		TotalQuestions: len(q.Questions),
	}
	for _, qu := range q.Questions {
		key := strconv.Itoa(qu.ID)
		ok := e.gradeOne(ctx, qu, sub[key])
		sb.Scores[key] = ok
		if ok {
			sb.TotalCorrect++
		}
	}
	return sb
}

func (e *Engine) gradeOne(ctx context.Context, qu quiz.Question, submitted string) bool {
	if qu.AnswerMissing || strings.TrimSpace(qu.Answer) == "" {
		return false
	}
	s, ok := e.strategies[qu.Type]
	if !ok {
		// cannot happen after schema normalization; a bad record grades
		// incorrect rather than aborting the quiz
		return false
	}
	return s.correct(ctx, qu, submitted)
}

type exactStrategy struct{}

func (exactStrategy) correct(_ context.Context, qu quiz.Question, submitted string) bool {
	want := Normalize(qu.Answer, qu.Type)
	got := Normalize(submitted, qu.Type)
	return want != "" && want == got
}

type shortStrategy struct {
	threshold float64
	equiv     EquivalenceChecker
}

func (s shortStrategy) correct(ctx context.Context, qu quiz.Question, submitted string) bool {
	want := Normalize(qu.Answer, qu.Type)
	got := Normalize(submitted, qu.Type)
	if want == "" || got == "" {
		return false
	}
	if got == want {
		return true
	}
	r := Ratio(want, got)
	if r > s.threshold {
		return true
	}
	if s.equiv != nil && r >= equivalenceFloor {
		ok, err := s.equiv.Equivalent(ctx, want, got)
		return err == nil && ok
	}
	return false
}
