package llm

import (
	"context"
	"fmt"
	"strings"
)

// EquivalenceChecker asks the model whether a submitted short answer means
// the same thing as the canonical one. It satisfies the grading engine's
// escalation interface; the engine treats any error as "incorrect", so this
// checker can only ever widen acceptance, never approve by failure.
type EquivalenceChecker struct {
	client Client
}

func NewEquivalenceChecker(c Client) *EquivalenceChecker {
	return &EquivalenceChecker{client: c}
}

func (e *EquivalenceChecker) Equivalent(ctx context.Context, canonical, submitted string) (bool, error) {
	prompt := fmt.Sprintf(`A quiz answer key says: %q
A student answered: %q
Do these mean the same thing? Reply with exactly one word: yes or no.`, canonical, submitted)

	out, err := e.client.Complete(ctx, prompt)
	if err != nil {
		return false, err
	}
	switch firstToken(out) {
	case "yes":
		return true, nil
	default:
		// "no" and any unparseable reply both grade incorrect
		return false, nil
	}
}

func firstToken(s string) string {
	f := strings.Fields(strings.ToLower(s))
	if len(f) == 0 {
		return ""
	}
	return strings.Trim(f[0], ".,!\"'")
}
