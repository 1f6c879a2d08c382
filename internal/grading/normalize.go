package grading

import (
	"strings"
	"unicode"

	"github.com/quizforge/quizforge/internal/quiz"
)

// Normalize maps a raw answer to its canonical comparable form for the given
// question type. It is pure and character-level: fuzzy comparison is the
// engine's concern, not the normalizer's.
func Normalize(raw string, typ quiz.QuestionType) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch typ {
	case quiz.TypeTF, quiz.TypeYN:
		// tf and yn share one token map so "yes" and "true" land on the
		// same canonical value regardless of which type declared them.
		switch s {
		case "true", "t", "yes", "y":
			return "true"
		case "false", "f", "no", "n":
			return "false"
		}
		// unrecognized tokens pass through and compare unequal to both
		// canonical values
		return s
	case quiz.TypeMC:
		s = strings.TrimSuffix(s, ")")
		return leadingLetters(s)
	default:
		return s
	}
}

// leadingLetters returns the contiguous run of letters at the front of s,
// stopping at the first whitespace or punctuation boundary. Captures "a",
// "a)" and "a) option text" alike.
func leadingLetters(s string) string {
	for i, r := range s {
		if !unicode.IsLetter(r) {
			return s[:i]
		}
	}
	return s
}
