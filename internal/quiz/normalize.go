package quiz

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// draftDoc is the loose shape of a parsed model draft. Elements stay raw so
// one undecodable question drops alone instead of sinking the document.
type draftDoc struct {
	Questions []json.RawMessage `json:"questions"`
}

type draftQuestion struct {
	ID       json.RawMessage   `json:"id"`
	Type     string            `json:"type"`
	Question string            `json:"question"`
	Options  []json.RawMessage `json:"options"`
	Answer   json.RawMessage   `json:"answer"`
}

// FromDraft runs the sanitizer and the schema normalizer over a raw model
// blob and returns the canonical quiz. On failure the returned error is a
// *DraftError carrying the original blob.
func FromDraft(raw string) (Quiz, error) {
	clean := Sanitize(raw)
	if clean == "" {
		return Quiz{}, NewMalformedDraft("empty draft", raw)
	}

	var doc draftDoc
	if err := json.Unmarshal([]byte(clean), &doc); err != nil {
		return Quiz{}, NewMalformedDraft(fmt.Sprintf("parse: %v", err), raw)
	}
	if len(doc.Questions) == 0 {
		return Quiz{}, NewSchemaViolation("no questions in draft", raw)
	}

	questions := make([]Question, 0, len(doc.Questions))
	seen := make(map[int]bool, len(doc.Questions))
	for _, elem := range doc.Questions {
		q, ok := normalizeQuestion(elem)
		if !ok {
			continue
		}
		// duplicate ids: first occurrence wins
		if seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return Quiz{}, NewSchemaViolation("no usable questions in draft", raw)
	}
	return Quiz{Questions: questions}, nil
}

// normalizeQuestion coerces one draft element into a canonical Question.
// Repairable defects (missing type, missing answer, stray options) are fixed
// in place; a question that cannot be normalized is dropped, never the
// whole quiz.
func normalizeQuestion(elem json.RawMessage) (Question, bool) {
	var dq draftQuestion
	if err := json.Unmarshal(elem, &dq); err != nil {
		return Question{}, false
	}

	id, ok := coerceInt(dq.ID)
	if !ok || id <= 0 {
		return Question{}, false
	}
	prompt := strings.TrimSpace(dq.Question)
	if prompt == "" {
		return Question{}, false
	}

	typ := QuestionType(strings.ToLower(strings.TrimSpace(dq.Type)))
	if !typ.Valid() {
		typ = TypeShort
	}

	q := Question{ID: id, Type: typ, Prompt: prompt}

	if typ == TypeMC {
		q.Options = coerceOptions(dq.Options)
		if len(q.Options) == 0 {
			return Question{}, false
		}
	}

	answer, _ := coerceString(dq.Answer)
	q.Answer = strings.TrimSpace(answer)
	if q.Answer == "" {
		// kept, but flagged: an unanswerable question must never award
		// free credit
		q.AnswerMissing = true
	}
	return q, true
}

func coerceInt(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		if f, err := n.Float64(); err == nil {
			return int(f), true
		}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return i, true
		}
	}
	return 0, false
}

func coerceString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b), true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

func coerceOptions(raws []json.RawMessage) []string {
	out := make([]string, 0, len(raws))
	for _, r := range raws {
		s, ok := coerceString(r)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
