package quiz

import "errors"

var (
	// ErrMalformedDraft: the model's output could not be parsed as a quiz
	// document even after sanitizing.
	ErrMalformedDraft = errors.New("malformed draft")
	// ErrSchemaViolation: the document parsed but no usable question
	// survived normalization.
	ErrSchemaViolation = errors.New("draft violates quiz schema")
)

// DraftError carries the offending raw text alongside a taxonomy error so
// the boundary can surface it for diagnostics instead of silently
// substituting an empty quiz.
type DraftError struct {
	Kind error // ErrMalformedDraft or ErrSchemaViolation
	Msg  string
	Raw  string
}

func (e *DraftError) Error() string {
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Msg
}

func (e *DraftError) Unwrap() error { return e.Kind }

func NewMalformedDraft(msg, raw string) *DraftError {
	return &DraftError{Kind: ErrMalformedDraft, Msg: msg, Raw: raw}
}

func NewSchemaViolation(msg, raw string) *DraftError {
	return &DraftError{Kind: ErrSchemaViolation, Msg: msg, Raw: raw}
}
