package draft

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
)

// DefaultQuestionCount matches the product default of ten drafted questions
// per document.
const DefaultQuestionCount = 10

// Orchestrator turns extracted document text into a canonical quiz: build
// the prompt, call the drafting model, run the blob through the sanitizer
// and schema normalizer. It does not retry; a retry, if the caller wants
// one, is a fresh draft of a fresh blob.
type Orchestrator struct {
	client    llm.Client
	questions int
}

func NewOrchestrator(client llm.Client, questions int) *Orchestrator {
	if questions <= 0 {
		questions = DefaultQuestionCount
	}
	return &Orchestrator{client: client, questions: questions}
}

// Draft returns the normalized quiz with a freshly assigned id. Model and
// transport failures surface as malformed drafts so the caller never sees a
// raw transport error.
func (o *Orchestrator) Draft(ctx context.Context, text string) (quiz.Quiz, error) {
	blob, err := o.client.Complete(ctx, o.prompt(text))
	if err != nil {
		return quiz.Quiz{}, quiz.NewMalformedDraft(fmt.Sprintf("drafting model call failed: %v", err), "")
	}
	q, err := quiz.FromDraft(blob)
	if err != nil {
		return quiz.Quiz{}, err
	}
	q.ID = uuid.NewString()
	return q, nil
}

func (o *Orchestrator) prompt(text string) string {
	return fmt.Sprintf(`Create %d clear quiz questions (mix of multiple choice, short answer, true/false, yes/no) based on the text below.
Respond with JSON only, in exactly this shape:
{"questions":[{"id":1,"type":"mc","question":"...","options":["a) ...","b) ...","c) ...","d) ..."],"answer":"a"}]}
Rules: type is one of "short", "mc", "tf", "yn". Number ids from 1. Include "options" only for "mc". For "tf" the answer is "true" or "false"; for "yn" it is "yes" or "no". No prose outside the JSON.

Text:
%s`, o.questions, text)
}
