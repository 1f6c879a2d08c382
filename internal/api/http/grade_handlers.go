package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/grading"
	"github.com/quizforge/quizforge/internal/quiz"
)

// POST /quizzes/{quizID}/grade — body is the Submission object. Grading
// itself never fails; only an unknown quiz or an unreadable body can.
func GradeSubmissionHandler(store quiz.Store, engine *grading.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		q, err := store.Get(r.Context(), chi.URLParam(r, "quizID"))
		if errors.Is(err, quiz.ErrNotFound) {
			writeError(w, http.StatusNotFound, "quiz not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		sb := engine.GradeSubmission(r.Context(), q, quiz.ParseSubmission(body))
		writeJSON(w, http.StatusOK, sb)
	}
}
