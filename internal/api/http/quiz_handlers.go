package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/draft"
	"github.com/quizforge/quizforge/internal/extract"
	"github.com/quizforge/quizforge/internal/quiz"
)

type quizResponse struct {
	QuizID string    `json:"quiz_id"`
	Quiz   quiz.Quiz `json:"quiz"`
}

// POST /upload — multipart PDF under field "pdf". Extracts text, drafts a
// quiz via the model, stores it, and returns the learner view.
func UploadPDFHandler(ex extract.TextExtractor, orch *draft.Orchestrator, store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("pdf")
		if err != nil {
			writeError(w, http.StatusBadRequest, "pdf file required")
			return
		}
		defer f.Close()

		text, err := ex.Text(f, hdr.Size)
		if errors.Is(err, extract.ErrNoText) {
			writeError(w, http.StatusUnprocessableEntity, "could not extract any text from the PDF")
			return
		}
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable pdf: "+err.Error())
			return
		}

		q, err := orch.Draft(r.Context(), text)
		if err != nil {
			writeDraftError(w, err)
			return
		}
		if err := store.Put(r.Context(), q); err != nil {
			writeError(w, http.StatusInternalServerError, "store quiz: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, quizResponse{QuizID: q.ID, Quiz: q.LearnerView()})
	}
}

// POST /quizzes — body is a raw draft blob as captured from the model. Runs
// the same sanitize/normalize pipeline without a model call, which lets
// operators replay a recorded draft.
func CreateQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "read body: "+err.Error())
			return
		}
		q, err := quiz.FromDraft(string(body))
		if err != nil {
			writeDraftError(w, err)
			return
		}
		q.ID = uuid.NewString()
		if err := store.Put(r.Context(), q); err != nil {
			writeError(w, http.StatusInternalServerError, "store quiz: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, quizResponse{QuizID: q.ID, Quiz: q})
	}
}

// GET /quizzes/{quizID} — learner view, answer keys stripped.
func GetQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := store.Get(r.Context(), chi.URLParam(r, "quizID"))
		if errors.Is(err, quiz.ErrNotFound) {
			writeError(w, http.StatusNotFound, "quiz not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, q.LearnerView())
	}
}

// GET /quizzes/{quizID}/key — full quiz including answers, for operators.
func GetQuizKeyHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := store.Get(r.Context(), chi.URLParam(r, "quizID"))
		if errors.Is(err, quiz.ErrNotFound) {
			writeError(w, http.StatusNotFound, "quiz not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, q)
	}
}
