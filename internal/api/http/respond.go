package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizforge/quizforge/internal/quiz"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDraftError surfaces both the human-readable message and the raw
// offending model text, so operators can diagnose drafting drift without
// reproducing the request.
func writeDraftError(w http.ResponseWriter, err error) {
	var de *quiz.DraftError
	if errors.As(err, &de) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": de.Error(),
			"raw":   de.Raw,
		})
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
