package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	api "github.com/quizforge/quizforge/internal/api/http"
	"github.com/quizforge/quizforge/internal/draft"
	"github.com/quizforge/quizforge/internal/grading"
	"github.com/quizforge/quizforge/internal/quiz"
)

const validDraft = `{"questions":[
	{"id":1,"type":"mc","question":"Capital of France?","options":["a) Paris","b) London"],"answer":"a"},
	{"id":2,"type":"tf","question":"The sky is blue.","answer":"true"}
]}`

type fakeExtractor struct {
	text string
	err  error
}

func (f fakeExtractor) Text(io.ReaderAt, int64) (string, error) { return f.text, f.err }

type fakeModel struct{ out string }

func (f fakeModel) Complete(context.Context, string) (string, error) { return f.out, nil }

func newRouter(store quiz.Store, orch *draft.Orchestrator) http.Handler {
	r := chi.NewRouter()
	engine := grading.NewEngine()
	if orch != nil {
		r.Post("/upload", api.UploadPDFHandler(fakeExtractor{text: "doc text"}, orch, store))
	}
	r.Post("/quizzes", api.CreateQuizHandler(store))
	r.Get("/quizzes/{quizID}", api.GetQuizHandler(store))
	r.Get("/quizzes/{quizID}/key", api.GetQuizKeyHandler(store))
	r.Post("/quizzes/{quizID}/grade", api.GradeSubmissionHandler(store, engine))
	return r
}

func createQuiz(t *testing.T, router http.Handler, body string) string {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/quizzes", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("create quiz: status %d body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		QuizID string `json:"quiz_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if resp.QuizID == "" {
		t.Fatal("create quiz returned no id")
	}
	return resp.QuizID
}

func TestCreateAndGradeFlow(t *testing.T) {
	router := newRouter(quiz.NewInMemoryStore(), nil)
	id := createQuiz(t, router, "```json\n"+validDraft+"\n```")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/quizzes/"+id+"/grade",
		strings.NewReader(`{"1":"A) Paris","2":"yes"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("grade: status %d body %s", rec.Code, rec.Body.String())
	}
	var sb quiz.Scoreboard
	if err := json.Unmarshal(rec.Body.Bytes(), &sb); err != nil {
		t.Fatalf("decode scoreboard: %v", err)
	}
	if sb.TotalCorrect != 2 || sb.TotalQuestions != 2 {
		t.Fatalf("scoreboard %+v", sb)
	}
	if !sb.Scores["1"] || !sb.Scores["2"] {
		t.Fatalf("scores %v", sb.Scores)
	}
}

func TestGradeToleratesJunkEntries(t *testing.T) {
	router := newRouter(quiz.NewInMemoryStore(), nil)
	id := createQuiz(t, router, validDraft)

	// wrong-typed and stray entries degrade to incorrect, never to an error
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/quizzes/"+id+"/grade",
		strings.NewReader(`{"1":42,"2":"true","nope":["x"]}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("grade: status %d body %s", rec.Code, rec.Body.String())
	}
	var sb quiz.Scoreboard
	if err := json.Unmarshal(rec.Body.Bytes(), &sb); err != nil {
		t.Fatalf("decode scoreboard: %v", err)
	}
	if sb.Scores["1"] || !sb.Scores["2"] || sb.TotalCorrect != 1 {
		t.Fatalf("scoreboard %+v", sb)
	}
}

func TestCreateQuizDraftErrorEchoesRaw(t *testing.T) {
	router := newRouter(quiz.NewInMemoryStore(), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/quizzes",
		strings.NewReader("total nonsense, not a quiz")))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp["error"] == "" || resp["raw"] != "total nonsense, not a quiz" {
		t.Fatalf("draft error body %v", resp)
	}
}

func TestGetQuizViews(t *testing.T) {
	router := newRouter(quiz.NewInMemoryStore(), nil)
	id := createQuiz(t, router, validDraft)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/quizzes/"+id, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get: status %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"answer"`) {
		t.Fatalf("learner view leaked answers: %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/quizzes/"+id+"/key", nil))
	if !strings.Contains(rec.Body.String(), `"answer"`) {
		t.Fatalf("key view missing answers: %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/quizzes/does-not-exist", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown quiz: status %d, want 404", rec.Code)
	}
}

func TestUploadFlow(t *testing.T) {
	store := quiz.NewInMemoryStore()
	orch := draft.NewOrchestrator(fakeModel{out: validDraft}, 2)
	router := newRouter(store, orch)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("pdf", "doc.pdf")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	_, _ = fw.Write([]byte("%PDF-fake"))
	_ = mw.Close()

	req := httptest.NewRequest("POST", "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("upload: status %d body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		QuizID string `json:"quiz_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	if _, err := store.Get(context.Background(), resp.QuizID); err != nil {
		t.Fatalf("uploaded quiz not stored: %v", err)
	}
}

func TestUploadMissingFile(t *testing.T) {
	router := newRouter(quiz.NewInMemoryStore(), draft.NewOrchestrator(fakeModel{}, 1))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/upload", strings.NewReader("not multipart")))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}
