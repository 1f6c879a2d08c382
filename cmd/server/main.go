package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/quizforge/quizforge/internal/api/http"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/db"
	"github.com/quizforge/quizforge/internal/draft"
	"github.com/quizforge/quizforge/internal/extract"
	"github.com/quizforge/quizforge/internal/grading"
	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := quiz.NewSQLStore(dbh)

	// --- Drafting model ---
	client := llm.NewChatClient(cfg.LLMAPIKey,
		llm.WithBaseURL(cfg.LLMBaseURL),
		llm.WithModel(cfg.LLMModel),
		llm.WithTimeout(time.Duration(cfg.LLMTimeoutSec)*time.Second),
	)
	orch := draft.NewOrchestrator(client, cfg.QuizQuestions)

	// --- Grading ---
	gopts := []grading.Option{grading.WithShortAnswerThreshold(cfg.ShortAnswerThreshold)}
	if cfg.EnableEquivalence {
		gopts = append(gopts, grading.WithEquivalenceChecker(llm.NewEquivalenceChecker(client)))
	}
	engine := grading.NewEngine(gopts...)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	// uploads wait on the drafting model, so the request budget must cover it
	r.Use(middleware.Timeout(time.Duration(cfg.LLMTimeoutSec+30) * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","message":"quiz backend is running."}`))
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) })

	r.Post("/upload", api.UploadPDFHandler(extract.NewPDFExtractor(), orch, store))
	r.Post("/quizzes", api.CreateQuizHandler(store))
	r.Get("/quizzes/{quizID}", api.GetQuizHandler(store))
	r.Get("/quizzes/{quizID}/key", api.GetQuizKeyHandler(store))
	r.Post("/quizzes/{quizID}/grade", api.GradeSubmissionHandler(store, engine))

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
