package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr    string
	CORSOrigins []string

	DBDriver string
	DBDSN    string

	LLMAPIKey     string
	LLMBaseURL    string
	LLMModel      string
	LLMTimeoutSec int

	QuizQuestions        int
	ShortAnswerThreshold float64
	EnableEquivalence    bool
}

func FromEnv() Config {
	return Config{
		HTTPAddr:    envOr("HTTP_ADDR", ":8080"),
		CORSOrigins: csvOr("CORS_ORIGINS", "*"),

		DBDriver: envOr("DB_DRIVER", "sqlite"),
		DBDSN:    envOr("DB_DSN", ""),

		// GROQ_API_KEY accepted as a fallback for deployments that predate
		// the provider-neutral name.
		LLMAPIKey:     envOr("LLM_API_KEY", os.Getenv("GROQ_API_KEY")),
		LLMBaseURL:    envOr("LLM_BASE_URL", ""),
		LLMModel:      envOr("LLM_MODEL", ""),
		LLMTimeoutSec: envInt("LLM_TIMEOUT_SEC", 60),

		QuizQuestions:        envInt("QUIZ_QUESTIONS", 10),
		ShortAnswerThreshold: envFloat("SHORT_ANSWER_THRESHOLD", 0.75),
		EnableEquivalence:    envBool("ENABLE_EQUIVALENCE", false),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
