package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is an OpenAI-compatible chat-completions endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.3-70b-versatile"

	defaultTemperature = 0.3
	defaultTimeout     = 60 * time.Second
)

// Client is the capability the drafting orchestrator and the optional
// equivalence checker depend on. Implementations must honor ctx deadlines
// and return either the model's text or an error, never both.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ChatClient talks to an OpenAI-compatible chat-completions API. It holds no
// process-global state; the hosting process owns its lifecycle.
type ChatClient struct {
	apiKey  string
	baseURL string
	model   string
	httpc   *http.Client
}

type ClientOption func(*ChatClient)

func WithBaseURL(u string) ClientOption {
	return func(c *ChatClient) {
		if u != "" {
			c.baseURL = strings.TrimSuffix(u, "/")
		}
	}
}

func WithModel(m string) ClientOption {
	return func(c *ChatClient) {
		if m != "" {
			c.model = m
		}
	}
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *ChatClient) {
		if d > 0 {
			c.httpc.Timeout = d
		}
	}
}

func NewChatClient(apiKey string, opts ...ClientOption) *ChatClient {
	c := &ChatClient{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *ChatClient) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: defaultTemperature,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return "", fmt.Errorf("decode chat completion: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat completion")
	}
	return cr.Choices[0].Message.Content, nil
}
