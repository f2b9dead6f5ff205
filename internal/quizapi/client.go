// Package quizapi provides a Go client for the upstream question-generation
// service.
//
// The service wraps an LLM behind a plain JSON endpoint. Generation is
// best-effort: any transport failure, non-OK status, or malformed payload is
// reported as an error so the caller can fall back to local templates. The
// client never retries.
package quizapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/games"
)

// Config holds configuration for the question-generation client.
type Config struct {
	// BaseURL is the service root (e.g., "https://quizgen.example.com").
	// Required.
	BaseURL string

	// APIKey is sent as a bearer token. Optional for self-hosted services.
	APIKey string

	// HTTPClient allows injecting a custom HTTP client (useful for testing).
	// Defaults to a client with 30s timeout.
	HTTPClient *http.Client

	// UserAgent overrides the User-Agent header. Optional.
	UserAgent string
}

// Client is a question-generation service client.
type Client struct {
	config Config
	http   *http.Client
}

// NewClient creates a new client with the given configuration.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		config: cfg,
		http:   httpClient,
	}
}

// GenerateRequest is the generation request payload.
type GenerateRequest struct {
	GameType   string `json:"game_type"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

type generateResponse struct {
	Success   bool             `json:"success"`
	Questions []games.Question `json:"questions"`
	Message   string           `json:"message,omitempty"`
}

// GenerateQuestions asks the upstream service for a batch of questions.
// A nil error guarantees a non-empty, structurally valid question list.
func (c *Client) GenerateQuestions(ctx context.Context, req GenerateRequest) ([]games.Question, error) {
	base := strings.TrimRight(c.config.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("quizapi: base URL not configured")
	}
	url := base + "/api/generate_questions"

	jsonBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("quizapi: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("quizapi: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}
	if c.config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("quizapi: http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("quizapi: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("quizapi: invalid response JSON: %w", err)
	}
	if !parsed.Success {
		return nil, fmt.Errorf("quizapi: generation rejected: %s", parsed.Message)
	}
	if len(parsed.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	for i, q := range parsed.Questions {
		if len(q.Options) == 0 || q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return nil, fmt.Errorf("quizapi: malformed question at index %d", i)
		}
	}

	return parsed.Questions, nil
}
