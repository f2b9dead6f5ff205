// Package report submits final game scores to the scoreboard service.
//
// Score submission is best-effort: one request, no retries, failures
// logged and swallowed. Sessions invoke Report on a goroutine so it never
// blocks gameplay.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Reporter sends score submissions to a remote endpoint.
type Reporter struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// New creates a reporter. A nil httpClient gets a 10s timeout default.
func New(baseURL string, httpClient *http.Client, logger *log.Logger) *Reporter {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Reporter{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

type scorePayload struct {
	GameType string `json:"game_type"`
	Score    int    `json:"score"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Report submits one final score. The outcome is logged and otherwise
// discarded; callers never see an error.
func (r *Reporter) Report(ctx context.Context, gameType string, score int, name, identityKey string) {
	if r.baseURL == "" {
		r.logger.Printf("score_report_skipped game=%s reason=no_endpoint", gameType)
		return
	}

	if err := r.send(ctx, gameType, score, name, identityKey); err != nil {
		r.logger.Printf("score_report_failed game=%s score=%d user=%s err=%v", gameType, score, identityKey, err)
		return
	}
	r.logger.Printf("score_reported game=%s score=%d user=%s", gameType, score, identityKey)
}

func (r *Reporter) send(ctx context.Context, gameType string, score int, name, identityKey string) error {
	body, err := json.Marshal(scorePayload{
		GameType: gameType,
		Score:    score,
		Name:     name,
		Username: identityKey,
	})
	if err != nil {
		return fmt.Errorf("report: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.baseURL+"/api/save_score", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("report: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return fmt.Errorf("report: http request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("report: HTTP %d", resp.StatusCode)
	}
	return nil
}
