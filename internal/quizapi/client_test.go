package quizapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateQuestionsSuccess(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate_questions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "questions": [
			{"question": "What does CSS stand for?", "options": ["A", "B", "C", "Cascading Style Sheets"], "correct": 3, "hash": "deadbeef"}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "secret-123"})
	questions, err := client.GenerateQuestions(context.Background(), GenerateRequest{
		GameType: "web-dev", Difficulty: "easy", Count: 10,
	})
	if err != nil {
		t.Fatalf("GenerateQuestions: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].Options[questions[0].CorrectIndex] != "Cascading Style Sheets" {
		t.Errorf("correct option mismatch")
	}
	if questions[0].Fingerprint != "deadbeef" {
		t.Errorf("remote fingerprint not preserved: %q", questions[0].Fingerprint)
	}
	if gotAuth != "Bearer secret-123" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
}

func TestGenerateQuestionsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.GenerateQuestions(context.Background(), GenerateRequest{GameType: "ai-ml", Count: 5})
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", httpErr.StatusCode)
	}
}

func TestGenerateQuestionsEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "questions": []}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.GenerateQuestions(context.Background(), GenerateRequest{GameType: "ai-ml", Count: 5})
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestGenerateQuestionsMalformedPayloads(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{"success": true, "questions": [`},
		{"rejected", `{"success": false, "message": "invalid game type"}`},
		{"correct index out of range", `{"success": true, "questions": [{"question": "q", "options": ["a", "b"], "correct": 5}]}`},
		{"no options", `{"success": true, "questions": [{"question": "q", "options": [], "correct": 0}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewClient(Config{BaseURL: srv.URL})
			if _, err := client.GenerateQuestions(context.Background(), GenerateRequest{GameType: "ai-ml", Count: 1}); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestGenerateQuestionsNoBaseURL(t *testing.T) {
	client := NewClient(Config{})
	if _, err := client.GenerateQuestions(context.Background(), GenerateRequest{GameType: "ai-ml", Count: 1}); err == nil {
		t.Fatalf("expected error without base URL")
	}
}
