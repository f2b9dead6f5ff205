package report

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReportSendsScore(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/save_score" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	r := New(srv.URL, nil, log.New(io.Discard, "", 0))
	r.Report(context.Background(), "speed-typing", 72, "Asha", "guest_Asha")

	if got["game_type"] != "speed-typing" {
		t.Errorf("game_type = %v", got["game_type"])
	}
	if got["score"] != float64(72) {
		t.Errorf("score = %v", got["score"])
	}
	if got["name"] != "Asha" {
		t.Errorf("name = %v", got["name"])
	}
	if got["username"] != "guest_Asha" {
		t.Errorf("username = %v", got["username"])
	}
}

func TestReportSwallowsServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	// Must not panic or propagate anything.
	r := New(srv.URL, nil, log.New(io.Discard, "", 0))
	r.Report(context.Background(), "code-quiz", 5, "Asha", "guest_Asha")
}

func TestReportSwallowsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	r := New(srv.URL, nil, log.New(io.Discard, "", 0))
	r.Report(context.Background(), "code-quiz", 5, "Asha", "guest_Asha")
}

func TestReportWithoutEndpointIsNoop(t *testing.T) {
	r := New("", nil, log.New(io.Discard, "", 0))
	r.Report(context.Background(), "code-quiz", 5, "Asha", "guest_Asha")
}
