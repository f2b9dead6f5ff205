package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/games"
	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/ledger"
	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/report"
)

type stubSource struct {
	mu    sync.Mutex
	calls int
	fn    func(call int, gameType, difficulty string, count int) ([]games.Question, error)
}

func (s *stubSource) Generate(ctx context.Context, gameType, difficulty string, count int) ([]games.Question, error) {
	s.mu.Lock()
	s.calls++
	call := s.calls
	s.mu.Unlock()
	return s.fn(call, gameType, difficulty, count)
}

func makeQuestions(n int, prefix string) []games.Question {
	qs := make([]games.Question, n)
	for i := range qs {
		text := fmt.Sprintf("%s question %d", prefix, i)
		qs[i] = games.Question{
			Text:         text,
			Options:      []string{"right", "wrong a", "wrong b", "wrong c"},
			CorrectIndex: 0,
			Fingerprint:  games.Fingerprint(text),
		}
	}
	return qs
}

func newTestSession(t *testing.T, source QuestionSource, rep *report.Reporter) (*Session, *ledger.Ledger) {
	t.Helper()
	led, err := ledger.Open(t.TempDir())
	if err != nil {
		t.Fatalf("ledger.Open: %v", err)
	}
	s, err := NewSession(Identity{DisplayName: "Asha"}, source, led, rep, discardLogger())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, led
}

func TestSessionFullRound(t *testing.T) {
	src := &stubSource{fn: func(call int, gameType, difficulty string, count int) ([]games.Question, error) {
		return makeQuestions(count, "round"), nil
	}}
	s, led := newTestSession(t, src, nil)

	if err := s.Start(context.Background(), "code-quiz", "medium"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.State() != StateActive {
		t.Fatalf("state after start = %v", s.State())
	}
	if _, total := s.Progress(); total != 10 {
		t.Fatalf("expected 10 questions, got %d", total)
	}

	for i := 0; i < 10; i++ {
		q, err := s.Current()
		if err != nil {
			t.Fatalf("Current at %d: %v", i, err)
		}
		if !led.IsSeen("guest_Asha", "code-quiz", q.Fingerprint) {
			t.Errorf("served question %d not marked seen", i)
		}
		correct, done, err := s.SubmitAnswer(context.Background(), q.Options[q.CorrectIndex])
		if err != nil {
			t.Fatalf("SubmitAnswer at %d: %v", i, err)
		}
		if !correct {
			t.Errorf("correct answer graded wrong at %d", i)
		}
		if done != (i == 9) {
			t.Errorf("done = %v at question %d", done, i)
		}
	}

	if s.Score() != 10 {
		t.Errorf("score = %d, want 10", s.Score())
	}
	if s.State() != StateComplete {
		t.Errorf("state after last answer = %v", s.State())
	}
	if _, _, err := s.SubmitAnswer(context.Background(), "right"); !errors.Is(err, ErrSessionNotActive) {
		t.Errorf("expected ErrSessionNotActive after completion, got %v", err)
	}
}

func TestSessionWrongAnswerStillAdvances(t *testing.T) {
	src := &stubSource{fn: func(call int, gameType, difficulty string, count int) ([]games.Question, error) {
		return makeQuestions(count, "advance"), nil
	}}
	s, _ := newTestSession(t, src, nil)

	if err := s.Start(context.Background(), "ai-ml", "easy"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	correct, done, err := s.SubmitAnswer(context.Background(), "definitely not it")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if correct || done {
		t.Errorf("correct=%v done=%v, want false/false", correct, done)
	}
	if answered, _ := s.Progress(); answered != 1 {
		t.Errorf("answered = %d, want 1", answered)
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, want 0", s.Score())
	}
}

func TestSessionResetsLedgerWhenExhausted(t *testing.T) {
	batch := makeQuestions(50, "exhausted")
	src := &stubSource{fn: func(call int, gameType, difficulty string, count int) ([]games.Question, error) {
		if call == 1 {
			return batch, nil
		}
		return makeQuestions(count, "fresh"), nil
	}}
	s, led := newTestSession(t, src, nil)

	for _, q := range batch {
		if err := led.MarkSeen("guest_Asha", "cyber-security", q.Fingerprint); err != nil {
			t.Fatalf("MarkSeen: %v", err)
		}
	}

	if err := s.Start(context.Background(), "cyber-security", "medium"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, total := s.Progress(); total != 10 {
		t.Fatalf("expected a full fresh round, got %d questions", total)
	}
	if led.IsSeen("guest_Asha", "cyber-security", batch[0].Fingerprint) {
		t.Error("old ledger entries survived the reset")
	}
}

func TestSessionNewerStartWins(t *testing.T) {
	block := make(chan struct{})
	src := &stubSource{fn: func(call int, gameType, difficulty string, count int) ([]games.Question, error) {
		if call == 1 {
			<-block
			return makeQuestions(count, "slow"), nil
		}
		return makeQuestions(count, "fast"), nil
	}}
	s, _ := newTestSession(t, src, nil)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- s.Start(context.Background(), "data-science", "medium")
	}()

	// Let the first Start reach its blocked generation call, then win
	// the race with a second Start.
	for {
		src.mu.Lock()
		started := src.calls >= 1
		src.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if err := s.Start(context.Background(), "data-science", "medium"); err != nil {
		t.Fatalf("second Start: %v", err)
	}

	close(block)
	if err := <-firstDone; !errors.Is(err, ErrSessionSuperseded) {
		t.Fatalf("first Start returned %v, want ErrSessionSuperseded", err)
	}

	q, err := s.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if q.Text[:4] != "fast" {
		t.Errorf("stale questions won the race: %q", q.Text)
	}
}

func TestSessionReportsScoreOnCompletion(t *testing.T) {
	got := make(chan map[string]any, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &payload)
		got <- payload
	}))
	defer srv.Close()

	src := &stubSource{fn: func(call int, gameType, difficulty string, count int) ([]games.Question, error) {
		return makeQuestions(count, "report"), nil
	}}
	rep := report.New(srv.URL, nil, discardLogger())
	s, _ := newTestSession(t, src, rep)

	if err := s.Start(context.Background(), "web-dev", "easy"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 10; i++ {
		if _, _, err := s.SubmitAnswer(context.Background(), "right"); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
	}

	select {
	case payload := <-got:
		if payload["game_type"] != "web-dev" {
			t.Errorf("game_type = %v", payload["game_type"])
		}
		if payload["score"] != float64(10) {
			t.Errorf("score = %v, want 10", payload["score"])
		}
		if payload["username"] != "guest_Asha" {
			t.Errorf("username = %v", payload["username"])
		}
	case <-time.After(2 * time.Second):
		t.Fatal("score was never reported")
	}
}

func TestSessionRequiresIdentity(t *testing.T) {
	led, err := ledger.Open(t.TempDir())
	if err != nil {
		t.Fatalf("ledger.Open: %v", err)
	}
	src := &stubSource{fn: func(call int, gameType, difficulty string, count int) ([]games.Question, error) {
		return makeQuestions(count, "x"), nil
	}}
	if _, err := NewSession(Identity{}, src, led, nil, discardLogger()); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}
