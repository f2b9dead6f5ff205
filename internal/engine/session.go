package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/games"
	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/ledger"
	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/report"
)

// State is the lifecycle of a quiz or typing session.
type State int

const (
	StateIdle State = iota
	StateActive
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	// maxQuestions is how many questions one quiz round serves.
	maxQuestions = 10
	// generateBatch is how many candidates are generated per round so
	// that filtering out seen questions still leaves a full round.
	generateBatch = 50
)

var (
	// ErrSessionNotActive is returned by gameplay calls outside an
	// active round.
	ErrSessionNotActive = errors.New("engine: session is not active")
	// ErrSessionSuperseded is returned from Start when a newer Start
	// call finished first. The loser's questions are discarded.
	ErrSessionSuperseded = errors.New("engine: session superseded by a newer start")
)

// Session runs one player's quiz rounds. It moves Idle -> Active on a
// successful Start and Active -> Complete when the last question is
// answered, at which point the final score is reported in the
// background.
type Session struct {
	identity Identity
	source   QuestionSource
	ledger   *ledger.Ledger
	reporter *report.Reporter
	logger   *log.Logger

	mu        sync.Mutex
	rng       *rand.Rand
	token     uint64
	state     State
	gameType  string
	questions []games.Question
	index     int
	score     int
}

// NewSession creates a quiz session for the given player. The reporter
// may be nil, in which case completed rounds are not reported anywhere.
func NewSession(identity Identity, source QuestionSource, led *ledger.Ledger, reporter *report.Reporter, logger *log.Logger) (*Session, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, errors.New("engine: question source is required")
	}
	if led == nil {
		return nil, errors.New("engine: ledger is required")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		identity: identity,
		source:   source,
		ledger:   led,
		reporter: reporter,
		logger:   logger,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		state:    StateIdle,
	}, nil
}

// Start begins a new round. It generates a large candidate batch,
// filters out questions this player has already seen for this game, and
// keeps up to maxQuestions of the rest. When every candidate has been
// seen the ledger entries for this player and game are cleared and a
// fresh small batch is served instead.
//
// Start may be called again at any time; only the newest call wins.
// Generation results belonging to an older call are discarded and the
// older call returns ErrSessionSuperseded.
func (s *Session) Start(ctx context.Context, gameType, difficulty string) error {
	s.mu.Lock()
	s.token++
	token := s.token
	s.state = StateIdle
	s.mu.Unlock()

	batch, err := s.source.Generate(ctx, gameType, difficulty, generateBatch)
	if err != nil {
		return fmt.Errorf("engine: start %s round: %w", gameType, err)
	}

	unseen := batch[:0:0]
	for _, q := range batch {
		if !s.ledger.IsSeen(s.identity.Key(), gameType, q.Fingerprint) {
			unseen = append(unseen, q)
		}
	}

	var chosen []games.Question
	if len(unseen) == 0 {
		s.logger.Printf("session_ledger_reset user=%s game=%s", s.identity.Key(), gameType)
		if err := s.ledger.ResetForIdentityAndGame(s.identity.Key(), gameType); err != nil {
			return fmt.Errorf("engine: reset seen questions: %w", err)
		}
		fresh, err := s.source.Generate(ctx, gameType, difficulty, maxQuestions)
		if err != nil {
			return fmt.Errorf("engine: regenerate after reset: %w", err)
		}
		chosen = fresh
	} else {
		s.mu.Lock()
		s.rng.Shuffle(len(unseen), func(i, j int) {
			unseen[i], unseen[j] = unseen[j], unseen[i]
		})
		s.mu.Unlock()
		chosen = unseen
	}
	if len(chosen) > maxQuestions {
		chosen = chosen[:maxQuestions]
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != token {
		return ErrSessionSuperseded
	}
	s.gameType = gameType
	s.questions = chosen
	s.index = 0
	s.score = 0
	s.state = StateActive
	s.logger.Printf("session_started user=%s game=%s difficulty=%s questions=%d",
		s.identity.Key(), gameType, difficulty, len(chosen))
	return nil
}

// Current returns the question awaiting an answer and marks it seen in
// the ledger.
func (s *Session) Current() (games.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return games.Question{}, ErrSessionNotActive
	}
	q := s.questions[s.index]
	if err := s.ledger.MarkSeen(s.identity.Key(), s.gameType, q.Fingerprint); err != nil {
		s.logger.Printf("session_mark_seen_failed user=%s game=%s err=%v", s.identity.Key(), s.gameType, err)
	}
	return q, nil
}

// SubmitAnswer grades the current question. Acceptance is exact string
// equality with the correct option. The session always advances to the
// next question regardless of correctness; answering the last question
// completes the round and reports the score in the background.
func (s *Session) SubmitAnswer(ctx context.Context, answer string) (correct, done bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return false, false, ErrSessionNotActive
	}

	q := s.questions[s.index]
	correct = answer == q.Options[q.CorrectIndex]
	if correct {
		s.score++
	}
	s.index++

	if s.index >= len(s.questions) {
		s.state = StateComplete
		s.logger.Printf("session_complete user=%s game=%s score=%d/%d",
			s.identity.Key(), s.gameType, s.score, len(s.questions))
		if s.reporter != nil {
			go s.reporter.Report(context.WithoutCancel(ctx), s.gameType, s.score, s.identity.Name(), s.identity.Key())
		}
		return correct, true, nil
	}
	return correct, false, nil
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Score returns the number of correct answers so far.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Progress returns how many questions have been answered and the round
// length.
func (s *Session) Progress() (answered, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index, len(s.questions)
}
