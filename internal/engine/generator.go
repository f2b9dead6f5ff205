// Package engine implements the gameplay core: question generation,
// the quiz session state machine, and the speed-typing challenge.
package engine

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/games"
	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/quizapi"
)

// RemoteSource is the upstream question service. *quizapi.Client
// satisfies it.
type RemoteSource interface {
	GenerateQuestions(ctx context.Context, req quizapi.GenerateRequest) ([]games.Question, error)
}

// QuestionSource produces a batch of playable questions for a game type.
type QuestionSource interface {
	Generate(ctx context.Context, gameType, difficulty string, count int) ([]games.Question, error)
}

// Generator produces questions remote-first, falling back to the local
// template pools when the upstream service is unreachable or rejects
// the request. A nil remote skips straight to local generation.
type Generator struct {
	remote RemoteSource
	logger *log.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a generator backed by the given remote source.
func NewGenerator(remote RemoteSource, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{
		remote: remote,
		logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate returns up to count questions for gameType. Every returned
// question carries a fingerprint; remote questions that arrive without
// one get it computed from the question text.
func (g *Generator) Generate(ctx context.Context, gameType, difficulty string, count int) ([]games.Question, error) {
	if count <= 0 {
		return nil, fmt.Errorf("engine: question count must be positive, got %d", count)
	}

	if g.remote != nil {
		questions, err := g.remote.GenerateQuestions(ctx, quizapi.GenerateRequest{
			GameType:   gameType,
			Difficulty: difficulty,
			Count:      count,
		})
		if err == nil {
			for i := range questions {
				if questions[i].Fingerprint == "" {
					questions[i].Fingerprint = games.Fingerprint(questions[i].Text)
				}
			}
			return questions, nil
		}
		g.logger.Printf("question_gen_remote_failed game=%s difficulty=%s err=%v", gameType, difficulty, err)
	}

	return g.generateLocal(gameType, difficulty, count)
}

func (g *Generator) generateLocal(gameType, difficulty string, count int) ([]games.Question, error) {
	game, ok := games.GetGame(gameType)
	if !ok {
		g.logger.Printf("question_gen_unknown_game game=%s using=fallback", gameType)
		game = games.Fallback()
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Template pools repeat, so generation is capped by an attempt
	// budget rather than looping until count unique questions exist.
	questions := make([]games.Question, 0, count)
	seen := make(map[string]bool, count)
	budget := count * 10
	for attempt := 0; attempt < budget && len(questions) < count; attempt++ {
		q, err := game.Generate(g.rng, difficulty)
		if err != nil {
			return nil, fmt.Errorf("engine: local generation for %s: %w", gameType, err)
		}
		if q.Fingerprint == "" {
			q.Fingerprint = games.Fingerprint(q.Text)
		}
		if seen[q.Fingerprint] {
			continue
		}
		seen[q.Fingerprint] = true
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("engine: no questions generated for %s", gameType)
	}
	return questions, nil
}
