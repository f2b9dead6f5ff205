// Package games holds the topic-scoped question generators and their registry.
package games

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand"
)

// Question is one multiple-choice question. Immutable once built.
type Question struct {
	Text         string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct"`
	Fingerprint  string   `json:"hash,omitempty"`
}

// GameSpec returns metadata about a topic game.
type GameSpec struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Game represents a topic that can generate questions locally.
type Game interface {
	// Spec returns the game's identifier and display name
	Spec() GameSpec

	// Generate produces one question at the given difficulty
	Generate(rng *rand.Rand, difficulty string) (Question, error)
}

// GameRegistry holds all available topic games
var GameRegistry = make(map[string]Game)

// RegisterGame adds a game to the registry
func RegisterGame(game Game) {
	GameRegistry[game.Spec().ID] = game
}

// GetGame retrieves a game by topic id
func GetGame(id string) (Game, bool) {
	game, exists := GameRegistry[id]
	return game, exists
}

// ListGames returns all registered topic ids
func ListGames() []string {
	ids := make([]string, 0, len(GameRegistry))
	for id := range GameRegistry {
		ids = append(ids, id)
	}
	return ids
}

// Fingerprint computes the deduplication digest for a question text.
// Collisions only cause a question to be skipped, never mis-scored.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// template is one question entry: the correct answer plus its distractors.
type template struct {
	text    string
	correct string
	wrongs  []string
}

// pools maps a difficulty tier to its template pool.
type pools map[string][]template

// pick selects a random template from the requested tier (falling back to
// medium when the tier is absent), shuffles the options, and recomputes the
// correct index from the shuffled positions.
func (p pools) pick(rng *rand.Rand, difficulty string) (Question, error) {
	tier, ok := p[difficulty]
	if !ok || len(tier) == 0 {
		tier = p["medium"]
	}
	if len(tier) == 0 {
		return Question{}, fmt.Errorf("games: no templates for difficulty %q", difficulty)
	}

	t := tier[rng.Intn(len(tier))]

	options := make([]string, 0, len(t.wrongs)+1)
	options = append(options, t.correct)
	options = append(options, t.wrongs...)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correct := -1
	for i, opt := range options {
		if opt == t.correct {
			correct = i
			break
		}
	}
	if correct < 0 {
		return Question{}, fmt.Errorf("games: correct answer lost during shuffle")
	}

	return Question{
		Text:         t.text,
		Options:      options,
		CorrectIndex: correct,
		Fingerprint:  Fingerprint(t.text),
	}, nil
}

// codeSnippet formats a code-reading question with a fenced code block.
func codeSnippet(question, language, code string) string {
	return fmt.Sprintf("%s\n\n```%s\n%s\n```", question, language, code)
}
