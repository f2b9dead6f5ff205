package games

import "math/rand"

// FallbackGame serves a single trivial question when a topic id is
// unrecognized, so generation always has something to return.
type FallbackGame struct{}

func (g *FallbackGame) Spec() GameSpec {
	return GameSpec{ID: "fallback", Name: "Fallback"}
}

func (g *FallbackGame) Generate(rng *rand.Rand, difficulty string) (Question, error) {
	return Question{
		Text:         "What is 2 + 2?",
		Options:      []string{"3", "4", "5", "6"},
		CorrectIndex: 1,
		Fingerprint:  Fingerprint("What is 2 + 2?"),
	}, nil
}

// Fallback returns the game used for unrecognized topic ids. It is
// deliberately not registered, so it never shows up as a playable
// topic.
func Fallback() Game {
	return &FallbackGame{}
}
