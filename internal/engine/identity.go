package engine

import (
	"errors"
	"strings"
)

// ErrNameRequired is returned when a session is created for a player
// with no identifying information at all.
var ErrNameRequired = errors.New("engine: player name is required")

// Identity describes who is playing. Logged-in players carry a UserID,
// registered players may only have a Username, and guests only a
// DisplayName they typed in.
type Identity struct {
	UserID      string
	Username    string
	DisplayName string
}

// Validate reports whether the identity can be used to play at all.
func (i Identity) Validate() error {
	if strings.TrimSpace(i.UserID) == "" &&
		strings.TrimSpace(i.Username) == "" &&
		strings.TrimSpace(i.DisplayName) == "" {
		return ErrNameRequired
	}
	return nil
}

// Key returns the stable identifier used to namespace the seen-question
// ledger and score submissions. Guests get a guest_ prefix so they never
// collide with real account ids.
func (i Identity) Key() string {
	if i.UserID != "" {
		return i.UserID
	}
	if i.Username != "" {
		return i.Username
	}
	return "guest_" + i.DisplayName
}

// Name returns the human-readable name shown on leaderboards.
func (i Identity) Name() string {
	if i.DisplayName != "" {
		return i.DisplayName
	}
	if i.Username != "" {
		return i.Username
	}
	return i.UserID
}
