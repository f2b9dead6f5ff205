// Package ledger persists which questions an identity has already seen.
//
// The ledger is a single flat map persisted as one JSON slot, loaded at open
// and rewritten wholesale on every mutation. Keys are the composite
// identityKey|gameType|fingerprint, so resets can scope to one player and
// one topic without touching anything else.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// SlotName is the durable key/value slot holding the seen map.
const SlotName = "vidyasetu_seenQuestions.json"

// Ledger tracks seen question fingerprints per identity and game type.
type Ledger struct {
	path string

	mu   sync.Mutex
	seen map[string]bool
}

// Open loads the ledger slot from dir, creating an empty ledger when the
// slot does not exist yet.
func Open(dir string) (*Ledger, error) {
	l := &Ledger{
		path: filepath.Join(dir, SlotName),
		seen: make(map[string]bool),
	}

	raw, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("ledger: read slot: %w", err)
	}
	if err := json.Unmarshal(raw, &l.seen); err != nil {
		return nil, fmt.Errorf("ledger: decode slot: %w", err)
	}
	return l, nil
}

func key(identityKey, gameType, fingerprint string) string {
	return identityKey + "|" + gameType + "|" + fingerprint
}

// IsSeen reports whether the identity has already been shown the question.
func (l *Ledger) IsSeen(identityKey, gameType, fingerprint string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.seen[key(identityKey, gameType, fingerprint)]
}

// MarkSeen records the question as seen and persists the whole slot.
func (l *Ledger) MarkSeen(identityKey, gameType, fingerprint string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seen[key(identityKey, gameType, fingerprint)] = true
	return l.writeUnlocked()
}

// ResetForIdentityAndGame clears every entry for one identity and game type.
// Called when a topic's pool is exhausted so a play-through stays possible.
func (l *Ledger) ResetForIdentityAndGame(identityKey, gameType string) error {
	prefix := identityKey + "|" + gameType + "|"

	l.mu.Lock()
	defer l.mu.Unlock()
	for k := range l.seen {
		if strings.HasPrefix(k, prefix) {
			delete(l.seen, k)
		}
	}
	return l.writeUnlocked()
}

// Size returns the number of recorded entries.
func (l *Ledger) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.seen)
}

func (l *Ledger) writeUnlocked() error {
	raw, err := json.Marshal(l.seen)
	if err != nil {
		return fmt.Errorf("ledger: encode slot: %w", err)
	}
	if err := os.WriteFile(l.path, raw, 0o600); err != nil {
		return fmt.Errorf("ledger: write slot: %w", err)
	}
	return nil
}
