package engine

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/report"
	"github.com/shopspring/decimal"
)

// typingDuration is the length of one speed-typing run. The countdown
// is never extended; finishing a phrase loads the next one against the
// same clock.
const typingDuration = 60 * time.Second

// ErrTimeUp is returned once the countdown has expired. Stats are
// frozen at their final values from that point on.
var ErrTimeUp = errors.New("engine: time is up")

// TypingStats is the live scoreboard of a typing run. WPM counts the
// current input at five characters per word over the elapsed time.
type TypingStats struct {
	WPM             int `json:"wpm"`
	Accuracy        int `json:"accuracy"`
	SecondsLeft     int `json:"seconds_left"`
	PhrasesComplete int `json:"phrases_complete"`
}

// TypingSession runs one player's speed-typing challenge. Input arrives
// as the full current text of the input field, not keystrokes, so
// corrections show up as a shorter or edited string.
type TypingSession struct {
	identity Identity
	reporter *report.Reporter
	logger   *log.Logger

	// injectable for tests
	now        func() time.Time
	pickPhrase func(rng *rand.Rand, difficulty string) string

	mu         sync.Mutex
	rng        *rand.Rand
	state      State
	difficulty string
	phrase     string
	input      string
	spaceTyped bool
	completed  int
	startedAt  time.Time
	deadline   time.Time
	final      TypingStats
}

// NewTypingSession creates a typing challenge for the given player. The
// reporter may be nil.
func NewTypingSession(identity Identity, reporter *report.Reporter, logger *log.Logger) (*TypingSession, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &TypingSession{
		identity:   identity,
		reporter:   reporter,
		logger:     logger,
		now:        time.Now,
		pickPhrase: RandomPhrase,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		state:      StateIdle,
	}, nil
}

// Start begins a run: loads the first phrase and starts the countdown.
// Calling Start on a session that is already running abandons the
// previous run without reporting it; there is only ever one countdown.
func (t *TypingSession) Start(difficulty string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.difficulty = difficulty
	t.completed = 0
	t.final = TypingStats{}
	t.loadPhraseLocked()
	t.startedAt = t.now()
	t.deadline = t.startedAt.Add(typingDuration)
	t.state = StateActive
	t.logger.Printf("typing_started user=%s difficulty=%s", t.identity.Key(), difficulty)
}

func (t *TypingSession) loadPhraseLocked() {
	t.phrase = t.pickPhrase(t.rng, t.difficulty)
	t.input = ""
	t.spaceTyped = false
}

// Phrase returns the text the player is currently copying.
func (t *TypingSession) Phrase() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateActive {
		return "", ErrSessionNotActive
	}
	return t.phrase, nil
}

// OnInput applies the new content of the input field and returns the
// updated stats. Once a space has been typed, edits that shorten the
// input are rejected until the next phrase loads; the phrase must be
// finished forward. Matching the phrase exactly loads the next phrase
// and clears the input, but never touches the countdown.
func (t *TypingSession) OnInput(text string) (TypingStats, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateComplete {
		return t.final, ErrTimeUp
	}
	if t.state != StateActive {
		return TypingStats{}, ErrSessionNotActive
	}
	now := t.now()
	if !now.Before(t.deadline) {
		t.finishLocked()
		return t.final, ErrTimeUp
	}

	if t.spaceTyped && len(text) < len(t.input) {
		return t.statsAtLocked(now), nil
	}
	t.input = text
	if strings.Contains(text, " ") {
		t.spaceTyped = true
	}

	stats := t.statsAtLocked(now)
	if t.input == t.phrase {
		t.completed++
		stats.PhrasesComplete = t.completed
		t.loadPhraseLocked()
	}
	return stats, nil
}

// Tick advances the countdown. It returns the current stats and
// finalizes the run when the deadline has passed.
func (t *TypingSession) Tick() (TypingStats, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateComplete {
		return t.final, ErrTimeUp
	}
	if t.state != StateActive {
		return TypingStats{}, ErrSessionNotActive
	}
	now := t.now()
	if !now.Before(t.deadline) {
		t.finishLocked()
		return t.final, ErrTimeUp
	}
	return t.statsAtLocked(now), nil
}

// End finishes the run early, freezing the stats and reporting the
// score as if the countdown had expired.
func (t *TypingSession) End() (TypingStats, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch t.state {
	case StateComplete:
		return t.final, nil
	case StateActive:
		t.finishLocked()
		return t.final, nil
	default:
		return TypingStats{}, ErrSessionNotActive
	}
}

// State returns the current lifecycle state.
func (t *TypingSession) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *TypingSession) finishLocked() {
	end := t.now()
	if end.After(t.deadline) {
		end = t.deadline
	}
	t.final = t.statsAtLocked(end)
	t.final.SecondsLeft = 0
	t.state = StateComplete
	t.logger.Printf("typing_complete user=%s wpm=%d accuracy=%d phrases=%d",
		t.identity.Key(), t.final.WPM, t.final.Accuracy, t.final.PhrasesComplete)
	if t.reporter != nil {
		// Score for speed typing is the final WPM.
		go t.reporter.Report(context.Background(), "speed-typing", t.final.WPM, t.identity.Name(), t.identity.Key())
	}
}

func (t *TypingSession) statsAtLocked(at time.Time) TypingStats {
	left := int(t.deadline.Sub(at).Round(time.Second) / time.Second)
	if left < 0 {
		left = 0
	}
	return TypingStats{
		WPM:             typingWPM(len(t.input), at.Sub(t.startedAt)),
		Accuracy:        typingAccuracy(len(t.input), len(t.phrase)),
		SecondsLeft:     left,
		PhrasesComplete: t.completed,
	}
}

// typingWPM computes words per minute at five characters per word.
func typingWPM(chars int, elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	words := decimal.NewFromInt(int64(chars)).Div(decimal.NewFromInt(5))
	minutes := decimal.NewFromFloat(elapsed.Minutes())
	return int(words.Div(minutes).Round(0).IntPart())
}

// typingAccuracy is the typed length as a percentage of the phrase
// length, rounded to the nearest whole percent.
func typingAccuracy(typed, target int) int {
	if target == 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(typed)).
		Div(decimal.NewFromInt(int64(target))).
		Mul(decimal.NewFromInt(100)).
		Round(0).IntPart())
}
