package store

import (
	"time"
)

// DB represents the database interface
type DB interface {
	Close() error
	Migrate() error
	SaveScore(score *GameScore) error
	Leaderboard(limitPerGame int) (map[string][]LeaderboardEntry, error)
	AddQuestion(q *StoredQuestion) error
	ListQuestions(query QuestionsQuery) ([]StoredQuestion, error)
	MarkQuestionSeen(userKey, questionID string) error
}

// QuestionsQuery represents query parameters for listing questions
type QuestionsQuery struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	UserKey    string `json:"user_id"`
	Limit      int    `json:"limit"`
}

// GameScore represents one finished round's score submission
type GameScore struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id,omitempty" db:"user_id"` // empty for guests
	Name      string    `json:"name" db:"name"`
	Username  string    `json:"username,omitempty" db:"username"`
	Role      string    `json:"role" db:"role"` // student, admin, guest
	GameType  string    `json:"game_type" db:"game_type"`
	Score     int       `json:"score" db:"score"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// LeaderboardEntry represents one row on a per-game leaderboard
type LeaderboardEntry struct {
	UserName  string    `json:"user_name" db:"user_name"`
	Score     int       `json:"score" db:"score"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// StoredQuestion represents a curated question kept server-side, as
// opposed to the generated ones played from memory
type StoredQuestion struct {
	ID            string    `json:"question_id" db:"id"`
	GameCategory  string    `json:"game_category" db:"game_category"`
	Difficulty    string    `json:"difficulty" db:"difficulty"`
	QuestionText  string    `json:"question_text" db:"question_text"`
	OptionsJSON   string    `json:"-" db:"options"` // JSON array of options
	CorrectAnswer int       `json:"correct_answer" db:"correct_answer"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
