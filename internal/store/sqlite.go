package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteDB implements the DB interface using SQLite
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB creates a new SQLite database connection
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Migrate runs database migrations
func (s *SQLiteDB) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS game_scores (
			id TEXT PRIMARY KEY,
			user_id TEXT,
			name TEXT NOT NULL,
			username TEXT,
			role TEXT NOT NULL DEFAULT 'guest',
			game_type TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS leaderboard (
			id TEXT PRIMARY KEY,
			game_category TEXT NOT NULL,
			user_name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			id TEXT PRIMARY KEY,
			game_category TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			question_text TEXT NOT NULL,
			options TEXT NOT NULL,
			correct_answer INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS user_seen_questions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			question_id TEXT NOT NULL,
			seen_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (question_id) REFERENCES questions(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_leaderboard_game_score ON leaderboard(game_category, score DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_game_type ON game_scores(game_type)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(game_category, difficulty)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_seen_user_question ON user_seen_questions(user_id, question_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// SaveScore saves a score submission and mirrors it onto the
// leaderboard table used for display
func (s *SQLiteDB) SaveScore(score *GameScore) error {
	if score.ID == "" {
		score.ID = uuid.New().String()
	}
	if score.Role == "" {
		score.Role = "guest"
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO game_scores (id, user_id, name, username, role, game_type, score)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		score.ID, nullIfEmpty(score.UserID), score.Name, nullIfEmpty(score.Username),
		score.Role, score.GameType, score.Score,
	)
	if err != nil {
		return fmt.Errorf("failed to insert score: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO leaderboard (id, game_category, user_name, score)
		VALUES (?, ?, ?, ?)`,
		uuid.New().String(), score.GameType, score.Name, score.Score,
	)
	if err != nil {
		return fmt.Errorf("failed to insert leaderboard entry: %w", err)
	}

	return tx.Commit()
}

// Leaderboard returns the top entries per game category, highest score
// first
func (s *SQLiteDB) Leaderboard(limitPerGame int) (map[string][]LeaderboardEntry, error) {
	if limitPerGame <= 0 {
		limitPerGame = 10
	}

	rows, err := s.db.Query(`SELECT DISTINCT game_category FROM leaderboard`)
	if err != nil {
		return nil, fmt.Errorf("failed to query game categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	result := make(map[string][]LeaderboardEntry, len(categories))
	for _, category := range categories {
		entries, err := s.leaderboardFor(category, limitPerGame)
		if err != nil {
			return nil, err
		}
		result[category] = entries
	}
	return result, nil
}

func (s *SQLiteDB) leaderboardFor(category string, limit int) ([]LeaderboardEntry, error) {
	rows, err := s.db.Query(
		`SELECT user_name, score, created_at FROM leaderboard
		WHERE game_category = ?
		ORDER BY score DESC, created_at ASC
		LIMIT ?`,
		category, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard for %s: %w", category, err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.UserName, &e.Score, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AddQuestion stores a curated question
func (s *SQLiteDB) AddQuestion(q *StoredQuestion) error {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}

	_, err := s.db.Exec(
		`INSERT INTO questions (id, game_category, difficulty, question_text, options, correct_answer)
		VALUES (?, ?, ?, ?, ?, ?)`,
		q.ID, q.GameCategory, q.Difficulty, q.QuestionText, q.OptionsJSON, q.CorrectAnswer,
	)
	if err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}
	return nil
}

// ListQuestions returns curated questions for a category and
// difficulty in random order, excluding questions the user has already
// seen
func (s *SQLiteDB) ListQuestions(query QuestionsQuery) ([]StoredQuestion, error) {
	if query.Limit <= 0 {
		query.Limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_category, difficulty, question_text, options, correct_answer, created_at
		FROM questions
		WHERE game_category = ? AND difficulty = ?
		AND id NOT IN (SELECT question_id FROM user_seen_questions WHERE user_id = ?)
		ORDER BY RANDOM()
		LIMIT ?`,
		query.Category, query.Difficulty, query.UserKey, query.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []StoredQuestion
	for rows.Next() {
		var q StoredQuestion
		if err := rows.Scan(&q.ID, &q.GameCategory, &q.Difficulty, &q.QuestionText,
			&q.OptionsJSON, &q.CorrectAnswer, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// MarkQuestionSeen records that a user has seen a question. Marking the
// same question twice is a no-op.
func (s *SQLiteDB) MarkQuestionSeen(userKey, questionID string) error {
	_, err := s.db.Exec(
		`INSERT INTO user_seen_questions (id, user_id, question_id)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, question_id) DO NOTHING`,
		uuid.New().String(), userKey, questionID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark question seen: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
