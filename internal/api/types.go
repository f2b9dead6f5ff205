package api

import (
	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/games"
	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/store"
)

// EngineError represents a structured error response with context
type EngineError struct {
	Type      string                 `json:"type"`
	Message   string                 `json:"message"`
	Context   map[string]interface{} `json:"context,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Timestamp string                 `json:"timestamp,omitempty"`
}

// Error implements the error interface
func (e EngineError) Error() string {
	return e.Message
}

// Error types with proper categorization
const (
	// Input validation errors
	ErrTypeValidation    = "validation_error"
	ErrTypeInvalidGame   = "invalid_game_type"
	ErrTypeMissingFields = "missing_fields"

	// Gameplay errors
	ErrTypeGeneration = "question_generation_error"

	// System errors
	ErrTypeStorage  = "storage_error"
	ErrTypeTimeout  = "timeout"
	ErrTypeInternal = "internal_error"
)

// ErrorCategory represents error categories for monitoring
type ErrorCategory string

const (
	CategoryValidation ErrorCategory = "validation"
	CategoryGameplay   ErrorCategory = "gameplay"
	CategorySystem     ErrorCategory = "system"
	CategoryTimeout    ErrorCategory = "timeout"
)

// GetErrorCategory returns the category for an error type
func GetErrorCategory(errType string) ErrorCategory {
	switch errType {
	case ErrTypeValidation, ErrTypeInvalidGame, ErrTypeMissingFields:
		return CategoryValidation
	case ErrTypeGeneration:
		return CategoryGameplay
	case ErrTypeTimeout:
		return CategoryTimeout
	default:
		return CategorySystem
	}
}

// GenerateQuestionsRequest is the body for POST /api/generate_questions
type GenerateQuestionsRequest struct {
	GameType   string `json:"game_type"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// GenerateQuestionsResponse carries a generated question batch
type GenerateQuestionsResponse struct {
	Success   bool             `json:"success"`
	Questions []games.Question `json:"questions,omitempty"`
	Message   string           `json:"message,omitempty"`
}

// SaveScoreRequest is the body for POST /api/save_score
type SaveScoreRequest struct {
	GameType string `json:"game_type"`
	Score    *int   `json:"score"`
	Name     string `json:"name"`
	Username string `json:"username"`
	UserID   string `json:"user_id"`
}

// SaveScoreResponse acknowledges a score submission
type SaveScoreResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LeaderboardResponse groups top scores by game category
type LeaderboardResponse struct {
	Leaderboard map[string][]store.LeaderboardEntry `json:"leaderboard"`
}

// QuestionsResponse lists curated questions for a category
type QuestionsResponse struct {
	Questions []CuratedQuestion `json:"questions"`
}

// CuratedQuestion is the wire shape of a stored question
type CuratedQuestion struct {
	QuestionID    string   `json:"question_id"`
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

// MarkSeenRequest is the body for POST /api/mark_seen
type MarkSeenRequest struct {
	UserID     string `json:"user_id"`
	QuestionID string `json:"question_id"`
}

// HealthResponse reports service health
type HealthResponse struct {
	Status         string `json:"status"`
	EngineVersion  string `json:"engine_version"`
	UptimeSeconds  int64  `json:"uptime_seconds"`
	GamesAvailable int    `json:"games_available"`
	Database       bool   `json:"database"`
}

// VersionInfo describes the running build
type VersionInfo struct {
	EngineVersion string `json:"engine_version"`
	GitCommit     string `json:"git_commit"`
	BuildTime     string `json:"build_time"`
}
