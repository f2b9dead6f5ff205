package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/games"
	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/store"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	defaultQuestionCount = 10
	maxQuestionCount     = 50
	leaderboardTopN      = 10
)

// handleGenerateQuestions serves POST /api/generate_questions. The
// speed-typing game has no questions, so it is rejected the same way
// as an unknown game type.
func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req GenerateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, GenerateQuestionsResponse{
			Success: false, Message: "Invalid request body",
		})
		return
	}

	if req.GameType == "" {
		s.writeJSON(w, http.StatusBadRequest, GenerateQuestionsResponse{
			Success: false, Message: "Game type is required",
		})
		return
	}
	if _, ok := games.GetGame(req.GameType); !ok {
		s.writeJSON(w, http.StatusBadRequest, GenerateQuestionsResponse{
			Success: false, Message: "Invalid game type",
		})
		return
	}

	if req.Difficulty == "" {
		req.Difficulty = "medium"
	}
	if req.Count <= 0 {
		req.Count = defaultQuestionCount
	}
	if req.Count > maxQuestionCount {
		req.Count = maxQuestionCount
	}

	questions, err := s.generator.Generate(r.Context(), req.GameType, req.Difficulty, req.Count)
	if err != nil {
		s.errorHandler.HandleError(w, r,
			NewError(ErrTypeGeneration, "Error generating questions").
				WithRequestID(middleware.GetReqID(r.Context())).
				WithContext("game_type", req.GameType).
				WithCause(err).
				Build(),
			http.StatusInternalServerError)
		return
	}

	s.eventLogger.LogGenerationRequest(
		middleware.GetReqID(r.Context()), req.GameType, req.Difficulty, req.Count, len(questions))
	s.writeJSON(w, http.StatusOK, GenerateQuestionsResponse{
		Success:   true,
		Questions: questions,
	})
}

// handleSaveScore serves POST /api/save_score
func (s *Server) handleSaveScore(w http.ResponseWriter, r *http.Request) {
	var req SaveScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, SaveScoreResponse{
			Success: false, Message: "Invalid request body",
		})
		return
	}

	if req.GameType == "" || req.Score == nil {
		s.writeJSON(w, http.StatusBadRequest, SaveScoreResponse{
			Success: false, Message: "Missing required fields",
		})
		return
	}

	name := req.Name
	if name == "" {
		name = req.Username
	}
	if name == "" {
		s.writeJSON(w, http.StatusBadRequest, SaveScoreResponse{
			Success: false, Message: "Missing required fields",
		})
		return
	}

	role := "guest"
	if req.UserID != "" {
		role = "student"
	}

	score := store.GameScore{
		UserID:   req.UserID,
		Name:     name,
		Username: req.Username,
		Role:     role,
		GameType: req.GameType,
		Score:    *req.Score,
	}
	if err := s.db.SaveScore(&score); err != nil {
		s.logger.Printf("save_score_failed game=%s err=%v", req.GameType, err)
		s.writeJSON(w, http.StatusInternalServerError, SaveScoreResponse{
			Success: false, Message: "Error saving score",
		})
		return
	}

	player := req.Username
	if player == "" {
		player = name
	}
	s.eventLogger.LogScoreSubmission(middleware.GetReqID(r.Context()), req.GameType, *req.Score, player)
	s.writeJSON(w, http.StatusOK, SaveScoreResponse{
		Success: true, Message: "Score saved successfully",
	})
}

// handleLeaderboard serves GET /api/leaderboard with the top entries
// per game category. Categories with no scores yet appear as empty
// lists so the client can render every board.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := s.db.Leaderboard(leaderboardTopN)
	if err != nil {
		s.errorHandler.HandleError(w, r,
			NewError(ErrTypeStorage, "Error loading leaderboard").WithCause(err).Build(),
			http.StatusInternalServerError)
		return
	}

	categories := append(games.ListGames(), "speed-typing")
	for _, category := range categories {
		if board[category] == nil {
			board[category] = []store.LeaderboardEntry{}
		}
	}

	s.writeJSON(w, http.StatusOK, LeaderboardResponse{Leaderboard: board})
}

// handleListQuestions serves GET /api/questions for the curated
// question bank, excluding questions the user has already seen
func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	difficulty := r.URL.Query().Get("difficulty")
	userKey := r.URL.Query().Get("user_id")

	if category == "" || difficulty == "" || userKey == "" {
		s.errorHandler.HandleValidationError(w, r, "query",
			"category, difficulty and user_id are required")
		return
	}

	stored, err := s.db.ListQuestions(store.QuestionsQuery{
		Category:   category,
		Difficulty: difficulty,
		UserKey:    userKey,
		Limit:      defaultQuestionCount,
	})
	if err != nil {
		s.errorHandler.HandleError(w, r,
			NewError(ErrTypeStorage, "Error loading questions").WithCause(err).Build(),
			http.StatusInternalServerError)
		return
	}

	questions := make([]CuratedQuestion, 0, len(stored))
	for _, q := range stored {
		var options []string
		if err := json.Unmarshal([]byte(q.OptionsJSON), &options); err != nil {
			s.logger.Printf("question_options_malformed id=%s err=%v", q.ID, err)
			continue
		}
		questions = append(questions, CuratedQuestion{
			QuestionID:    q.ID,
			QuestionText:  q.QuestionText,
			Options:       options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	s.writeJSON(w, http.StatusOK, QuestionsResponse{Questions: questions})
}

// handleMarkSeen serves POST /api/mark_seen
func (s *Server) handleMarkSeen(w http.ResponseWriter, r *http.Request) {
	var req MarkSeenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorHandler.HandleValidationError(w, r, "body", "invalid request body")
		return
	}
	if req.UserID == "" || req.QuestionID == "" {
		s.errorHandler.HandleValidationError(w, r, "body", "user_id and question_id are required")
		return
	}

	if err := s.db.MarkQuestionSeen(req.UserID, req.QuestionID); err != nil {
		s.errorHandler.HandleError(w, r,
			NewError(ErrTypeStorage, "Error marking question seen").WithCause(err).Build(),
			http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// handleHealthCheck serves GET /health
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:         "ok",
		EngineVersion:  EngineVersion,
		UptimeSeconds:  int64(time.Since(s.startTime).Seconds()),
		GamesAvailable: len(games.ListGames()),
		Database:       s.db != nil,
	})
}

// handleVersion serves GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, GetVersionInfo())
}
