package api

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/engine"
	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/games"
	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server handles HTTP requests
type Server struct {
	db           store.DB
	generator    engine.QuestionSource
	errorHandler *ErrorHandler
	logger       *log.Logger
	eventLogger  *EventLogger
	startTime    time.Time
}

// NewServer creates a new API server
func NewServer(db store.DB, generator engine.QuestionSource) *Server {
	logger := log.New(os.Stdout, "[API] ", log.LstdFlags|log.Lshortfile)
	eventLogger := NewEventLogger()
	errorHandler := NewErrorHandler(logger, eventLogger)

	server := &Server{
		db:           db,
		generator:    generator,
		errorHandler: errorHandler,
		logger:       logger,
		eventLogger:  eventLogger,
		startTime:    time.Now(),
	}

	eventLogger.LogSystemStartup(map[string]interface{}{
		"games_available":   len(games.ListGames()),
		"generator_enabled": server.generator != nil,
		"database_enabled":  server.db != nil,
	})

	return server
}

// Routes sets up the HTTP routes with proper middleware
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.RequestLoggingMiddleware)
	r.Use(s.errorHandler.RecoveryHandler)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(s.CORSMiddleware)

	r.Get("/health", s.handleHealthCheck)
	r.Get("/version", s.handleVersion)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate_questions", s.handleGenerateQuestions)
		r.Post("/save_score", s.handleSaveScore)
		r.Get("/leaderboard", s.handleLeaderboard)
		r.Get("/questions", s.handleListQuestions)
		r.Post("/mark_seen", s.handleMarkSeen)
	})

	return r
}

// writeJSON writes a JSON response with proper headers
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Engine-Version", EngineVersion)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
