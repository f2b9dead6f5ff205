package api

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// EventLogger handles gameplay and audit logging. Player identifiers
// are hashed before they reach the log so raw names and guest ids are
// never written to stdout.
type EventLogger struct {
	logger *log.Logger
}

// NewEventLogger creates a new event logger
func NewEventLogger() *EventLogger {
	logger := log.New(os.Stdout, "[EVENT] ", log.LstdFlags|log.LUTC)
	return &EventLogger{
		logger: logger,
	}
}

// LogSystemStartup logs service startup details
func (el *EventLogger) LogSystemStartup(context map[string]interface{}) {
	el.logger.Printf(
		"system_startup context=%+v engine_version=%s timestamp=%s",
		context,
		EngineVersion,
		time.Now().UTC().Format(time.RFC3339),
	)
}

// LogGenerationRequest logs a question generation request
func (el *EventLogger) LogGenerationRequest(requestID, gameType, difficulty string, count, produced int) {
	el.logger.Printf(
		"question_generation request_id=%s game=%s difficulty=%s requested=%d produced=%d engine_version=%s timestamp=%s",
		requestID,
		gameType,
		difficulty,
		count,
		produced,
		EngineVersion,
		time.Now().UTC().Format(time.RFC3339),
	)
}

// LogScoreSubmission logs a score submission with the player hashed
func (el *EventLogger) LogScoreSubmission(requestID, gameType string, score int, playerKey string) {
	el.logger.Printf(
		"score_submission request_id=%s game=%s score=%d player_hash=%s engine_version=%s timestamp=%s",
		requestID,
		gameType,
		score,
		el.hashPlayer(playerKey),
		EngineVersion,
		time.Now().UTC().Format(time.RFC3339),
	)
}

// LogSecurityEvent logs security-related events (failed validations,
// suspicious activity)
func (el *EventLogger) LogSecurityEvent(requestID, eventType, description, remoteAddr string) {
	el.logger.Printf(
		"security_event request_id=%s type=%s description=%q remote_addr=%s engine_version=%s timestamp=%s",
		requestID,
		eventType,
		description,
		remoteAddr,
		EngineVersion,
		time.Now().UTC().Format(time.RFC3339),
	)
}

func (el *EventLogger) hashPlayer(playerKey string) string {
	if playerKey == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(playerKey))
	return hex.EncodeToString(hash[:])[:16]
}

// RequestLoggingMiddleware logs one line per request with timing
func (s *Server) RequestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.eventLogger.logger.Printf(
			"http_request request_id=%s method=%s path=%s status=%d bytes=%d duration_ms=%d remote_addr=%s",
			middleware.GetReqID(r.Context()),
			r.Method,
			r.URL.Path,
			ww.Status(),
			ww.BytesWritten(),
			time.Since(start).Milliseconds(),
			r.RemoteAddr,
		)
	})
}

// CORSMiddleware allows the web front end to call the API from another
// origin
func (s *Server) CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
