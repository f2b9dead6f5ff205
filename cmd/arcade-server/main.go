package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/api"
	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/engine"
	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/quizapi"
	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "[ARCADE] ", log.LstdFlags|log.Lshortfile)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Printf("dotenv_load_failed err=%v", err)
	}

	addr := envOr("ARCADE_ADDR", ":8080")
	dbPath := envOr("ARCADE_DB_PATH", "arcade.db")
	dataDir := envOr("ARCADE_DATA_DIR", ".")

	db, err := store.NewSQLiteDB(dbPath)
	if err != nil {
		logger.Fatalf("store_open_failed path=%s err=%v", dbPath, err)
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		logger.Fatalf("store_migrate_failed err=%v", err)
	}

	generator := engine.NewGenerator(remoteSource(dataDir, logger), logger)
	server := api.NewServer(db, generator)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 65 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("server_listening addr=%s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server_failed err=%v", err)
		}
	case sig := <-stop:
		logger.Printf("server_shutdown signal=%s", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Printf("server_shutdown_failed err=%v", err)
		}
	}
}

// remoteSource builds the upstream question client when one is
// configured. The API key comes from the environment if set, otherwise
// from the OS keychain. Without a base URL generation is local only.
func remoteSource(dataDir string, logger *log.Logger) engine.RemoteSource {
	baseURL := os.Getenv("QUIZGEN_URL")
	if baseURL == "" {
		logger.Printf("quizgen_disabled reason=no_url")
		return nil
	}

	apiKey := os.Getenv("QUIZGEN_API_KEY")
	if apiKey == "" {
		keys := quizapi.NewKeyStore("vidyasetu-arcade", dataDir+"/secrets.json")
		stored, err := keys.APIKey()
		if err != nil {
			logger.Printf("quizgen_key_missing err=%v", err)
		} else {
			apiKey = stored
		}
	}

	return quizapi.NewClient(quizapi.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
