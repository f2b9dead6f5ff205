package store

import (
	"path/filepath"
	"testing"
)

func TestMigrationIdempotency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.db")
	db, err := NewSQLiteDB(path)
	if err != nil {
		t.Fatalf("NewSQLiteDB: %v", err)
	}
	defer db.Close()

	// Running migrations repeatedly must not fail or lose data.
	for i := 0; i < 3; i++ {
		if err := db.Migrate(); err != nil {
			t.Fatalf("Migrate run %d: %v", i+1, err)
		}
	}

	if err := db.SaveScore(&GameScore{Name: "Asha", GameType: "code-quiz", Score: 7}); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}
	if err := db.Migrate(); err != nil {
		t.Fatalf("Migrate after write: %v", err)
	}

	board, err := db.Leaderboard(10)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(board["code-quiz"]) != 1 {
		t.Fatalf("data lost across migrations: %+v", board)
	}
}

func TestReopenExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.db")

	db, err := NewSQLiteDB(path)
	if err != nil {
		t.Fatalf("NewSQLiteDB: %v", err)
	}
	if err := db.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := db.SaveScore(&GameScore{Name: "Ravi", GameType: "data-science", Score: 9}); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := NewSQLiteDB(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if err := reopened.Migrate(); err != nil {
		t.Fatalf("Migrate on reopen: %v", err)
	}

	board, err := reopened.Leaderboard(10)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(board["data-science"]) != 1 {
		t.Fatalf("score not persisted across reopen: %+v", board)
	}
}
