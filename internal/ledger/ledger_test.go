package ledger

import (
	"path/filepath"
	"testing"
)

func TestMarkAndCheckSeen(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if l.IsSeen("user-1", "code-quiz", "abc123") {
		t.Fatalf("fresh ledger reported a question as seen")
	}

	if err := l.MarkSeen("user-1", "code-quiz", "abc123"); err != nil {
		t.Fatalf("MarkSeen: %v", err)
	}

	if !l.IsSeen("user-1", "code-quiz", "abc123") {
		t.Errorf("marked question not reported as seen")
	}

	// Same fingerprint under a different identity or game stays unseen.
	if l.IsSeen("user-2", "code-quiz", "abc123") {
		t.Errorf("seen mark leaked across identities")
	}
	if l.IsSeen("user-1", "ai-ml", "abc123") {
		t.Errorf("seen mark leaked across game types")
	}
}

func TestPersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()

	l, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := l.MarkSeen("guest_Asha", "web-dev", "fp1"); err != nil {
		t.Fatalf("MarkSeen: %v", err)
	}
	if err := l.MarkSeen("guest_Asha", "web-dev", "fp2"); err != nil {
		t.Fatalf("MarkSeen: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if !reopened.IsSeen("guest_Asha", "web-dev", "fp1") || !reopened.IsSeen("guest_Asha", "web-dev", "fp2") {
		t.Errorf("seen marks lost across reopen")
	}
	if reopened.Size() != 2 {
		t.Errorf("expected 2 entries after reopen, got %d", reopened.Size())
	}
}

func TestResetScopesToIdentityAndGame(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	for _, fp := range []string{"a", "b", "c"} {
		if err := l.MarkSeen("user-1", "code-quiz", fp); err != nil {
			t.Fatalf("MarkSeen: %v", err)
		}
	}
	if err := l.MarkSeen("user-1", "ai-ml", "d"); err != nil {
		t.Fatalf("MarkSeen: %v", err)
	}
	if err := l.MarkSeen("user-2", "code-quiz", "a"); err != nil {
		t.Fatalf("MarkSeen: %v", err)
	}

	if err := l.ResetForIdentityAndGame("user-1", "code-quiz"); err != nil {
		t.Fatalf("ResetForIdentityAndGame: %v", err)
	}

	if l.IsSeen("user-1", "code-quiz", "a") {
		t.Errorf("reset left user-1 code-quiz entries behind")
	}
	if !l.IsSeen("user-1", "ai-ml", "d") {
		t.Errorf("reset removed another game's entries")
	}
	if !l.IsSeen("user-2", "code-quiz", "a") {
		t.Errorf("reset removed another identity's entries")
	}
}

func TestSlotFileLocation(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := l.MarkSeen("u", "g", "f"); err != nil {
		t.Fatalf("MarkSeen: %v", err)
	}
	if l.path != filepath.Join(dir, SlotName) {
		t.Errorf("unexpected slot path %q", l.path)
	}
}
