package store

import (
	"errors"
	"testing"

	"github.com/jsutton/marquee/internal/domain"
)

func TestBoltRepositoryRoundTrip(t *testing.T) {
	repo, err := OpenBoltRepository(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer repo.Close()

	if _, err := repo.LoadIdentity(); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession on empty db, got %v", err)
	}

	if err := repo.SaveIdentity("alice"); err != nil {
		t.Fatalf("save: %v", err)
	}

	identity, err := repo.LoadIdentity()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if identity != "alice" {
		t.Fatalf("expected alice, got %q", identity)
	}

	if err := repo.ClearIdentity(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := repo.LoadIdentity(); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession after clear, got %v", err)
	}

	// Clearing again is a no-op
	if err := repo.ClearIdentity(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestBoltRepositorySurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	repo, err := OpenBoltRepository(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := repo.SaveIdentity("alice"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenBoltRepository(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	identity, err := reopened.LoadIdentity()
	if err != nil {
		t.Fatalf("load after reopen: %v", err)
	}
	if identity != "alice" {
		t.Fatalf("expected alice after reopen, got %q", identity)
	}
}

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository()

	if _, err := repo.LoadIdentity(); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}

	if err := repo.SaveIdentity("bob"); err != nil {
		t.Fatalf("save: %v", err)
	}
	identity, err := repo.LoadIdentity()
	if err != nil || identity != "bob" {
		t.Fatalf("load: got %q, %v", identity, err)
	}

	if err := repo.ClearIdentity(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := repo.LoadIdentity(); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession after clear, got %v", err)
	}
}
