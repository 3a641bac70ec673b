// Package session holds the current user identity and persists it across
// restarts through a SessionRepository.
//
// Login performs no credential verification: any non-blank identity is
// accepted after a fixed artificial delay. That is a deliberate gap kept
// from the system this replaces, not a pattern to copy into anything that
// guards real data.
package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jsutton/marquee/internal/domain"
)

// DefaultLoginDelay simulates the round trip a real credential check
// would take.
const DefaultLoginDelay = 1500 * time.Millisecond

// Store manages the current session. Concurrent logins are last-call-wins.
type Store struct {
	repo   domain.SessionRepository
	delay  time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	current domain.Session
}

// NewStore creates a session store backed by the given repository.
// A negative delay falls back to DefaultLoginDelay; zero disables it.
func NewStore(repo domain.SessionRepository, delay time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if delay < 0 {
		delay = DefaultLoginDelay
	}
	return &Store{repo: repo, delay: delay, logger: logger}
}

// Login accepts any non-blank identity after the artificial delay, sets it
// as the current session, and persists it to durable storage.
func (s *Store) Login(ctx context.Context, identity string) (domain.Session, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return domain.Session{}, domain.ErrEmptyIdentity
	}

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return domain.Session{}, ctx.Err()
		}
	}

	// Persist before updating memory so a storage failure leaves the
	// store fully logged out rather than half authenticated.
	if err := s.repo.SaveIdentity(identity); err != nil {
		s.logger.Error("failed to persist session", "error", err)
		return domain.Session{}, err
	}

	s.mu.Lock()
	s.current = domain.Session{Identity: identity}
	s.mu.Unlock()

	s.logger.Info("logged in", "identity", identity)
	return domain.Session{Identity: identity}, nil
}

// Logout clears the identity from memory and durable storage. Calling it
// on an already cleared session is a no-op.
func (s *Store) Logout() error {
	s.mu.Lock()
	wasAuthenticated := s.current.IsAuthenticated()
	s.current = domain.Session{}
	s.mu.Unlock()

	if err := s.repo.ClearIdentity(); err != nil {
		s.logger.Error("failed to clear stored session", "error", err)
		return err
	}

	if wasAuthenticated {
		s.logger.Info("logged out")
	}
	return nil
}

// Restore reads durable storage once at startup. A stored identity is
// treated as already authenticated without re-validation.
func (s *Store) Restore() (domain.Session, bool) {
	identity, err := s.repo.LoadIdentity()
	if err != nil {
		return domain.Session{}, false
	}

	sess := domain.Session{Identity: identity}
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	s.logger.Info("restored session", "identity", identity)
	return sess, true
}

// Current returns the session as of the last Login/Logout/Restore.
func (s *Store) Current() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
