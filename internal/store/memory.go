package store

import (
	"sync"

	"github.com/jsutton/marquee/internal/domain"
)

// MemoryRepository implements domain.SessionRepository in memory. Used by
// tests and by runs where no data directory is available.
type MemoryRepository struct {
	mu       sync.Mutex
	identity string
	present  bool
}

// NewMemoryRepository creates an empty in-memory session repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// SaveIdentity stores the identity string.
func (r *MemoryRepository) SaveIdentity(identity string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.identity = identity
	r.present = true
	return nil
}

// LoadIdentity returns the stored identity, or domain.ErrNoSession.
func (r *MemoryRepository) LoadIdentity() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.present {
		return "", domain.ErrNoSession
	}
	return r.identity, nil
}

// ClearIdentity removes the stored identity.
func (r *MemoryRepository) ClearIdentity() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.identity = ""
	r.present = false
	return nil
}
