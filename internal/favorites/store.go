// Package favorites keeps the user's favorite movies for the lifetime of
// the process. Favorites are not persisted; a restart starts empty.
package favorites

import (
	"sync"

	"github.com/jsutton/marquee/internal/domain"
)

// Store is a set of movies keyed by id. Iteration order follows the
// order favorites were added; removing one leaves the rest in place.
type Store struct {
	mu    sync.RWMutex
	order []domain.MovieSummary
	index map[int]int // movie id -> position in order
}

// NewStore creates an empty favorites set.
func NewStore() *Store {
	return &Store{index: make(map[int]int)}
}

// Toggle flips membership for the given movie: adds it if absent,
// removes it if present. Reports whether the movie is now a favorite.
func (s *Store) Toggle(movie domain.MovieSummary) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, present := s.index[movie.ID]
	if !present {
		s.index[movie.ID] = len(s.order)
		s.order = append(s.order, movie)
		return true
	}

	s.order = append(s.order[:pos], s.order[pos+1:]...)
	delete(s.index, movie.ID)
	for i := pos; i < len(s.order); i++ {
		s.index[s.order[i].ID] = i
	}
	return false
}

// IsFavorite reports membership for a movie id.
func (s *Store) IsFavorite(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[id]
	return ok
}

// All returns a copy of the favorites in the order they were added.
func (s *Store) All() []domain.MovieSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.MovieSummary(nil), s.order...)
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
