// Package catalog holds the transient movie data fetched from the
// provider: trending results, the active search, and the search history.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jsutton/marquee/internal/domain"
)

// State is a point-in-time copy of the catalog, safe for the view layer
// to read while operations are in flight.
type State struct {
	Trending      []domain.MovieSummary
	SearchQuery   string
	SearchResults []domain.MovieSummary
	SearchHistory []string
	IsLoading     bool
	LastError     *domain.OpError
}

// Store fetches movie data from the provider and keeps the results.
//
// Overlapping requests of the same class carry a monotonic sequence
// token; a response is applied only if its token is still the latest
// issued. A slow, stale response can therefore never overwrite the
// results of a request issued after it.
type Store struct {
	provider domain.Provider
	logger   *slog.Logger

	trendingSeq atomic.Uint64
	searchSeq   atomic.Uint64

	mu            sync.Mutex
	trending      []domain.MovieSummary
	searchQuery   string
	searchResults []domain.MovieSummary
	searchHistory []string
	historySeen   map[string]struct{}
	pending       int
	lastError     *domain.OpError
}

// NewStore creates a catalog store. Nothing is fetched until
// LoadTrending is called.
func NewStore(provider domain.Provider, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		provider:    provider,
		logger:      logger,
		historySeen: make(map[string]struct{}),
	}
}

// LoadTrending fetches the weekly trending movies. On failure the
// previous trending list is kept and the error is recorded.
func (s *Store) LoadTrending(ctx context.Context) error {
	seq := s.trendingSeq.Add(1)
	s.beginOp()

	movies, err := s.provider.Trending(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.endOpLocked()

	if seq != s.trendingSeq.Load() {
		s.logger.Debug("dropping stale trending response", "seq", seq)
		return nil
	}

	if err != nil {
		s.recordErrorLocked("trending", err)
		return err
	}

	s.trending = movies
	s.lastError = nil
	s.logger.Debug("loaded trending", "count", len(movies))
	return nil
}

// Search issues a provider title query. Blank queries are rejected
// without touching any state. On success the results and active query
// are replaced and the query is added to the history (set semantics,
// insertion order kept). On failure the previous results are kept.
func (s *Store) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.ErrEmptyQuery
	}

	seq := s.searchSeq.Add(1)
	s.beginOp()

	results, err := s.provider.SearchMovies(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.endOpLocked()

	if seq != s.searchSeq.Load() {
		s.logger.Debug("dropping stale search response", "query", query, "seq", seq)
		return nil
	}

	if err != nil {
		s.recordErrorLocked("search", err)
		return err
	}

	s.searchQuery = query
	s.searchResults = results
	s.lastError = nil
	if _, seen := s.historySeen[query]; !seen {
		s.historySeen[query] = struct{}{}
		s.searchHistory = append(s.searchHistory, query)
	}
	s.logger.Debug("search complete", "query", query, "results", len(results))
	return nil
}

// ClearSearch resets the active query and results. History is untouched.
func (s *Store) ClearSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = ""
	s.searchResults = nil
}

// Detail fetches the full record for one movie. Details are never
// cached; repeated calls refetch.
func (s *Store) Detail(ctx context.Context, id int) (*domain.MovieDetail, error) {
	s.beginOp()

	detail, err := s.provider.MovieDetail(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.endOpLocked()

	if err != nil {
		s.recordErrorLocked("detail", err)
		return nil, err
	}

	s.lastError = nil
	return detail, nil
}

// Snapshot returns a copy of the catalog state for rendering.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Trending:      append([]domain.MovieSummary(nil), s.trending...),
		SearchQuery:   s.searchQuery,
		SearchResults: append([]domain.MovieSummary(nil), s.searchResults...),
		SearchHistory: append([]string(nil), s.searchHistory...),
		IsLoading:     s.pending > 0,
		LastError:     s.lastError,
	}
}

func (s *Store) beginOp() {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
}

func (s *Store) endOpLocked() {
	if s.pending > 0 {
		s.pending--
	}
}

func (s *Store) recordErrorLocked(op string, err error) {
	var opErr *domain.OpError
	if errors.As(err, &opErr) {
		s.lastError = opErr
	} else {
		s.lastError = domain.NewOpError(op, domain.ErrKindUnreachable, err)
	}
	s.logger.Error("catalog operation failed", "op", op, "error", err)
}
