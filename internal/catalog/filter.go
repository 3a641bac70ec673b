package catalog

import (
	"sort"
	"strings"

	"github.com/jsutton/marquee/internal/domain"
	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"
)

// FilterIndex implements sahilm/fuzzy.Source over movie titles for
// zero-allocation fuzzy matching of an already-fetched list.
type FilterIndex struct {
	movies      []domain.MovieSummary
	lowerTitles []string
}

// NewFilterIndex builds an index over the given movies.
func NewFilterIndex(movies []domain.MovieSummary) *FilterIndex {
	idx := &FilterIndex{
		movies:      movies,
		lowerTitles: make([]string, len(movies)),
	}
	for i, m := range movies {
		idx.lowerTitles[i] = strings.ToLower(m.Title)
	}
	return idx
}

// String returns the lowercase title at index i (implements fuzzy.Source).
func (idx *FilterIndex) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of indexed movies (implements fuzzy.Source).
func (idx *FilterIndex) Len() int { return len(idx.movies) }

// Filter returns the movies whose titles fuzzily match the query, best
// match first. An empty query returns the full list.
func (idx *FilterIndex) Filter(query string) []domain.MovieSummary {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]domain.MovieSummary(nil), idx.movies...)
	}

	matches := sahilm.FindFrom(query, idx)

	results := make([]domain.MovieSummary, 0, len(matches))
	for _, match := range matches {
		results = append(results, idx.movies[match.Index])
	}
	return results
}

// RankHistory orders past search queries by closeness to the typed
// prefix, best first. Queries that do not match at all are dropped.
// An empty prefix returns the history newest-first.
func RankHistory(prefix string, history []string) []string {
	if strings.TrimSpace(prefix) == "" {
		reversed := make([]string, 0, len(history))
		for i := len(history) - 1; i >= 0; i-- {
			reversed = append(reversed, history[i])
		}
		return reversed
	}

	ranks := fuzzy.RankFindFold(prefix, history)
	sort.Slice(ranks, func(i, j int) bool {
		return ranks[i].Distance < ranks[j].Distance
	})

	results := make([]string, 0, len(ranks))
	for _, r := range ranks {
		results = append(results, r.Target)
	}
	return results
}
