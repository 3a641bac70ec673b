package catalog

import (
	"testing"

	"github.com/jsutton/marquee/internal/domain"
)

func testMovies() []domain.MovieSummary {
	return []domain.MovieSummary{
		{ID: 1, Title: "The Matrix"},
		{ID: 2, Title: "The Matrix Reloaded"},
		{ID: 3, Title: "Heat"},
		{ID: 4, Title: "Inception"},
	}
}

func TestFilterIndexMatches(t *testing.T) {
	idx := NewFilterIndex(testMovies())

	results := idx.Filter("matrix")
	if len(results) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(results))
	}
	for _, m := range results {
		if m.ID != 1 && m.ID != 2 {
			t.Errorf("unexpected match: %+v", m)
		}
	}
}

func TestFilterIndexEmptyQueryReturnsAll(t *testing.T) {
	idx := NewFilterIndex(testMovies())

	results := idx.Filter("   ")
	if len(results) != 4 {
		t.Fatalf("expected full list, got %d", len(results))
	}
}

func TestFilterIndexCaseInsensitive(t *testing.T) {
	idx := NewFilterIndex(testMovies())

	if len(idx.Filter("HEAT")) != 1 {
		t.Error("expected case-insensitive match")
	}
}

func TestFilterIndexNoMatch(t *testing.T) {
	idx := NewFilterIndex(testMovies())

	if got := idx.Filter("zzzzzz"); len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}

func TestRankHistoryPrefersCloserMatches(t *testing.T) {
	history := []string{"alien", "aliens", "blade runner"}

	ranked := RankHistory("alien", history)
	if len(ranked) == 0 {
		t.Fatal("expected matches")
	}
	if ranked[0] != "alien" {
		t.Errorf("expected exact match first, got %q", ranked[0])
	}
	for _, r := range ranked {
		if r == "blade runner" {
			t.Error("unrelated query should not rank")
		}
	}
}

func TestRankHistoryEmptyPrefixNewestFirst(t *testing.T) {
	history := []string{"first", "second", "third"}

	ranked := RankHistory("", history)
	want := []string{"third", "second", "first"}
	if len(ranked) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(ranked))
	}
	for i := range want {
		if ranked[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ranked)
		}
	}
}
