package favorites

import (
	"testing"

	"github.com/jsutton/marquee/internal/domain"
)

func movie(id int, title string) domain.MovieSummary {
	return domain.MovieSummary{ID: id, Title: title}
}

func titles(movies []domain.MovieSummary) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

func TestToggleAddsAndRemoves(t *testing.T) {
	store := NewStore()
	heat := movie(1, "Heat")

	if added := store.Toggle(heat); !added {
		t.Fatal("first toggle should add")
	}
	if !store.IsFavorite(1) {
		t.Fatal("expected movie to be a favorite after add")
	}

	if added := store.Toggle(heat); added {
		t.Fatal("second toggle should remove")
	}
	if store.IsFavorite(1) {
		t.Fatal("expected movie removed after second toggle")
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty set, got %d", store.Len())
	}
}

func TestDoubleToggleRestoresOrder(t *testing.T) {
	store := NewStore()
	for _, m := range []domain.MovieSummary{movie(1, "Heat"), movie(2, "Ronin"), movie(3, "Thief")} {
		store.Toggle(m)
	}

	before := titles(store.All())

	// Toggle the middle entry off and back on again
	store.Toggle(movie(2, "Ronin"))

	remaining := titles(store.All())
	want := []string{"Heat", "Thief"}
	if len(remaining) != 2 || remaining[0] != want[0] || remaining[1] != want[1] {
		t.Fatalf("removal broke relative order: got %v, want %v", remaining, want)
	}

	store.Toggle(movie(2, "Ronin"))

	after := titles(store.All())
	if len(after) != len(before) {
		t.Fatalf("membership not restored: got %v", after)
	}
	// Re-added entries append; original members keep their relative order
	if after[0] != "Heat" || after[1] != "Thief" || after[2] != "Ronin" {
		t.Fatalf("unexpected order after re-add: %v", after)
	}
	for _, id := range []int{1, 2, 3} {
		if !store.IsFavorite(id) {
			t.Errorf("expected id %d to be a favorite", id)
		}
	}
}

func TestAllReturnsACopy(t *testing.T) {
	store := NewStore()
	store.Toggle(movie(1, "Heat"))

	all := store.All()
	all[0].Title = "mutated"

	if got := store.All()[0].Title; got != "Heat" {
		t.Fatalf("All must return a copy, internal title became %q", got)
	}
}

func TestIsFavoriteUnknownID(t *testing.T) {
	store := NewStore()
	if store.IsFavorite(42) {
		t.Fatal("empty store should have no favorites")
	}
}
