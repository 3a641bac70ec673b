package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsutton/marquee/internal/adapter"
	"github.com/jsutton/marquee/internal/domain"
)

const trendingFixture = `{
  "page": 1,
  "results": [
    {"id": 603, "title": "The Matrix", "poster_path": "/matrix.jpg", "vote_average": 8.2, "release_date": "1999-03-30", "overview": "A hacker learns the truth.", "genre_ids": [28, 878]},
    {"id": 27205, "title": "Inception", "poster_path": "/inception.jpg", "vote_average": 8.4, "release_date": "2010-07-15", "overview": "Dreams within dreams.", "genre_ids": [28, 53]}
  ],
  "total_pages": 1,
  "total_results": 2
}`

const detailFixture = `{
  "id": 603,
  "title": "The Matrix",
  "poster_path": "/matrix.jpg",
  "vote_average": 8.2,
  "release_date": "1999-03-30",
  "overview": "A hacker learns the truth.",
  "runtime": 136,
  "genres": [{"id": 28, "name": "Action"}, {"id": 878, "name": "Science Fiction"}],
  "videos": {"results": [
    {"key": "clip1", "site": "Vimeo", "type": "Clip"},
    {"key": "vim-trailer", "site": "Vimeo", "type": "Trailer"},
    {"key": "yt-trailer", "site": "YouTube", "type": "Trailer"}
  ]},
  "credits": {"cast": [
    {"id": 6384, "name": "Keanu Reeves", "character": "Neo", "profile_path": "/keanu.jpg", "order": 0},
    {"id": 2975, "name": "Laurence Fishburne", "character": "Morpheus", "profile_path": "/fish.jpg", "order": 1}
  ]}
}`

func TestTrending(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trending/movie/week" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("expected api_key query param, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(trendingFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", adapter.NullLogger())

	movies, err := client.Trending(context.Background())
	if err != nil {
		t.Fatalf("trending: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(movies))
	}

	first := movies[0]
	if first.ID != 603 || first.Title != "The Matrix" {
		t.Errorf("unexpected first movie: %+v", first)
	}
	if first.PosterPath != "/matrix.jpg" || first.VoteAverage != 8.2 {
		t.Errorf("unexpected first movie fields: %+v", first)
	}
	if first.ReleaseYear() != "1999" {
		t.Errorf("expected release year 1999, got %q", first.ReleaseYear())
	}
	if len(first.GenreIDs) != 2 {
		t.Errorf("expected 2 genre refs, got %v", first.GenreIDs)
	}
}

func TestSearchMoviesSendsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "the matrix" {
			t.Errorf("expected query param %q, got %q", "the matrix", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(trendingFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", adapter.NullLogger())

	movies, err := client.SearchMovies(context.Background(), "the matrix")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("expected 2 results, got %d", len(movies))
	}
}

func TestMovieDetailMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("append_to_response"); got != "videos,credits" {
			t.Errorf("expected appended sub-resources, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(detailFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", adapter.NullLogger())

	detail, err := client.MovieDetail(context.Background(), 603)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}

	if detail.Runtime != 136 {
		t.Errorf("expected runtime 136, got %d", detail.Runtime)
	}
	if detail.FormattedRuntime() != "2h 16m" {
		t.Errorf("unexpected formatted runtime %q", detail.FormattedRuntime())
	}
	if detail.GenreNames() != "Action, Science Fiction" {
		t.Errorf("unexpected genres %q", detail.GenreNames())
	}
	// YouTube trailer wins over the Vimeo one listed before it
	if detail.TrailerKey != "yt-trailer" {
		t.Errorf("expected YouTube trailer preferred, got %q", detail.TrailerKey)
	}
	if len(detail.Cast) != 2 {
		t.Fatalf("expected 2 cast members, got %d", len(detail.Cast))
	}
	if detail.Cast[0].Character != "Neo" {
		t.Errorf("unexpected first cast member: %+v", detail.Cast[0])
	}
}

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		kind   domain.ErrKind
	}{
		{"unauthorized", http.StatusUnauthorized, `{"status_code": 7, "status_message": "Invalid API key"}`, domain.ErrKindAuth},
		{"server error", http.StatusInternalServerError, `oops`, domain.ErrKindProviderStatus},
		{"not found", http.StatusNotFound, `{"status_code": 34, "status_message": "not found"}`, domain.ErrKindProviderStatus},
		{"garbage payload", http.StatusOK, `{"results": "nope"`, domain.ErrKindDecode},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-key", adapter.NullLogger())

			_, err := client.Trending(context.Background())
			if err == nil {
				t.Fatal("expected an error")
			}

			var opErr *domain.OpError
			if !errors.As(err, &opErr) {
				t.Fatalf("expected *domain.OpError, got %T", err)
			}
			if opErr.Kind != tc.kind {
				t.Errorf("expected kind %v, got %v", tc.kind, opErr.Kind)
			}
			if opErr.Op != "trending" {
				t.Errorf("expected op trending, got %q", opErr.Op)
			}
		})
	}
}

func TestTransportFailureIsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Nothing listens anymore

	client := NewClient(server.URL, "test-key", adapter.NullLogger())

	_, err := client.Trending(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}

	var opErr *domain.OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected *domain.OpError, got %T", err)
	}
	if opErr.Kind != domain.ErrKindUnreachable {
		t.Errorf("expected unreachable kind, got %v", opErr.Kind)
	}
}
