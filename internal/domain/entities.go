package domain

import (
	"fmt"
	"strings"
)

// MovieSummary is the list-granularity movie record returned by the
// provider's trending and search endpoints. It is read-only once fetched;
// summaries are never merged or cached across requests.
type MovieSummary struct {
	ID          int     // Provider-unique identifier
	Title       string  // Display title
	PosterPath  string  // Provider-relative poster path ("" if none)
	VoteAverage float64 // Community rating on a 0-10 scale
	ReleaseDate string  // "YYYY-MM-DD" as reported by the provider
	Overview    string  // Plot synopsis
	GenreIDs    []int   // Provider genre references
}

// ReleaseYear returns the four-digit release year, or "" when the provider
// reported no release date.
func (m MovieSummary) ReleaseYear() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// FormattedRating returns the rating formatted to one decimal, e.g. "7.8".
func (m MovieSummary) FormattedRating() string {
	if m.VoteAverage <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", m.VoteAverage)
}

// HasPoster reports whether the provider supplied a poster path.
func (m MovieSummary) HasPoster() bool {
	return m.PosterPath != ""
}

// PosterURL joins the provider image base with the poster path.
// Returns "" when there is no poster.
func (m MovieSummary) PosterURL(imageBase string) string {
	if m.PosterPath == "" {
		return ""
	}
	return strings.TrimRight(imageBase, "/") + m.PosterPath
}

// Genre is a provider genre tag.
type Genre struct {
	ID   int
	Name string
}

// CastMember is one credited actor on a movie's detail record.
type CastMember struct {
	ID          int    // Provider-unique person identifier
	Name        string // Actor name
	Character   string // Character played
	ProfilePath string // Provider-relative headshot path ("" if none)
}

// MovieDetail is the single-item granularity record. It is fetched per
// movie id and never cached; repeated visits refetch.
type MovieDetail struct {
	MovieSummary

	Runtime    int          // Minutes (0 when unknown)
	Genres     []Genre      // Resolved genre tags
	Cast       []CastMember // Billing order as returned by the provider
	TrailerKey string       // YouTube video key ("" when no trailer)
}

// FormattedRuntime returns the runtime in a human-readable format.
func (d MovieDetail) FormattedRuntime() string {
	if d.Runtime <= 0 {
		return ""
	}
	h := d.Runtime / 60
	m := d.Runtime % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// HasTrailer reports whether a trailer was found on the detail record.
func (d MovieDetail) HasTrailer() bool {
	return d.TrailerKey != ""
}

// TrailerURL returns the watch URL for the movie's trailer, or "" when
// the provider returned none.
func (d MovieDetail) TrailerURL() string {
	if d.TrailerKey == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + d.TrailerKey
}

// GenreNames returns the genre names joined for display, e.g.
// "Action, Thriller".
func (d MovieDetail) GenreNames() string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}

// Session is the record of the currently authenticated identity. The zero
// value is the unauthenticated session.
type Session struct {
	Identity string
}

// IsAuthenticated reports whether an identity is present.
func (s Session) IsAuthenticated() bool {
	return s.Identity != ""
}
