package domain

import "context"

// Provider is the remote movie-metadata service. Implementations map the
// provider's wire format into domain records and classify failures as
// *OpError values.
type Provider interface {
	// Trending returns the current weekly trending movies.
	Trending(ctx context.Context) ([]MovieSummary, error)

	// SearchMovies returns movies matching the given title query.
	SearchMovies(ctx context.Context, query string) ([]MovieSummary, error)

	// MovieDetail returns the full record for a single movie id,
	// including cast and trailer references.
	MovieDetail(ctx context.Context, id int) (*MovieDetail, error)
}

// SessionRepository is the durable local storage behind the session store:
// a single key holding the identity string. Read once at startup, written
// on login, deleted on logout.
type SessionRepository interface {
	// SaveIdentity persists the identity string.
	SaveIdentity(identity string) error

	// LoadIdentity returns the stored identity, or ErrNoSession when
	// none exists.
	LoadIdentity() (string, error)

	// ClearIdentity removes the stored identity. Clearing an absent
	// identity is not an error.
	ClearIdentity() error
}
