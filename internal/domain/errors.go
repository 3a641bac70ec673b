package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for store operations
var (
	// ErrEmptyQuery indicates a search was attempted with a blank query
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrEmptyIdentity indicates a login was attempted with a blank identity
	ErrEmptyIdentity = errors.New("identity is empty")

	// ErrNoSession indicates no stored session identity was found
	ErrNoSession = errors.New("no stored session")
)

// ErrKind classifies provider failures so consumers can react differently
// to distinct failure modes instead of matching on message text.
type ErrKind int

const (
	// ErrKindUnreachable covers transport-level failures (DNS, refused
	// connections, timeouts) where the provider never answered.
	ErrKindUnreachable ErrKind = iota

	// ErrKindProviderStatus covers non-2xx provider responses.
	ErrKindProviderStatus

	// ErrKindAuth covers 401 responses (bad or missing API key).
	ErrKindAuth

	// ErrKindDecode covers malformed provider payloads.
	ErrKindDecode
)

// String returns a human-readable name for the error kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindUnreachable:
		return "unreachable"
	case ErrKindProviderStatus:
		return "provider status"
	case ErrKindAuth:
		return "auth"
	case ErrKindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// OpError is a provider failure tagged with the operation it occurred
// during and a coarse kind. It replaces an untyped message slot so the
// view layer can distinguish "offline" from "provider rejected us".
type OpError struct {
	Op   string // Operation name, e.g. "trending", "search", "detail"
	Kind ErrKind
	Err  error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s failure", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *OpError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing message for the failure.
func (e *OpError) Message() string {
	switch e.Kind {
	case ErrKindUnreachable:
		return "Could not reach the movie provider. Check your connection."
	case ErrKindAuth:
		return "The provider rejected the API key."
	default:
		return "Something went wrong fetching movies. Try again."
	}
}

// NewOpError builds a tagged operation error.
func NewOpError(op string, kind ErrKind, err error) *OpError {
	return &OpError{Op: op, Kind: kind, Err: err}
}
