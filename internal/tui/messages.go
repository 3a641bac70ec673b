package tui

import (
	"github.com/jsutton/marquee/internal/catalog"
	"github.com/jsutton/marquee/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// LoginDoneMsg signals that the login delay has elapsed and the session
// is set
type LoginDoneMsg struct {
	Session domain.Session
}

// TrendingLoadedMsg signals that trending movies have been fetched
type TrendingLoadedMsg struct {
	State catalog.State
}

// SearchDoneMsg signals that a search has resolved
type SearchDoneMsg struct {
	State catalog.State
}

// DetailLoadedMsg signals that a movie detail record has been fetched
type DetailLoadedMsg struct {
	Detail *domain.MovieDetail
}

// LogoutDoneMsg signals that the session has been cleared
type LogoutDoneMsg struct{}
