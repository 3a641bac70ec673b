package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsutton/marquee/internal/catalog"
	"github.com/jsutton/marquee/internal/session"
)

// Command factories for async store operations

const opTimeout = 30 * time.Second

// LoginCmd runs the login flow (artificial delay included)
func LoginCmd(store *session.Store, identity string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		sess, err := store.Login(ctx, identity)
		if err != nil {
			return ErrMsg{Err: err, Context: "logging in"}
		}
		return LoginDoneMsg{Session: sess}
	}
}

// LogoutCmd clears the session
func LogoutCmd(store *session.Store) tea.Cmd {
	return func() tea.Msg {
		if err := store.Logout(); err != nil {
			return ErrMsg{Err: err, Context: "logging out"}
		}
		return LogoutDoneMsg{}
	}
}

// LoadTrendingCmd fetches the weekly trending movies
func LoadTrendingCmd(store *catalog.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		// Errors land in the catalog state; the snapshot carries them.
		_ = store.LoadTrending(ctx)
		return TrendingLoadedMsg{State: store.Snapshot()}
	}
}

// SearchCmd issues a provider search for the given query
func SearchCmd(store *catalog.Store, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		_ = store.Search(ctx, query)
		return SearchDoneMsg{State: store.Snapshot()}
	}
}

// LoadDetailCmd fetches the full record for one movie
func LoadDetailCmd(store *catalog.Store, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		detail, err := store.Detail(ctx, id)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading details"}
		}
		return DetailLoadedMsg{Detail: detail}
	}
}
