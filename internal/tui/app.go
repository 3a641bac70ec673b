package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsutton/marquee/internal/catalog"
	"github.com/jsutton/marquee/internal/domain"
	"github.com/jsutton/marquee/internal/favorites"
	"github.com/jsutton/marquee/internal/session"
	"github.com/jsutton/marquee/internal/tui/styles"
)

// ApplicationState represents the current screen of the application
type ApplicationState int

const (
	StateLogin ApplicationState = iota
	StateBrowse
	StateSearch
	StateDetail
	StateFavorites
)

// Model is the main Bubble Tea model for the application
type Model struct {
	State ApplicationState
	Keys  KeyMap

	// Stores (constructed in main, passed by reference)
	Session   *session.Store
	Catalog   *catalog.Store
	Favorites *favorites.Store

	// UI components
	loginInput  textinput.Model
	searchInput textinput.Model
	filterInput textinput.Model
	spin        spinner.Model
	detailView  viewport.Model

	// Data
	catalogState catalog.State
	detail       *domain.MovieDetail

	// List navigation
	cursor       int
	prevState    ApplicationState // Screen to return to from detail view
	filterActive bool             // Inline filter shown on list screens
	loading      bool
	width        int
	height       int
	ready        bool
}

// NewModel creates the TUI model. If the session store already holds a
// restored session the login screen is skipped.
func NewModel(sess *session.Store, cat *catalog.Store, favs *favorites.Store) Model {
	login := textinput.New()
	login.Placeholder = "who's watching?"
	login.CharLimit = 64
	login.Focus()

	search := textinput.New()
	search.Placeholder = "search movies…"
	search.CharLimit = 128

	filter := textinput.New()
	filter.Placeholder = "filter titles…"
	filter.CharLimit = 64

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.AccentStyle

	m := Model{
		State:       StateLogin,
		Keys:        DefaultKeyMap(),
		Session:     sess,
		Catalog:     cat,
		Favorites:   favs,
		loginInput:  login,
		searchInput: search,
		filterInput: filter,
		spin:        spin,
		prevState:   StateBrowse,
	}

	if sess.Current().IsAuthenticated() {
		m.State = StateBrowse
		m.loading = true
	}

	return m
}

// Init starts the spinner and, when already authenticated, the initial
// trending load.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spin.Tick}
	if m.State == StateBrowse {
		cmds = append(cmds, LoadTrendingCmd(m.Catalog))
	}
	return tea.Batch(cmds...)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detailView = viewport.New(msg.Width-4, msg.Height-6)
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case LoginDoneMsg:
		m.State = StateBrowse
		m.loading = true
		return m, LoadTrendingCmd(m.Catalog)

	case LogoutDoneMsg:
		m.State = StateLogin
		m.loginInput.SetValue("")
		m.loginInput.Focus()
		m.clearFilter()
		return m, textinput.Blink

	case TrendingLoadedMsg:
		m.loading = false
		m.catalogState = msg.State
		m.clampCursor()
		return m, nil

	case SearchDoneMsg:
		m.loading = false
		m.catalogState = msg.State
		m.cursor = 0
		return m, nil

	case DetailLoadedMsg:
		m.loading = false
		m.detail = msg.Detail
		m.State = StateDetail
		m.detailView.SetContent(m.renderDetailContent())
		m.detailView.GotoTop()
		return m, nil

	case ErrMsg:
		m.loading = false
		// Store-level failures already landed in the catalog state;
		// refresh our copy so the message renders.
		m.catalogState = m.Catalog.Snapshot()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key presses by screen
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit, except while typing
	if !m.typing() && key.Matches(msg, m.Keys.Quit) {
		return m, tea.Quit
	}

	switch m.State {
	case StateLogin:
		return m.handleLoginKey(msg)
	case StateSearch:
		return m.handleSearchKey(msg)
	case StateDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		identity := m.loginInput.Value()
		if identity == "" {
			return m, nil
		}
		m.loading = true
		return m, LoginCmd(m.Session, identity)
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.loginInput, cmd = m.loginInput.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if !m.searchInput.Focused() {
			break // Enter on the results list opens details
		}
		query := m.searchInput.Value()
		if query == "" {
			return m, nil
		}
		m.searchInput.Blur()
		m.loading = true
		return m, SearchCmd(m.Catalog, query)
	case tea.KeyEsc:
		if m.searchInput.Focused() {
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			m.Catalog.ClearSearch()
			m.catalogState = m.Catalog.Snapshot()
			m.State = StateBrowse
			m.cursor = 0
			return m, nil
		}
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	if m.searchInput.Focused() {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	// Results list has focus
	return m.handleListKey(msg)
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Back):
		m.detail = nil
		m.State = m.prevState
		return m, nil
	case key.Matches(msg, m.Keys.Toggle):
		if m.detail != nil {
			m.Favorites.Toggle(m.detail.MovieSummary)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.detailView, cmd = m.detailView.Update(msg)
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterInput.Focused() {
		switch msg.Type {
		case tea.KeyEnter:
			// Keep the narrowed list, hand focus back to navigation
			m.filterInput.Blur()
			return m, nil
		case tea.KeyEsc:
			m.clearFilter()
			return m, nil
		case tea.KeyCtrlC:
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.cursor = 0
		return m, cmd
	}

	list := m.currentList()

	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.cursor < len(list)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.Keys.Enter):
		if m.cursor < len(list) {
			m.prevState = m.State
			m.loading = true
			return m, LoadDetailCmd(m.Catalog, list[m.cursor].ID)
		}
	case key.Matches(msg, m.Keys.Toggle):
		if m.cursor < len(list) {
			m.Favorites.Toggle(list[m.cursor])
			if m.State == StateFavorites {
				m.clampCursor()
			}
		}
	case key.Matches(msg, m.Keys.Search):
		m.clearFilter()
		m.State = StateSearch
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.Keys.Filter):
		if m.State != StateSearch {
			m.filterActive = true
			m.filterInput.Focus()
			m.cursor = 0
			return m, textinput.Blink
		}
	case key.Matches(msg, m.Keys.Favorites):
		m.clearFilter()
		m.State = StateFavorites
	case key.Matches(msg, m.Keys.Trending):
		m.clearFilter()
		m.State = StateBrowse
	case key.Matches(msg, m.Keys.Back):
		if m.filterActive {
			m.clearFilter()
		} else if m.State != StateBrowse {
			m.State = StateBrowse
			m.cursor = 0
		}
	case key.Matches(msg, m.Keys.Logout):
		return m, LogoutCmd(m.Session)
	}

	return m, nil
}

// currentList returns the movies shown on the active screen
func (m Model) currentList() []domain.MovieSummary {
	switch m.State {
	case StateSearch:
		return m.catalogState.SearchResults
	case StateFavorites:
		return m.filtered(m.Favorites.All())
	default:
		return m.filtered(m.catalogState.Trending)
	}
}

// filtered narrows a list through the inline title filter when active
func (m Model) filtered(movies []domain.MovieSummary) []domain.MovieSummary {
	if !m.filterActive || strings.TrimSpace(m.filterInput.Value()) == "" {
		return movies
	}
	return catalog.NewFilterIndex(movies).Filter(m.filterInput.Value())
}

func (m *Model) clearFilter() {
	m.filterActive = false
	m.filterInput.Blur()
	m.filterInput.SetValue("")
	m.cursor = 0
}

func (m *Model) clampCursor() {
	if n := len(m.currentList()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	} else if n == 0 {
		m.cursor = 0
	}
}

// typing reports whether a text input currently owns the keyboard
func (m Model) typing() bool {
	return m.loginInput.Focused() && m.State == StateLogin ||
		m.searchInput.Focused() && m.State == StateSearch ||
		m.filterInput.Focused()
}
