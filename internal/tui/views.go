package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsutton/marquee/internal/catalog"
	"github.com/jsutton/marquee/internal/domain"
	"github.com/jsutton/marquee/internal/tui/styles"
)

const maxVisibleRows = 20

// View renders the active screen
func (m Model) View() string {
	if !m.ready {
		return "loading…"
	}

	var body string
	switch m.State {
	case StateLogin:
		body = m.renderLogin()
	case StateSearch:
		body = m.renderSearch()
	case StateDetail:
		body = m.renderDetail()
	case StateFavorites:
		body = m.renderList("Favorites", m.currentList())
	default:
		body = m.renderList("Trending This Week", m.currentList())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := styles.HeaderStyle.Render("MARQUEE")

	var right string
	if sess := m.Session.Current(); sess.IsAuthenticated() {
		right = styles.SubtitleStyle.Render(sess.Identity)
	}

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + right
}

func (m Model) renderFooter() string {
	if m.loading {
		return styles.FooterStyle.Render(m.spin.View() + " loading…")
	}
	if err := m.catalogState.LastError; err != nil {
		return styles.ErrorStyle.Padding(0, 1).Render(err.Message())
	}

	var help string
	switch m.State {
	case StateLogin:
		help = "enter: sign in • ctrl+c: quit"
	case StateDetail:
		help = "f: toggle favorite • esc: back • q: quit"
	case StateSearch:
		help = "enter: search • esc: clear • f: favorite • q: quit"
	default:
		if m.filterInput.Focused() {
			help = "type to filter • enter: keep • esc: clear"
		} else {
			help = "/: search • ctrl+f: filter • F: favorites • t: trending • f: favorite • enter: details • L: logout • q: quit"
		}
	}
	return styles.FooterStyle.Render(help)
}

func (m Model) renderLogin() string {
	form := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Welcome to Marquee"),
		"",
		styles.SubtitleStyle.Render("Enter a name to start browsing."),
		"",
		m.loginInput.View(),
	)

	return lipgloss.Place(m.width, m.height-2,
		lipgloss.Center, lipgloss.Center,
		styles.PanelBorder.Render(form),
	)
}

func (m Model) renderSearch() string {
	var b strings.Builder

	b.WriteString(styles.AccentStyle.Render("Search") + "  " + m.searchInput.View() + "\n\n")

	// History suggestions while the input has focus and no results yet
	if m.searchInput.Focused() && len(m.catalogState.SearchHistory) > 0 {
		suggestions := catalog.RankHistory(m.searchInput.Value(), m.catalogState.SearchHistory)
		if len(suggestions) > 5 {
			suggestions = suggestions[:5]
		}
		if len(suggestions) > 0 {
			b.WriteString(styles.DimStyle.Render("recent: "+strings.Join(suggestions, ", ")) + "\n\n")
		}
	}

	if m.catalogState.SearchQuery != "" {
		b.WriteString(m.renderList(
			fmt.Sprintf("Results for %q", m.catalogState.SearchQuery),
			m.catalogState.SearchResults,
		))
	}

	return b.String()
}

func (m Model) renderList(title string, movies []domain.MovieSummary) string {
	var b strings.Builder
	b.WriteString("  " + styles.TitleStyle.Render(title) + "\n\n")

	if m.filterActive && m.State != StateSearch {
		b.WriteString("  " + styles.AccentStyle.Render("Filter") + " " + m.filterInput.View() + "\n\n")
	}

	if len(movies) == 0 {
		empty := "Nothing here yet."
		if m.filterActive {
			empty = "No titles match the filter."
		}
		b.WriteString("  " + styles.DimStyle.Render(empty) + "\n")
		return b.String()
	}

	start := 0
	if m.cursor >= maxVisibleRows {
		start = m.cursor - maxVisibleRows + 1
	}
	end := start + maxVisibleRows
	if end > len(movies) {
		end = len(movies)
	}

	for i := start; i < end; i++ {
		movie := movies[i]

		fav := styles.NonFavoriteChar
		if m.Favorites.IsFavorite(movie.ID) {
			fav = styles.AccentStyle.Render(styles.FavoriteChar)
		}

		line := fmt.Sprintf("%s %s", fav, movie.Title)
		meta := fmt.Sprintf("  %s · ★ %s", movie.ReleaseYear(), movie.FormattedRating())

		if i == m.cursor {
			b.WriteString("  " + styles.SelectedStyle.Render(line) + styles.DimStyle.Render(meta) + "\n")
		} else {
			b.WriteString("   " + line + styles.DimStyle.Render(meta) + "\n")
		}
	}

	if len(movies) > maxVisibleRows {
		b.WriteString("\n  " + styles.DimStyle.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(movies))) + "\n")
	}

	return b.String()
}

func (m Model) renderDetail() string {
	if m.detail == nil {
		return "  " + styles.DimStyle.Render("Nothing selected.")
	}
	return m.detailView.View()
}

// renderDetailContent builds the scrollable detail body
func (m Model) renderDetailContent() string {
	d := m.detail
	var b strings.Builder

	fav := ""
	if m.Favorites.IsFavorite(d.ID) {
		fav = " " + styles.AccentStyle.Render(styles.FavoriteChar)
	}

	b.WriteString(styles.TitleStyle.Render(d.Title) + fav + "\n")

	meta := make([]string, 0, 4)
	if y := d.ReleaseYear(); y != "" {
		meta = append(meta, y)
	}
	if r := d.FormattedRuntime(); r != "" {
		meta = append(meta, r)
	}
	meta = append(meta, "★ "+d.FormattedRating())
	if g := d.GenreNames(); g != "" {
		meta = append(meta, g)
	}
	b.WriteString(styles.SubtitleStyle.Render(strings.Join(meta, " · ")) + "\n\n")

	if d.Overview != "" {
		b.WriteString(d.Overview + "\n\n")
	}

	if d.HasTrailer() {
		b.WriteString(styles.AccentStyle.Render("Trailer: ") + d.TrailerURL() + "\n\n")
	}

	if len(d.Cast) > 0 {
		b.WriteString(styles.TitleStyle.Render("Cast") + "\n")
		limit := len(d.Cast)
		if limit > 12 {
			limit = 12
		}
		for _, member := range d.Cast[:limit] {
			line := "  " + member.Name
			if member.Character != "" {
				line += styles.DimStyle.Render(" as "+member.Character)
			}
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}
