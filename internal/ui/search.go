package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/logbook/internal/logbook"
)

// openSearch focuses the search field, starting from the current term.
func (m *Model) openSearch() tea.Cmd {
	m.mode = modeSearch
	m.searchBefore = m.lb.SearchTerm
	m.searchInput.SetValue(m.lb.SearchTerm)
	m.searchInput.CursorEnd()
	return m.searchInput.Focus()
}

// closeSearch returns to the log view, keeping whatever term is applied.
func (m *Model) closeSearch() {
	m.mode = modeLogs
	m.searchInput.Blur()
	m.savePrefs()
	m.refreshView()
}

// handleSearchKey filters live while the user types. Escape restores the
// term that was active when the field opened.
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.closeSearch()
		return nil

	case key.Matches(msg, m.keys.Escape):
		m.lb.SetSearch(m.searchBefore)
		m.closeSearch()
		return nil

	case key.Matches(msg, m.keys.ToggleRegex):
		m.lb.SetSearchOptions(!m.lb.SearchWithRegex, m.lb.SearchCaseSensitive)
		m.refreshView()
		return nil

	case key.Matches(msg, m.keys.ToggleCaseSensitive):
		m.lb.SetSearchOptions(m.lb.SearchWithRegex, !m.lb.SearchCaseSensitive)
		m.refreshView()
		return nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if term := logbook.SanitizeSearch(m.searchInput.Value()); term != m.lb.SearchTerm {
		m.lb.SetSearch(term)
		m.refreshView()
	}
	return cmd
}

// searchFlags describes the active search mode, e.g. "regex Aa".
func (m Model) searchFlags() string {
	flags := []string{"text"}
	if m.lb.SearchWithRegex {
		flags[0] = "regex"
	}
	if m.lb.SearchCaseSensitive {
		flags = append(flags, "Aa")
	} else {
		flags = append(flags, "aa")
	}
	return strings.Join(flags, " ")
}

func (m Model) renderSearchBar(styles Styles, bg BgStyle) string {
	parts := []string{
		bg.Render("/", styles.AccentText) + m.searchInput.View(),
		bg.Render("["+m.searchFlags()+"]", styles.MutedText),
	}
	if !m.lb.SearchPatternValid() {
		parts = append(parts, bg.Render("invalid pattern, showing all", styles.DangerText))
	}
	parts = append(parts,
		bg.Render("ctrl+r", styles.AccentText)+bg.Render(":regex", styles.FaintText),
		bg.Render("ctrl+s", styles.AccentText)+bg.Render(":case", styles.FaintText),
	)
	return bg.Join(parts, "  ")
}
