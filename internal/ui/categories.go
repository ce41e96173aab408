package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// openCategories shows the category panel in place of the records.
func (m *Model) openCategories() {
	m.mode = modeCategories
	m.clampCategoryCursor()
}

func (m *Model) clampCategoryCursor() {
	n := len(m.lb.AllCategories())
	m.categoryCursor = min(m.categoryCursor, n-1)
	m.categoryCursor = max(m.categoryCursor, 0)
}

// handleCategoriesKey processes keyboard input for the category panel.
func (m *Model) handleCategoriesKey(msg tea.KeyMsg) tea.Cmd {
	m.notice = ""
	names := m.lb.AllCategories()

	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Categories):
		m.mode = modeLogs
		m.refreshView()
		return nil

	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Up):
		m.categoryCursor--

	case key.Matches(msg, m.keys.Down):
		m.categoryCursor++

	case key.Matches(msg, m.keys.Top):
		m.categoryCursor = 0

	case key.Matches(msg, m.keys.Bottom):
		m.categoryCursor = len(names) - 1

	case key.Matches(msg, m.keys.Toggle):
		if m.categoryCursor < len(names) {
			m.lb.ToggleCategory(names[m.categoryCursor])
			m.applyDisplayChange()
		}

	case key.Matches(msg, m.keys.ShowAll):
		m.lb.ShowAllCategories()
		m.applyDisplayChange()

	case key.Matches(msg, m.keys.HideAll):
		m.lb.HideAllCategories()
		m.applyDisplayChange()

	case key.Matches(msg, m.keys.HideGlob):
		return m.openGlob(true)

	case key.Matches(msg, m.keys.ShowGlob):
		return m.openGlob(false)
	}

	m.clampCategoryCursor()
	return nil
}

// openGlob focuses the pattern field used to hide or show categories in bulk.
func (m *Model) openGlob(hide bool) tea.Cmd {
	m.mode = modeGlob
	m.globHide = hide
	m.globInput.SetValue("")
	return m.globInput.Focus()
}

// handleGlobKey applies the typed pattern on Enter and returns to the panel.
func (m *Model) handleGlobKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.applyGlob(strings.TrimSpace(m.globInput.Value()))
		m.mode = modeCategories
		m.globInput.Blur()
		return nil

	case key.Matches(msg, m.keys.Escape):
		m.mode = modeCategories
		m.globInput.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.globInput, cmd = m.globInput.Update(msg)
	return cmd
}

func (m *Model) applyGlob(pattern string) {
	if pattern == "" {
		return
	}

	apply, verb := m.lb.ShowCategoriesMatching, "Showing"
	if m.globHide {
		apply, verb = m.lb.HideCategoriesMatching, "Hiding"
	}

	n, err := apply(pattern)
	if err != nil {
		m.notice = err.Error()
		return
	}
	m.notice = fmt.Sprintf("%s %s matching %s", verb, plural(n, "category", "categories"), pattern)
	m.applyDisplayChange()
}

// categoriesTitle returns the plain text title for the category panel.
func (m Model) categoriesTitle() string {
	return fmt.Sprintf("Categories (%d hidden of %d)",
		len(m.lb.HiddenCategories()), len(m.lb.AllCategories()))
}

// renderCategories lists every known category with its record count, keeping
// the cursor row in view.
func (m Model) renderCategories(height int) string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()
	width := max(m.width-4, 1)

	names := m.lb.AllCategories()
	if len(names) == 0 {
		return bg.FillLine(bg.Render("No categories yet", styles.MutedText), width)
	}

	start := 0
	if height > 0 && m.categoryCursor >= height {
		start = m.categoryCursor - height + 1
	}
	end := len(names)
	if height > 0 {
		end = min(end, start+height)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		name := names[i]
		mark, style := "[x]", styles.Text
		if m.lb.IsHidden(name) {
			mark, style = "[ ]", styles.MutedText
		}
		count := fmt.Sprintf("%6d", m.lb.CategoryCount(name))

		if i == m.categoryCursor {
			line := fmt.Sprintf("%s %s %s", mark, count, name)
			lines = append(lines, styles.Selected.Width(width).Render(truncate(line, width)))
			continue
		}
		line := bg.Render(mark, styles.AccentText) + bg.Space() +
			bg.Render(count, styles.FaintText) + bg.Space() +
			bg.Render(name, style)
		lines = append(lines, bg.FillLine(line, width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderGlobBar(styles Styles, bg BgStyle) string {
	label := "show glob:"
	if m.globHide {
		label = "hide glob:"
	}
	return bg.Render(label, styles.AccentText) + bg.Space() + m.globInput.View()
}
