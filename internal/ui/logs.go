package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/logbook/internal/logbook"
)

// refreshView sizes the viewport and re-renders the visible records.
func (m *Model) refreshView() {
	if !m.ready {
		return
	}

	// Box height = m.height - 3 (header, cmdbar, status bar below)
	// Box inner = box height - 2 (top and bottom borders) = m.height - 5
	width := max(m.width-4, 1)
	height := max(m.height-5, 1)
	if m.viewport.Width == 0 {
		m.viewport = viewport.New(width, height)
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.viewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.viewport.SetContent(m.renderLogContent())

	if m.follow {
		m.viewport.GotoBottom()
	}
}

// renderMain renders header, command bar, the focused box and the status line.
func (m Model) renderMain() string {
	contentHeight := m.height - 3

	var box string
	switch m.mode {
	case modeCategories, modeGlob:
		box = m.renderBox(m.categoriesTitle(), m.renderCategories(contentHeight-2), m.width, contentHeight)
	default:
		box = m.renderBox(m.logTitle(), m.viewport.View(), m.width, contentHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderCommandBar(),
		box,
		m.renderStatus(),
	)
}

// renderBox draws content inside a rounded border with title in the top edge.
func (m Model) renderBox(title, content string, width, height int) string {
	border := lipgloss.RoundedBorder()
	borderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.BorderFocus)).
		Background(lipgloss.Color(m.theme.FocusBg))
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Accent)).
		Background(lipgloss.Color(m.theme.FocusBg)).
		Bold(true)

	title = truncate(title, max(width-6, 0))
	fill := max(width-5-lipgloss.Width(title), 0)
	top := borderStyle.Render(border.TopLeft+border.Top+" ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat(border.Top, fill)+border.TopRight)

	body := lipgloss.NewStyle().
		Border(border, false, true, true, true).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		BorderBackground(lipgloss.Color(m.theme.FocusBg)).
		Background(lipgloss.Color(m.theme.FocusBg)).
		Padding(0, 1).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		MaxHeight(max(height-1, 0)).
		Render(content)

	return top + "\n" + body
}

// logTitle returns the plain text title for the log view.
func (m Model) logTitle() string {
	title := "Records"
	if m.filtersActive() {
		title += " (filtered)"
	}
	if !m.follow {
		title += " - paused"
	}
	return title
}

// filtersActive reports whether any gate can hide a record.
func (m Model) filtersActive() bool {
	return m.lb.MinDisplayLevel > logbook.Debug ||
		len(m.lb.HiddenCategories()) > 0 ||
		m.lb.SearchTerm != ""
}

// renderLogContent renders every visible record, one line each.
func (m *Model) renderLogContent() string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()
	width := m.viewport.Width

	records := m.lb.SortedRecords()
	m.visible = len(records)
	if len(records) == 0 {
		msg := "No records"
		if m.lb.TotalRecords() > 0 {
			msg = "No records match the current filters"
		}
		return bg.FillLine(bg.Render(msg, styles.MutedText), width)
	}

	pad := m.lb.TimePadding()
	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = bg.FillLine(m.renderRecord(rec, pad, styles, bg), width)
	}
	return strings.Join(lines, "\n")
}

// renderRecord colors the parts of one record. The plain text equals
// Logger.FormatRecord.
func (m *Model) renderRecord(rec logbook.Record, pad int, styles Styles, bg BgStyle) string {
	var b strings.Builder
	if pad > 0 {
		b.WriteString(bg.Render(fmt.Sprintf("%*s", pad, m.lb.FormatTime(rec.Timestamp)), styles.FaintText))
	}
	if m.lb.ShowLevel {
		b.WriteString(bg.Render("["+rec.Level.String()+"]", styles.LevelStyle(rec.Level)))
		b.WriteString(bg.Space())
	}
	if m.lb.ShowCategories {
		b.WriteString(bg.Render("["+strings.Join(rec.Categories, ",")+"]", styles.AccentText))
		b.WriteString(bg.Space())
	}
	b.WriteString(bg.Render(rec.Message, m.messageStyle(rec.Level, styles)))
	return b.String()
}

func (m *Model) messageStyle(level logbook.Severity, styles Styles) lipgloss.Style {
	switch level {
	case logbook.Error:
		return styles.DangerText
	case logbook.Warn:
		return styles.WarningText
	case logbook.Debug:
		return styles.MutedText
	default:
		return styles.Text
	}
}

// renderStatus renders the line below the box. Text entry modes replace it
// with their input field.
func (m Model) renderStatus() string {
	bg := NewBgStyle(m.theme.Background)
	styles := m.theme.Styles()

	var content string
	switch m.mode {
	case modeSearch:
		content = m.renderSearchBar(styles, bg)
	case modeInput:
		content = m.renderInputBar(styles, bg)
	case modeGlob:
		content = m.renderGlobBar(styles, bg)
	default:
		content = m.renderLogStatus(styles, bg)
	}
	return bg.FillLine(content, m.width)
}

// renderLogStatus summarizes counts, filters and source health.
func (m Model) renderLogStatus(styles Styles, bg BgStyle) string {
	if m.notice != "" {
		return bg.Render(m.notice, styles.AccentText)
	}

	follow := "off"
	if m.follow {
		follow = "on"
	}

	var parts []string
	parts = append(parts, bg.Render(
		fmt.Sprintf("%d of %d records auto-tail %s", m.visible, m.lb.TotalRecords(), follow),
		styles.FaintText))
	parts = append(parts, bg.Render("level≥"+m.lb.MinDisplayLevel.String(), styles.LevelStyle(m.lb.MinDisplayLevel)))

	if hidden := len(m.lb.HiddenCategories()); hidden > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("%d hidden", hidden), styles.MutedText))
	}
	if m.lb.SearchTerm != "" {
		style := styles.AccentText
		if !m.lb.SearchPatternValid() {
			style = styles.DangerText
		}
		parts = append(parts, bg.Render("/"+truncate(m.lb.SearchTerm, 24)+" "+m.searchFlags(), style))
	}
	if dropped := m.inbox.Dropped(); dropped > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("%d dropped", dropped), styles.WarningText))
	}
	for _, src := range m.sourceStatus {
		name := filepath.Base(src.Path)
		switch {
		case src.IsOffline():
			parts = append(parts, bg.Render(name+" offline", styles.DangerText))
		case src.LastError != nil:
			parts = append(parts, bg.Render(name+" retrying", styles.WarningText))
		default:
			parts = append(parts, bg.Render(fmt.Sprintf("%s %d lines", name, src.Lines), styles.MutedText))
		}
	}

	sep := bg.Space() + bg.Render("•", styles.FaintText) + bg.Space()
	return strings.Join(parts, sep)
}

// handleLogsKey processes keyboard input for the log view.
func (m *Model) handleLogsKey(msg tea.KeyMsg) tea.Cmd {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.refreshView()

	case key.Matches(msg, m.keys.ToggleFollow):
		m.follow = !m.follow
		if m.follow {
			m.viewport.GotoBottom()
		}

	case key.Matches(msg, m.keys.Clear):
		m.lb.Clear()
		m.refreshView()

	case key.Matches(msg, m.keys.Copy):
		m.copyRecords()

	case key.Matches(msg, m.keys.CycleLevel):
		m.lb.MinDisplayLevel = m.lb.MinDisplayLevel.Next()
		m.applyDisplayChange()

	case key.Matches(msg, m.keys.CycleTimeFormat):
		m.lb.TimeFormat = m.lb.TimeFormat.Next()
		m.applyDisplayChange()

	case key.Matches(msg, m.keys.TogglePrecision):
		m.lb.TimePrecision = m.lb.TimePrecision.Next()
		m.applyDisplayChange()

	case key.Matches(msg, m.keys.ToggleLevel):
		m.lb.ShowLevel = !m.lb.ShowLevel
		m.applyDisplayChange()

	case key.Matches(msg, m.keys.ToggleCategory):
		m.lb.ShowCategories = !m.lb.ShowCategories
		m.applyDisplayChange()

	case key.Matches(msg, m.keys.Input):
		return m.openInput()

	case key.Matches(msg, m.keys.Search):
		return m.openSearch()

	case key.Matches(msg, m.keys.Categories):
		m.openCategories()

	case key.Matches(msg, m.keys.Escape):
		if m.lb.SearchTerm != "" {
			m.lb.SetSearch("")
			m.applyDisplayChange()
		}

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		m.follow = false

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.follow = true

	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
		m.follow = m.viewport.AtBottom()

	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
		m.follow = false

	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
		m.follow = m.viewport.AtBottom()

	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
		m.follow = false

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
		m.follow = m.viewport.AtBottom()

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
		m.follow = false
	}

	return nil
}

// applyDisplayChange saves preferences and re-renders after a filter or
// format change.
func (m *Model) applyDisplayChange() {
	m.savePrefs()
	m.refreshView()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
