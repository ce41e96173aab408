package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/logbook/internal/logbook"
)

// renderHeader renders the title bar with per-level record counts.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("logbook", styles.Logo)}

	for _, level := range logbook.Severities() {
		parts = append(parts,
			bg.Render(level.String()+":", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", m.lb.LevelRecords(level)), styles.LevelStyle(level)))
	}

	parts = append(parts,
		bg.Render("Categories:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.lb.AllCategories())), styles.Text))

	if m.width >= 100 {
		parts = append(parts,
			bg.Render("Time:", styles.MutedText)+bg.Space()+
				bg.Render(m.lb.TimeFormat.String()+"/"+m.lb.TimePrecision.String(), styles.Text))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Padding(0, 1).
		Width(m.width).
		Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the command hints for the focused component.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.mode {
	case modeSearch:
		commands = []cmd{
			{"Enter", "Apply"},
			{"Esc", "Cancel"},
			{"ctrl+r", "Regex"},
			{"ctrl+s", "Case"},
		}
	case modeInput:
		commands = []cmd{
			{"Enter", "Send"},
			{"Esc", "Close"},
		}
	case modeGlob:
		commands = []cmd{
			{"Enter", "Apply"},
			{"Esc", "Back"},
		}
	case modeCategories:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"Space", "Toggle"},
			{"a", "Show all"},
			{"A", "Hide all"},
			{"h", "Hide glob"},
			{"s", "Show glob"},
			{"Esc", "Records"},
			{"?", "More"},
		}
	default:
		followLabel := "Pause"
		if !m.follow {
			followLabel = "Follow"
		}
		commands = []cmd{
			{"Space", followLabel},
			{"/", "Search"},
			{"v", m.lb.MinDisplayLevel.String() + "+"},
			{"C", "Categories"},
			{"i", "Write"},
			{"y", "Copy"},
			{"c", "Clear"},
			{"?", "More"},
		}
	}

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Show active search pattern
	if m.mode == modeLogs && m.lb.SearchTerm != "" {
		segments = append(segments,
			bg.Render("/"+truncate(m.lb.SearchTerm, 18), styles.AccentText))
	}

	// Add theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(0, 1).
		Width(m.width).
		Render(strings.Join(segments, bg.Spaces(2)))
}
