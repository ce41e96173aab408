package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// openInput focuses the message entry field.
func (m *Model) openInput() tea.Cmd {
	m.mode = modeInput
	m.entryInput.SetValue("")
	return m.entryInput.Focus()
}

// handleInputKey logs each submitted line and keeps the field open until
// Escape.
func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if m.lb.Submit(m.entryInput.Value()) {
			m.follow = true
			m.refreshView()
		}
		m.entryInput.SetValue("")
		return nil

	case key.Matches(msg, m.keys.Escape):
		m.mode = modeLogs
		m.entryInput.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.entryInput, cmd = m.entryInput.Update(msg)
	return cmd
}

func (m Model) renderInputBar(styles Styles, bg BgStyle) string {
	label := m.lb.InputLevel.String() + " [" + strings.Join(m.lb.InputCategories(), ",") + "]"
	prompt := bg.Render(label, styles.LevelStyle(m.lb.InputLevel)) + bg.Space() + bg.Render(">", styles.AccentText) + bg.Space()
	if m.lb.InputPrefix != "" {
		prompt += bg.Render(truncate(m.lb.InputPrefix, 24), styles.MutedText)
	}
	return prompt + m.entryInput.View()
}
