package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the viewer.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding
	Confirm    key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Records
	ToggleFollow key.Binding
	Clear        key.Binding
	Copy         key.Binding
	CycleLevel   key.Binding
	Input        key.Binding

	// Display
	CycleTimeFormat key.Binding
	TogglePrecision key.Binding
	ToggleLevel     key.Binding
	ToggleCategory  key.Binding

	// Search
	Search              key.Binding
	ToggleRegex         key.Binding
	ToggleCaseSensitive key.Binding

	// Category panel
	Categories key.Binding
	Toggle     key.Binding
	ShowAll    key.Binding
	HideAll    key.Binding
	HideGlob   key.Binding
	ShowGlob   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close / clear search"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		ToggleFollow: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Toggle follow mode"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Clear records"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy visible records"),
		),
		CycleLevel: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Cycle minimum level"),
		),
		Input: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Write a record"),
		),

		CycleTimeFormat: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Cycle time format"),
		),
		TogglePrecision: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Toggle milliseconds"),
		),
		ToggleLevel: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Toggle level tag"),
		),
		ToggleCategory: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "Toggle category tag"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		ToggleRegex: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "Toggle regex"),
		),
		ToggleCaseSensitive: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Toggle case sensitivity"),
		),

		Categories: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Category panel"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Show/hide category"),
		),
		ShowAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Select all"),
		),
		HideAll: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "Unselect all"),
		),
		HideGlob: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "Hide matching glob"),
		),
		ShowGlob: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Show matching glob"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings grouped the way the help overlay shows them.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.HalfPageDown, k.HalfPageUp, k.ToggleFollow},
		{k.Clear, k.Copy, k.CycleLevel, k.Input},
		{k.Search, k.ToggleRegex, k.ToggleCaseSensitive},
		{k.CycleTimeFormat, k.TogglePrecision, k.ToggleLevel, k.ToggleCategory},
		{k.Categories, k.Toggle, k.ShowAll, k.HideAll, k.HideGlob, k.ShowGlob},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
