package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/logbook/internal/logbook"
	"github.com/five82/logbook/internal/prefs"
	"github.com/five82/logbook/internal/state"
)

// mode is the component receiving key presses.
type mode int

const (
	modeLogs mode = iota
	modeSearch
	modeInput
	modeCategories
	modeGlob
)

const defaultTick = 200 * time.Millisecond

// Options configures the UI.
type Options struct {
	Context   context.Context
	Logger    *logbook.Logger
	Inbox     *state.Inbox
	Sources   *state.Store
	Diag      *slog.Logger
	Tick      time.Duration
	ThemeName string
	PrefsPath string // empty uses default ~/.config/logbook/prefs.toml
}

// Model is the root application state for Bubble Tea. It owns the Logger:
// no other goroutine touches it while the program runs.
type Model struct {
	// Configuration
	ctx       context.Context
	lb        *logbook.Logger
	inbox     *state.Inbox
	sources   *state.Store
	diag      *slog.Logger
	prefsPath string
	tick      time.Duration
	keys      keyMap
	copyText  func(string) error

	// UI state
	theme    Theme
	mode     mode
	width    int
	height   int
	ready    bool
	showHelp bool
	notice   string

	// Log view
	viewport viewport.Model
	follow   bool
	visible  int

	// Text entry
	searchInput  textinput.Model
	searchBefore string
	entryInput   textinput.Model
	globInput    textinput.Model
	globHide     bool

	// Category panel
	categoryCursor int

	sourceStatus []state.SourceStatus
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	lb := opts.Logger
	if lb == nil {
		lb = logbook.New()
	}

	inbox := opts.Inbox
	if inbox == nil {
		inbox = state.NewInbox(0)
	}

	diag := opts.Diag
	if diag == nil {
		diag = slog.New(slog.DiscardHandler)
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = defaultTick
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:         ctx,
		lb:          lb,
		inbox:       inbox,
		sources:     opts.Sources,
		diag:        diag,
		prefsPath:   prefsPath,
		tick:        tick,
		keys:        DefaultKeyMap(),
		copyText:    clipboard.WriteAll,
		theme:       GetTheme(themeName),
		follow:      true,
		searchInput: newTextInput("Search records...", logbook.MaxSearchLength),
		entryInput:  newTextInput("Type a message...", 0),
		globInput:   newTextInput("Glob, e.g. net.*", 256),
	}
}

func newTextInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	return ti
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.refreshView()
		return m, nil

	case tickMsg:
		return m.handleTick()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleTick moves pending records into the Logger and refreshes the view.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inbox.DrainInto(m.lb) > 0 {
		m.refreshView()
	}
	if m.sources != nil {
		m.sourceStatus = m.sources.Snapshot()
	}
	return m, tickCmd(m.tick)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeSearch:
		cmd = m.handleSearchKey(msg)
	case modeInput:
		cmd = m.handleInputKey(msg)
	case modeCategories:
		cmd = m.handleCategoriesKey(msg)
	case modeGlob:
		cmd = m.handleGlobKey(msg)
	default:
		cmd = m.handleLogsKey(msg)
	}
	return m, cmd
}

// savePrefs persists the current display preferences.
func (m *Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, prefs.FromLogger(m.theme.Name, m.lb)); err != nil {
		m.diag.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// copyRecords places the visible records on the clipboard.
func (m *Model) copyRecords() {
	text := m.lb.CopyText()
	if text == "" {
		m.notice = "Nothing to copy"
		return
	}
	if err := m.copyText(text); err != nil {
		m.notice = "Copy failed"
		m.diag.Warn("copy to clipboard failed", "error", err)
		return
	}
	m.notice = plural(strings.Count(text, "\n"), "record", "records") + " copied"
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program. Cancelling opts.Context ends it
// without error.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
