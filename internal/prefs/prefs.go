// Package prefs persists display preferences between runs.
// Preferences are stored in ~/.config/logbook/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/logbook/internal/logbook"
)

// Prefs holds the viewer's display preferences.
type Prefs struct {
	Theme               string                `toml:"theme"`
	MinLevel            logbook.Severity      `toml:"min_level"`
	TimeFormat          logbook.TimeFormat    `toml:"time_format"`
	TimePrecision       logbook.TimePrecision `toml:"time_precision"`
	ShowLevel           bool                  `toml:"show_level"`
	ShowCategories      bool                  `toml:"show_categories"`
	HiddenCategories    []string              `toml:"hidden_categories,omitempty"`
	SearchTerm          string                `toml:"search_term"`
	SearchRegex         bool                  `toml:"search_regex"`
	SearchCaseSensitive bool                  `toml:"search_case_sensitive"`
}

const (
	defaultPrefsPath = "~/.config/logbook/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default returns the preferences of a fresh logbook.Logger.
func Default() Prefs {
	return FromLogger(defaultTheme, logbook.New())
}

// Load reads preferences from the given path. A missing, unreadable or
// malformed file yields the defaults, so a broken preferences file never
// stops the viewer from starting.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default()
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return Default()
	}

	prefs := Default()
	if err := toml.Unmarshal(data, &prefs); err != nil {
		return Default()
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}

	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

// FromLogger captures the display preferences of l.
func FromLogger(theme string, l *logbook.Logger) Prefs {
	return Prefs{
		Theme:               theme,
		MinLevel:            l.MinDisplayLevel,
		TimeFormat:          l.TimeFormat,
		TimePrecision:       l.TimePrecision,
		ShowLevel:           l.ShowLevel,
		ShowCategories:      l.ShowCategories,
		HiddenCategories:    l.HiddenCategories(),
		SearchTerm:          l.SearchTerm,
		SearchRegex:         l.SearchWithRegex,
		SearchCaseSensitive: l.SearchCaseSensitive,
	}
}

// Apply copies the preferences onto l and recompiles its search pattern.
func (p Prefs) Apply(l *logbook.Logger) {
	l.MinDisplayLevel = p.MinLevel
	l.TimeFormat = p.TimeFormat
	l.TimePrecision = p.TimePrecision
	l.ShowLevel = p.ShowLevel
	l.ShowCategories = p.ShowCategories
	l.ShowAllCategories()
	for _, name := range p.HiddenCategories {
		l.HideCategory(name)
	}
	l.SearchWithRegex = p.SearchRegex
	l.SearchCaseSensitive = p.SearchCaseSensitive
	l.SetSearch(p.SearchTerm)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
