package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/logbook/internal/config"
	"github.com/five82/logbook/internal/logbook"
	"github.com/five82/logbook/internal/prefs"
	"github.com/five82/logbook/internal/state"
	"github.com/five82/logbook/internal/ui"
)

// Options configure the logbook viewer.
type Options struct {
	ConfigPath string
	PrefsPath  string   // empty uses default ~/.config/logbook/prefs.toml
	Sources    []string // added to the sources listed in the config file
	Demo       bool     // forces the demo emitter on
}

// Run boots the viewer until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.AddSources(opts.Sources...)
	if opts.Demo {
		cfg.Demo = true
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	lb := NewLogger(cfg, userPrefs)
	inbox := state.NewInbox(cfg.InboxLimit)
	sources := &state.Store{}
	diag := slog.New(logbook.NewHandler(inbox, slog.LevelDebug)).With(logbook.CategoryKey, "logbook")

	for _, path := range cfg.Sources {
		offset, err := SeedSource(lb, path, cfg.TailLines, sources)
		if err != nil {
			diag.Warn("seed source failed", "path", path, "error", err)
		}
		StartFollower(ctx, path, offset, inbox, sources, diag)
	}
	if cfg.Demo {
		StartEmitter(ctx, inbox, cfg.DemoInterval)
	}
	diag.Info("viewer started", "sources", len(cfg.Sources), "demo", cfg.Demo)

	uiOpts := ui.Options{
		Context:   ctx,
		Logger:    lb,
		Inbox:     inbox,
		Sources:   sources,
		Diag:      diag,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// NewLogger builds the Logger from config limits and saved preferences. In
// demo mode the input area is set up the way the demo records expect.
func NewLogger(cfg config.Config, p prefs.Prefs) *logbook.Logger {
	lb := logbook.New()
	lb.MaxMessageLength = cfg.MaxMessageLength
	lb.MaxRecordsPerLevel = cfg.MaxRecordsPerLevel
	p.Apply(lb)
	if cfg.Demo {
		lb.InputPrefix = "User: "
		lb.SetInputCategories(logbook.Categories(demoInput, demoDialogue))
	}
	return lb
}
