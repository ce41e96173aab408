package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the startup settings of the viewer.
type Config struct {
	MaxMessageLength   int
	MaxRecordsPerLevel int
	InboxLimit         int
	TailLines          int
	Sources            []string
	Demo               bool
	DemoInterval       time.Duration
}

const (
	defaultConfigPath         = "~/.config/logbook/config.toml"
	defaultMaxMessageLength   = 2000
	defaultMaxRecordsPerLevel = 2000
	defaultInboxLimit         = 10000
	defaultTailLines          = 400
	defaultDemoInterval       = 750 * time.Millisecond
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		MaxMessageLength:   defaultMaxMessageLength,
		MaxRecordsPerLevel: defaultMaxRecordsPerLevel,
		InboxLimit:         defaultInboxLimit,
		TailLines:          defaultTailLines,
		DemoInterval:       defaultDemoInterval,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		MaxMessageLength   int      `toml:"max_message_length"`
		MaxRecordsPerLevel int      `toml:"max_records_per_level"`
		InboxLimit         int      `toml:"inbox_limit"`
		TailLines          int      `toml:"tail_lines"`
		Sources            []string `toml:"sources"`
		Demo               bool     `toml:"demo"`
		DemoInterval       string   `toml:"demo_interval"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.MaxMessageLength = positiveOr(raw.MaxMessageLength, defaultMaxMessageLength)
	cfg.MaxRecordsPerLevel = positiveOr(raw.MaxRecordsPerLevel, defaultMaxRecordsPerLevel)
	cfg.InboxLimit = positiveOr(raw.InboxLimit, defaultInboxLimit)
	cfg.TailLines = positiveOr(raw.TailLines, defaultTailLines)
	cfg.Demo = raw.Demo

	if interval := strings.TrimSpace(raw.DemoInterval); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: demo_interval: %w", err)
		}
		if d > 0 {
			cfg.DemoInterval = d
		}
	}

	for _, src := range raw.Sources {
		if strings.TrimSpace(src) == "" {
			continue
		}
		cfg.Sources = append(cfg.Sources, mustExpand(src))
	}

	return cfg, nil
}

// AddSources appends paths given outside the config file, expanding each and
// skipping duplicates.
func (c *Config) AddSources(paths ...string) {
	seen := make(map[string]bool, len(c.Sources))
	for _, src := range c.Sources {
		seen[src] = true
	}
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		expanded := mustExpand(p)
		if seen[expanded] {
			continue
		}
		seen[expanded] = true
		c.Sources = append(c.Sources, expanded)
	}
}

func positiveOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
