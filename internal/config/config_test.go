package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("Load(missing) = %#v, want %#v", cfg, Default())
	}
	if cfg.DemoInterval != 750*time.Millisecond {
		t.Fatalf("DemoInterval = %v, want 750ms", cfg.DemoInterval)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "logbook")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("tail_lines = 12\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TailLines != 12 {
		t.Fatalf("TailLines = %d, want 12", cfg.TailLines)
	}
}

func TestLoad_ParsesConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
max_message_length = 500
max_records_per_level = 100
inbox_limit = 50
tail_lines = 20
sources = ["  ~/logs/app.log  ", "", "/var/log/syslog"]
demo = true
demo_interval = "2s"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MaxMessageLength != 500 || cfg.MaxRecordsPerLevel != 100 || cfg.InboxLimit != 50 || cfg.TailLines != 20 {
		t.Fatalf("limits = %d/%d/%d/%d, want 500/100/50/20", cfg.MaxMessageLength, cfg.MaxRecordsPerLevel, cfg.InboxLimit, cfg.TailLines)
	}
	if !cfg.Demo || cfg.DemoInterval != 2*time.Second {
		t.Fatalf("demo = %v/%v, want true/2s", cfg.Demo, cfg.DemoInterval)
	}
	if len(cfg.Sources) != 2 {
		t.Fatalf("Sources = %v, want 2 entries", cfg.Sources)
	}
	if cfg.Sources[0] != filepath.Join(home, "logs", "app.log") {
		t.Fatalf("Sources[0] = %q, want it under HOME %q", cfg.Sources[0], home)
	}
	if cfg.Sources[1] != "/var/log/syslog" {
		t.Fatalf("Sources[1] = %q, want %q", cfg.Sources[1], "/var/log/syslog")
	}
}

func TestLoad_NonPositiveValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
max_message_length = 0
max_records_per_level = -3
demo_interval = "-1s"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MaxMessageLength != defaultMaxMessageLength || cfg.MaxRecordsPerLevel != defaultMaxRecordsPerLevel {
		t.Fatalf("limits = %d/%d, want defaults", cfg.MaxMessageLength, cfg.MaxRecordsPerLevel)
	}
	if cfg.DemoInterval != defaultDemoInterval {
		t.Fatalf("DemoInterval = %v, want %v", cfg.DemoInterval, defaultDemoInterval)
	}
}

func TestLoad_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "tail_lines = = 3"},
		{"bad duration", `demo_interval = "soon"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load returned nil error, want parse error")
			}
			if !strings.Contains(err.Error(), "parse config") {
				t.Fatalf("error = %q, want it to mention parse config", err)
			}
		})
	}
}

func TestAddSourcesSkipsDuplicates(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	cfg.AddSources("~/a.log", "", filepath.Join(home, "a.log"), "/tmp/b.log")
	want := []string{filepath.Join(home, "a.log"), "/tmp/b.log"}
	if !reflect.DeepEqual(cfg.Sources, want) {
		t.Fatalf("Sources = %v, want %v", cfg.Sources, want)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/x")
	if err != nil || got != filepath.Join(home, "x") {
		t.Fatalf("expandPath(~/x) = %q, %v; want %q", got, err, filepath.Join(home, "x"))
	}
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath(blank) error = nil, want error")
	}
}
