package ui

import (
	"fmt"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/logbook/internal/logbook"
)

func TestGetThemeFallsBack(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got)
		}
	}
	if got := GetTheme("missing").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(missing).Name = %q, want Nightfox", got)
	}
}

func TestNextThemeCycles(t *testing.T) {
	names := ThemeNames()
	name := names[0]
	for i := range names {
		next := NextTheme(name)
		if want := names[(i+1)%len(names)]; next != want {
			t.Fatalf("NextTheme(%q) = %q, want %q", name, next, want)
		}
		name = next
	}
	if got := NextTheme("unknown"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
}

func TestLevelStyleUsesPalette(t *testing.T) {
	theme := GetTheme("Nightfox")
	styles := theme.Styles()

	tests := []struct {
		level logbook.Severity
		color string
	}{
		{logbook.Debug, theme.Info},
		{logbook.Info, theme.Success},
		{logbook.Warn, theme.Warning},
		{logbook.Error, theme.Danger},
	}
	for _, tt := range tests {
		fg := styles.LevelStyle(tt.level).GetForeground()
		if got := fmt.Sprint(fg); got != tt.color {
			t.Fatalf("LevelStyle(%v) foreground = %q, want %q", tt.level, got, tt.color)
		}
	}
}

func TestFillLineWidth(t *testing.T) {
	bg := NewBgStyle("#000000")
	tests := []struct {
		name    string
		content string
		width   int
	}{
		{name: "pads short", content: "abc", width: 10},
		{name: "cuts long", content: "abcdefghijklmnop", width: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bg.FillLine(tt.content, tt.width)
			if w := ansi.StringWidth(got); w != tt.width {
				t.Fatalf("FillLine(%q, %d) width = %d", tt.content, tt.width, w)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 6, "hello…"},
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}
