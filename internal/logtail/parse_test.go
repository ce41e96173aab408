package logtail

import (
	"slices"
	"testing"
	"time"

	"github.com/five82/logbook/internal/logbook"
)

func TestParseLine(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	stamp := time.Date(2025, 10, 8, 21, 1, 5, 0, time.Local)

	tests := []struct {
		name       string
		input      string
		wantTime   time.Time
		wantLevel  logbook.Severity
		wantCats   []string
		wantMessge string
	}{
		{
			name:       "full line",
			input:      "2025-10-08 21:01:05 INFO [encoder] – starting encoding",
			wantTime:   stamp,
			wantLevel:  logbook.Info,
			wantCats:   []string{"encoder"},
			wantMessge: "starting encoding",
		},
		{
			name:       "error without component",
			input:      "2025-10-08 21:01:05 ERROR Item #5 (encoder) – encoding failed",
			wantTime:   stamp,
			wantLevel:  logbook.Error,
			wantCats:   []string{"daemon"},
			wantMessge: "Item #5 (encoder) – encoding failed",
		},
		{
			name:       "iso timestamp with fraction",
			input:      "2025-10-08T21:01:05.250 WARNING [net] slow",
			wantTime:   stamp.Add(250 * time.Millisecond),
			wantLevel:  logbook.Warn,
			wantCats:   []string{"net"},
			wantMessge: "slow",
		},
		{
			name:       "plain text",
			input:      "    - Progress: 50%",
			wantTime:   now,
			wantLevel:  logbook.Info,
			wantCats:   []string{"daemon"},
			wantMessge: "Progress: 50%",
		},
		{
			name:       "debug without separator",
			input:      "DEBUG [cache] hit ratio 0.9",
			wantTime:   now,
			wantLevel:  logbook.Debug,
			wantCats:   []string{"cache"},
			wantMessge: "hit ratio 0.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ParseLine(tt.input, "daemon", now)
			if !rec.Timestamp.Equal(tt.wantTime) {
				t.Fatalf("Timestamp = %v, want %v", rec.Timestamp, tt.wantTime)
			}
			if rec.Level != tt.wantLevel {
				t.Fatalf("Level = %v, want %v", rec.Level, tt.wantLevel)
			}
			if !slices.Equal(rec.Categories, tt.wantCats) {
				t.Fatalf("Categories = %v, want %v", rec.Categories, tt.wantCats)
			}
			if rec.Message != tt.wantMessge {
				t.Fatalf("Message = %q, want %q", rec.Message, tt.wantMessge)
			}
		})
	}
}

func TestParseLinesSkipsBlank(t *testing.T) {
	recs := ParseLines([]string{"a", "", "   ", "b"}, "", time.Now())
	if len(recs) != 2 || recs[0].Message != "a" || recs[1].Message != "b" {
		t.Fatalf("ParseLines() = %#v, want a, b", recs)
	}
	if recs[0].Categories != nil {
		t.Fatalf("Categories = %v, want nil without fallback", recs[0].Categories)
	}
}

func TestSourceCategory(t *testing.T) {
	tests := map[string]string{
		"/var/log/daemon.log": "daemon",
		"daemon":              "daemon",
		"/tmp/.hidden":        ".hidden",
		"archive.tar.gz":      "archive.tar",
	}
	for in, want := range tests {
		if got := SourceCategory(in); got != want {
			t.Fatalf("SourceCategory(%q) = %q, want %q", in, got, want)
		}
	}
}
