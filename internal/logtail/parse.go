package logtail

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/five82/logbook/internal/logbook"
)

var (
	timestampRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}:\d{2}(?:\.\d+)?)\s+`)
	levelRe     = regexp.MustCompile(`^(DEBUG|INFO|WARN|WARNING|ERROR)\b\s*`)
	componentRe = regexp.MustCompile(`^\[([^\]]+)\]\s*`)
	separatorRe = regexp.MustCompile(`^[–-]\s+`)
)

const timestampLayout = "2006-01-02 15:04:05"

// SourceCategory returns the category used for lines of path that carry no
// [component] tag: the file name without its extension.
func SourceCategory(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// ParseLine turns a line of the form
//
//	2025-10-08 21:01:05 INFO [encoder] – starting encoding
//
// into a record. Every part but the message is optional: a missing timestamp
// becomes now, a missing level INFO, and a missing component fallback.
func ParseLine(line, fallback string, now time.Time) logbook.Record {
	rec := logbook.Record{Timestamp: now, Level: logbook.DefaultSeverity}
	rest := strings.TrimSpace(line)

	if m := timestampRe.FindStringSubmatch(rest); m != nil {
		stamp := strings.Replace(m[1], "T", " ", 1)
		if ts, err := time.ParseInLocation(timestampLayout, stamp, time.Local); err == nil {
			rec.Timestamp = ts
		}
		rest = rest[len(m[0]):]
	}
	if m := levelRe.FindStringSubmatch(rest); m != nil {
		if level, ok := logbook.ParseSeverity(m[1]); ok {
			rec.Level = level
		}
		rest = rest[len(m[0]):]
	}
	if m := componentRe.FindStringSubmatch(rest); m != nil {
		rec.Categories = []string{m[1]}
		rest = rest[len(m[0]):]
	} else if fallback != "" {
		rec.Categories = []string{fallback}
	}
	rest = separatorRe.ReplaceAllString(rest, "")
	rec.Message = strings.TrimSpace(rest)
	return rec
}

// ParseLines parses every non-blank line.
func ParseLines(lines []string, fallback string, now time.Time) []logbook.Record {
	out := make([]logbook.Record, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, ParseLine(line, fallback, now))
	}
	return out
}
