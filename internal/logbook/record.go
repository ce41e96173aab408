package logbook

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// truncationMarker replaces the tail of an over-long message.
const truncationMarker = "..."

// Record is a single log entry. Records are never modified once stored.
type Record struct {
	Timestamp  time.Time `toml:"timestamp"`
	Level      Severity  `toml:"level"`
	Categories []string  `toml:"categories"`
	Message    string    `toml:"message"`
}

// NewRecord builds a record stamped with the current time. Newlines are
// removed from the message; truncation is left to the Logger that stores it.
func NewRecord(level Severity, categories []string, message string) Record {
	return newRecordAt(time.Now(), level, categories, message)
}

func newRecordAt(ts time.Time, level Severity, categories []string, message string) Record {
	return Record{
		Timestamp:  ts,
		Level:      level.clamp(),
		Categories: cloneStrings(categories),
		Message:    stripNewlines(message),
	}
}

// Category is a plain category name usable wherever a fmt.Stringer is.
type Category string

func (c Category) String() string { return string(c) }

// Categories converts category values to their display names, keeping order
// and duplicates. Strings and fmt.Stringers are used as is; anything else is
// rendered with fmt.Sprint.
func Categories(values ...any) []string {
	if len(values) == 0 {
		return nil
	}
	names := make([]string, len(values))
	for i, v := range values {
		switch v := v.(type) {
		case string:
			names[i] = v
		case fmt.Stringer:
			names[i] = v.String()
		default:
			names[i] = fmt.Sprint(v)
		}
	}
	return names
}

func stripNewlines(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	return strings.ReplaceAll(s, "\n", "")
}

// truncateMessage caps msg at limit runes, the last three of which become
// "..." when truncation happens. A limit below three keeps only the marker.
func truncateMessage(msg string, limit int) string {
	if utf8.RuneCountInString(msg) <= limit {
		return msg
	}
	keep := max(limit-len(truncationMarker), 0)
	runes := []rune(msg)
	return string(runes[:keep]) + truncationMarker
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	dup := make([]string, len(values))
	copy(dup, values)
	return dup
}
