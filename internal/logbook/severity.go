package logbook

import (
	"fmt"
	"strings"
)

// Severity is the level of a log record. Levels are totally ordered:
// Debug < Info < Warn < Error.
type Severity int

const (
	Debug Severity = iota
	Info
	Warn
	Error
)

// DefaultSeverity is the level used when none is specified.
const DefaultSeverity = Info

const levelCount = int(Error) + 1

var severityNames = [levelCount]string{"DEBUG", "INFO", "WARN", "ERROR"}

// String returns the upper-case tag shown in rendered lines.
func (s Severity) String() string {
	if s.valid() {
		return severityNames[s]
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

func (s Severity) valid() bool {
	return s >= Debug && s <= Error
}

// clamp forces out-of-range values onto the nearest real level.
func (s Severity) clamp() Severity {
	switch {
	case s < Debug:
		return Debug
	case s > Error:
		return Error
	default:
		return s
	}
}

// Next returns the following level, wrapping from Error back to Debug.
func (s Severity) Next() Severity {
	return Severity((int(s.clamp()) + 1) % levelCount)
}

// ParseSeverity parses a level name case-insensitively. "WARNING" is
// accepted as an alias for Warn.
func ParseSeverity(name string) (Severity, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return Debug, true
	case "INFO":
		return Info, true
	case "WARN", "WARNING":
		return Warn, true
	case "ERROR":
		return Error, true
	default:
		return DefaultSeverity, false
	}
}

// Severities returns every level, most severe first.
func Severities() []Severity {
	return []Severity{Error, Warn, Info, Debug}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(severityNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	level, ok := ParseSeverity(string(text))
	if !ok {
		return fmt.Errorf("unknown severity %q", string(text))
	}
	*s = level
	return nil
}
