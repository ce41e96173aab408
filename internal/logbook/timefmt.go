package logbook

import (
	"fmt"
	"strings"
	"time"
)

// TimeFormat selects how record timestamps are rendered.
type TimeFormat int

const (
	TimeUTC TimeFormat = iota
	TimeLocal
	TimeHide
)

var timeFormatNames = [...]string{"utc", "local", "hide"}

func (f TimeFormat) String() string {
	if f >= TimeUTC && f <= TimeHide {
		return timeFormatNames[f]
	}
	return fmt.Sprintf("TimeFormat(%d)", int(f))
}

// Next cycles UTC -> Local -> Hide -> UTC.
func (f TimeFormat) Next() TimeFormat {
	return TimeFormat((int(f) + 1) % len(timeFormatNames))
}

func (f TimeFormat) MarshalText() ([]byte, error) {
	if f < TimeUTC || f > TimeHide {
		return nil, fmt.Errorf("invalid time format %d", int(f))
	}
	return []byte(timeFormatNames[f]), nil
}

func (f *TimeFormat) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "utc":
		*f = TimeUTC
	case "local", "localtime":
		*f = TimeLocal
	case "hide", "hidden":
		*f = TimeHide
	default:
		return fmt.Errorf("unknown time format %q", string(text))
	}
	return nil
}

// TimePrecision selects whole seconds or milliseconds.
type TimePrecision int

const (
	Seconds TimePrecision = iota
	Milliseconds
)

func (p TimePrecision) String() string {
	switch p {
	case Seconds:
		return "seconds"
	case Milliseconds:
		return "milliseconds"
	default:
		return fmt.Sprintf("TimePrecision(%d)", int(p))
	}
}

func (p TimePrecision) MarshalText() ([]byte, error) {
	if p != Seconds && p != Milliseconds {
		return nil, fmt.Errorf("invalid time precision %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *TimePrecision) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "seconds", "s":
		*p = Seconds
	case "milliseconds", "ms":
		*p = Milliseconds
	default:
		return fmt.Errorf("unknown time precision %q", string(text))
	}
	return nil
}

const (
	utcSecondsLayout   = "2006-01-02T15:04:05Z07:00"
	utcMillisLayout    = "2006-01-02T15:04:05.000Z07:00"
	localSecondsLayout = "15:04:05"
	localMillisLayout  = "15:04:05.000"
)

// formatTime renders t followed by a single space, or "" when hidden.
func formatTime(t time.Time, format TimeFormat, precision TimePrecision) string {
	var out string
	switch format {
	case TimeHide:
		return ""
	case TimeUTC:
		layout := utcSecondsLayout
		if precision == Milliseconds {
			layout = utcMillisLayout
		}
		out = t.UTC().Format(layout)
	default:
		layout := localSecondsLayout
		if precision == Milliseconds {
			layout = localMillisLayout
		}
		out = t.Local().Format(layout)
	}
	return out + " "
}

// Next switches between seconds and milliseconds.
func (p TimePrecision) Next() TimePrecision {
	if p == Milliseconds {
		return Seconds
	}
	return Milliseconds
}
