package logbook

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
)

// CategoryKey is the slog attribute key whose value becomes a record
// category. The value may be a string or a []string.
const CategoryKey = "category"

// Sink receives records from a Handler. Implementations must be safe for
// concurrent use when the handler is shared across goroutines.
type Sink interface {
	Push(Record)
}

// Handler is a slog.Handler that turns log calls into records. Groups opened
// with WithGroup become categories; other attributes are appended to the
// message as key=value pairs.
type Handler struct {
	sink       Sink
	level      slog.Leveler
	categories []string
	attrs      []slog.Attr
}

// NewHandler returns a handler delivering records at or above level to sink.
// A nil level admits everything.
func NewHandler(sink Sink, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelDebug
	}
	return &Handler{sink: sink, level: level}
}

// SeverityFromSlog maps a slog level onto the four record levels.
func SeverityFromSlog(level slog.Level) Severity {
	switch {
	case level < slog.LevelInfo:
		return Debug
	case level < slog.LevelWarn:
		return Info
	case level < slog.LevelError:
		return Warn
	default:
		return Error
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	categories := slices.Clone(h.categories)
	var b strings.Builder
	b.WriteString(r.Message)

	appendAttr := func(a slog.Attr) {
		a.Value = a.Value.Resolve()
		if a.Key == CategoryKey {
			categories = append(categories, categoryValues(a.Value)...)
			return
		}
		if a.Equal(slog.Attr{}) {
			return
		}
		fmt.Fprintf(&b, " %s=%s", a.Key, a.Value.String())
	}
	for _, a := range h.attrs {
		appendAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(a)
		return true
	})

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	h.sink.Push(newRecordAt(ts, SeverityFromSlog(r.Level), categories, b.String()))
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	dup := *h
	dup.attrs = append(slices.Clone(h.attrs), attrs...)
	return &dup
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	dup := *h
	dup.categories = append(slices.Clone(h.categories), name)
	return &dup
}

func categoryValues(v slog.Value) []string {
	if v.Kind() == slog.KindAny {
		if names, ok := v.Any().([]string); ok {
			return slices.Clone(names)
		}
	}
	return []string{v.String()}
}
