package logbook

import (
	"log/slog"
	"slices"
	"testing"
)

type recordSink struct {
	records []Record
}

func (s *recordSink) Push(rec Record) { s.records = append(s.records, rec) }

func TestHandlerCategoriesAndAttrs(t *testing.T) {
	sink := &recordSink{}
	logger := slog.New(NewHandler(sink, nil))

	logger.With(CategoryKey, "net").WithGroup("conn").Warn("dropped", "peer", "a")
	logger.Info("tagged", CategoryKey, []string{"x", "y"})
	logger.Debug("plain")

	if len(sink.records) != 3 {
		t.Fatalf("records = %d, want 3", len(sink.records))
	}
	first := sink.records[0]
	if first.Level != Warn || first.Message != "dropped peer=a" || !slices.Equal(first.Categories, []string{"conn", "net"}) {
		t.Fatalf("first record = %#v", first)
	}
	if got := sink.records[1].Categories; !slices.Equal(got, []string{"x", "y"}) {
		t.Fatalf("second categories = %v, want [x y]", got)
	}
	if sink.records[2].Level != Debug || len(sink.records[2].Categories) != 0 {
		t.Fatalf("third record = %#v", sink.records[2])
	}
	if sink.records[0].Timestamp.IsZero() {
		t.Fatalf("timestamp not set")
	}
}

func TestHandlerLevelThreshold(t *testing.T) {
	sink := &recordSink{}
	logger := slog.New(NewHandler(sink, slog.LevelWarn))
	logger.Info("skipped")
	logger.Error("kept")
	if got := messages(sink.records); !slices.Equal(got, []string{"kept"}) {
		t.Fatalf("messages = %v, want [kept]", got)
	}
}

func TestSeverityFromSlog(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want Severity
	}{
		{slog.LevelDebug - 4, Debug},
		{slog.LevelDebug, Debug},
		{slog.LevelInfo, Info},
		{slog.LevelInfo + 2, Info},
		{slog.LevelWarn, Warn},
		{slog.LevelError, Error},
		{slog.LevelError + 4, Error},
	}
	for _, tt := range tests {
		if got := SeverityFromSlog(tt.in); got != tt.want {
			t.Fatalf("SeverityFromSlog(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHandlerFeedsLogger(t *testing.T) {
	l := newTestLogger()
	logger := slog.New(NewHandler(sinkFunc(l.LogRecord), nil))
	logger.Error("disk full", CategoryKey, "Disk")
	if l.TotalRecords() != 1 || l.CategoryCount("Disk") != 1 {
		t.Fatalf("total=%d Disk=%d, want 1 1", l.TotalRecords(), l.CategoryCount("Disk"))
	}
}

type sinkFunc func(Record)

func (f sinkFunc) Push(rec Record) { f(rec) }
