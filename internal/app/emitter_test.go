package app

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/five82/logbook/internal/config"
	"github.com/five82/logbook/internal/logbook"
	"github.com/five82/logbook/internal/prefs"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type chanSink struct {
	mu      sync.Mutex
	records []logbook.Record
	ch      chan struct{}
}

func (s *chanSink) Push(rec logbook.Record) {
	s.mu.Lock()
	s.records = append(s.records, rec)
	s.mu.Unlock()
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

func TestDemoRecordCycles(t *testing.T) {
	want := []string{"Connecting...", "Hello World", "Disconnected unexpectedly!", "Be warned", "Connecting..."}
	for i, msg := range want {
		if got := demoRecord(i).Message; got != msg {
			t.Fatalf("demoRecord(%d) = %q, want %q", i, got, msg)
		}
	}
	rec := demoRecord(1)
	if rec.Level != logbook.Info || len(rec.Categories) != 1 || rec.Categories[0] != "Dialogue" {
		t.Fatalf("demoRecord(1) = %#v", rec)
	}
}

func TestStartEmitterStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sink := &chanSink{ch: make(chan struct{}, 1)}
	StartEmitter(ctx, sink, 5*time.Millisecond)

	timeout := time.After(5 * time.Second)
	for n := 0; n < 3; n++ {
		select {
		case <-sink.ch:
		case <-timeout:
			t.Fatal("emitter produced fewer than 3 records within 5s")
		}
	}
	cancel()

	// Give the goroutine time to observe cancellation, then confirm it stopped.
	time.Sleep(50 * time.Millisecond)
	sink.mu.Lock()
	before := len(sink.records)
	sink.mu.Unlock()
	time.Sleep(50 * time.Millisecond)
	sink.mu.Lock()
	after := len(sink.records)
	sink.mu.Unlock()
	if after != before {
		t.Fatalf("emitter kept running after cancel: %d -> %d records", before, after)
	}
}

func TestNewLoggerAppliesConfigAndPrefs(t *testing.T) {
	cfg := config.Default()
	cfg.MaxRecordsPerLevel = 5
	cfg.Demo = true
	p := prefs.Default()
	p.MinLevel = logbook.Warn

	lb := NewLogger(cfg, p)
	if lb.MaxRecordsPerLevel != 5 || lb.MinDisplayLevel != logbook.Warn {
		t.Fatalf("MaxRecordsPerLevel/MinDisplayLevel = %d/%v, want 5/WARN", lb.MaxRecordsPerLevel, lb.MinDisplayLevel)
	}
	if lb.InputPrefix != "User: " {
		t.Fatalf("InputPrefix = %q, want %q", lb.InputPrefix, "User: ")
	}
	if got := lb.InputCategories(); len(got) != 2 || got[0] != "Input" || got[1] != "Dialogue" {
		t.Fatalf("InputCategories() = %v, want [Input Dialogue]", got)
	}
}
