package app

import (
	"context"
	"time"

	"github.com/five82/logbook/internal/logbook"
)

const (
	demoUnknown  logbook.Category = "Unknown"
	demoDialogue logbook.Category = "Dialogue"
	demoInput    logbook.Category = "Input"
	demoNetwork  logbook.Category = "Network"

	defaultDemoInterval = 750 * time.Millisecond
)

type demoEntry struct {
	level    logbook.Severity
	category logbook.Category
	message  string
}

var demoEntries = []demoEntry{
	{logbook.Debug, demoNetwork, "Connecting..."},
	{logbook.Info, demoDialogue, "Hello World"},
	{logbook.Error, demoNetwork, "Disconnected unexpectedly!"},
	{logbook.Warn, demoUnknown, "Be warned"},
}

// StartEmitter launches a background goroutine that pushes one demo record
// into sink per interval, cycling through a fixed set. It returns
// immediately.
func StartEmitter(ctx context.Context, sink logbook.Sink, interval time.Duration) {
	if interval <= 0 {
		interval = defaultDemoInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			sink.Push(demoRecord(i))
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func demoRecord(i int) logbook.Record {
	e := demoEntries[i%len(demoEntries)]
	return logbook.NewRecord(e.level, logbook.Categories(e.category), e.message)
}
