// Package state holds the data shared between background producers and the
// UI goroutine.
//
// # Overview
//
// A logbook.Logger is owned by a single goroutine, the UI. Everything that
// produces records on another goroutine (the slog handler, file followers,
// the demo emitter) pushes into an Inbox instead, and the UI drains the
// inbox into the Logger on each refresh tick:
//
//	Producers:                     Consumer (UI):
//	┌────────────────┐            ┌──────────────────┐
//	│ slog.Handler   │            │                  │
//	│ logtail.Follow │──Push()───→│ inbox.DrainInto()│
//	│ demo emitter   │  (mutex)   │ render view      │
//	└────────────────┘            └──────────────────┘
//
// # Core Types
//
// Inbox:
//   - FIFO of pending records guarded by a sync.Mutex
//   - Optional limit; when full the oldest pending record is dropped and
//     counted in Dropped
//   - Implements logbook.Sink
//
// Store:
//   - Health of each followed source (lines ingested, last error,
//     consecutive failures)
//   - Uses sync.RWMutex; Snapshot returns sorted copies with cloned errors
//
// # Usage Example
//
//	inbox := state.NewInbox(10000)
//	logger := slog.New(logbook.NewHandler(inbox, slog.LevelDebug))
//	go func() { logger.Info("started", logbook.CategoryKey, "app") }()
//
//	// UI goroutine:
//	inbox.DrainInto(lb)
//
// Both types are safe to use from their zero value, except that a zero Inbox
// is unbounded.
package state
