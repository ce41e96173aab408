// Package app is the composition root of the logbook viewer.
//
// # Overview
//
// Run wires configuration, preferences, the core logbook.Logger, background
// producers and the UI:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()     startup settings
//	       ├─────> prefs.Load()      saved display preferences
//	       ├─────> NewLogger()       limits + preferences applied
//	       ├─────> state.NewInbox()  hand-off queue
//	       ├─────> SeedSource()      last N lines of each source
//	       ├─────> StartFollower()   one goroutine per source
//	       ├─────> StartEmitter()    demo records (optional)
//	       └─────> ui.Run()          blocks until quit
//
// # Ownership
//
// The Logger is touched only by this package before ui.Run and by the UI
// goroutine afterwards. Followers, the emitter, and the slog logger used for
// the viewer's own diagnostics all push into the Inbox. Diagnostics carry
// the category "logbook", so they can be hidden like any other source.
//
// # Error Handling
//
// A broken config file is fatal. Unreadable sources are logged and retried
// with exponential backoff (2s doubling to a 30s cap), and their health is
// kept in state.Store for the status line.
package app
