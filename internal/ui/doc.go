// Package ui provides the terminal viewer for a logbook.Logger.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. The Model owns the Logger for the lifetime
// of the program: producers on other goroutines push records into a
// state.Inbox, and every tick the Model drains the inbox into the Logger and
// re-renders the visible records. No lock guards the Logger because only the
// Bubble Tea update loop touches it.
//
// # Package Structure
//
//   - app.go: Model, Options, the update loop and Run
//   - logs.go: record rendering, the status line and log view keys
//   - categories.go: the category panel and glob hide/show
//   - search.go: live search with regex and case toggles
//   - input.go: writing records from the keyboard
//   - header.go: header counts and the command bar
//   - help.go: the key binding overlay
//   - theme.go, style_helpers.go: palettes and background-safe rendering
//
// # Modes
//
// Key presses go to exactly one component:
//
//   - Records: scrolling, follow mode, level and format toggles
//   - Search: the "/" field, filtering as the user types
//   - Input: the "i" field, each Enter logs one record
//   - Categories: the "C" panel, toggling categories one by one or by glob
//
// Every display change is written back through prefs.Save so the next run
// starts with the same filters and theme.
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context: ctx,
//		Logger:  lb,
//		Inbox:   inbox,
//	})
package ui
