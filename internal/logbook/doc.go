// Package logbook is an in-memory store of categorized, leveled log records.
//
// Records are kept in one bounded FIFO queue per severity, so a flood of
// debug output never evicts errors. A ledger counts live records per category
// and the Logger answers filtered queries by minimum level, hidden
// categories, and a search term matched against each record's rendered line.
//
// Logger is meant to be owned by a single goroutine. Other goroutines hand
// records over through a Sink, for example the slog Handler in this package.
package logbook
