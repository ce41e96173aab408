// Package logtail reads, parses, and follows plain-text log files.
//
// # Overview
//
// Log files named as sources are loaded in two steps. Tail seeds the logbook
// with the last N lines and reports the byte offset it stopped at, then
// Follow delivers every line written from that offset on.
// ParseLine turns each line into a logbook.Record.
//
// # Reading Log Files
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory stays O(maxLines) regardless of file size:
//
//	lines, err := logtail.Read("/var/log/app.log", 400)
//
// A missing file is not an error; Read returns nil, nil.
//
// # Line Format
//
// Lines are expected to look like
//
//	2024-10-10 14:32:15 INFO [encoder] – encoding started
//
// The timestamp, level, [component] tag and "–" separator are all optional.
// The component becomes the record's only category; untagged lines use the
// source's file name (see SourceCategory).
//
// # Following
//
// Follow uses fsnotify on the file's directory so it keeps working when the
// file is created late or rotated. Partial trailing lines are held until
// their newline arrives. When the file shrinks, reading restarts at offset
// zero. Follow returns the offset of the first undelivered byte, so a caller
// that restarts it after an error passes that offset back and loses nothing
// written in between:
//
//	offset, err = logtail.Follow(ctx, path, offset, handle)
package logtail
