package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/five82/logbook/internal/logbook"
	"github.com/five82/logbook/internal/logtail"
	"github.com/five82/logbook/internal/state"
)

const (
	defaultRetryInterval = 2 * time.Second
	maxBackoff           = 30 * time.Second
)

var errWatcherClosed = errors.New("watcher closed")

// SeedSource loads the last tailLines of path straight into lb. It must run
// before the UI takes ownership of lb. The returned offset is where
// StartFollower continues; it is negative when the file could not be read,
// which makes the follower start at the end of the file.
func SeedSource(lb *logbook.Logger, path string, tailLines int, store *state.Store) (int64, error) {
	lines, offset, err := logtail.Tail(path, tailLines)
	if err != nil {
		store.Update(path, 0, err)
		return -1, err
	}
	recs := logtail.ParseLines(lines, logtail.SourceCategory(path), time.Now())
	for _, rec := range recs {
		lb.LogRecord(rec)
	}
	store.Update(path, len(recs), nil)
	return offset, nil
}

// StartFollower launches a background goroutine that pushes lines written to
// path at or after byte offset from into sink. Watch failures are retried
// with exponential backoff, resuming where the failed watch stopped. It
// returns immediately.
func StartFollower(ctx context.Context, path string, from int64, sink logbook.Sink, store *state.Store, diag *slog.Logger) {
	category := logtail.SourceCategory(path)
	go func() {
		failures := 0
		offset := from
		for {
			next, err := logtail.Follow(ctx, path, offset, func(lines []string) {
				recs := logtail.ParseLines(lines, category, time.Now())
				for _, rec := range recs {
					sink.Push(rec)
				}
				store.Update(path, len(recs), nil)
				failures = 0
			})
			offset = next
			if ctx.Err() != nil {
				return
			}
			if err == nil {
				err = errWatcherClosed
			}
			store.Update(path, 0, err)
			delay := calculateBackoff(failures, defaultRetryInterval)
			failures++
			diag.Warn("follow failed", "path", path, "error", err, "retry_in", delay)

			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
		}
	}()
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for range failures {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
