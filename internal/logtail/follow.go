package logtail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Follow watches path and calls fn with every complete line written at or
// after byte offset from. A negative from starts at the current end of the
// file. A truncated or replaced file is read again from the start.
//
// Follow returns the offset just past the last line it delivered, so a later
// call resumes without losing or repeating lines. It returns a nil error when
// ctx is cancelled.
func Follow(ctx context.Context, path string, from int64, fn func([]string)) (int64, error) {
	f := newFollower(path)
	if from >= 0 {
		f.offset = from
	} else if err := f.skipExisting(); err != nil {
		return from, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return f.resume(), fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watching the directory sees the file being created or rotated.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return f.resume(), fmt.Errorf("watch %s: %w", dir, err)
	}

	// Catch up on lines written before the watch was in place.
	if err := f.deliver(fn); err != nil {
		return f.resume(), err
	}

	for {
		select {
		case <-ctx.Done():
			return f.resume(), nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return f.resume(), nil
			}
			if filepath.Clean(ev.Name) != f.path {
				continue
			}
			if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				f.reset()
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if err := f.deliver(fn); err != nil {
				return f.resume(), err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return f.resume(), nil
			}
			return f.resume(), fmt.Errorf("watch %s: %w", path, err)
		}
	}
}

// follower tracks the read position within one file.
type follower struct {
	path    string
	offset  int64
	partial []byte
}

func newFollower(path string) *follower {
	return &follower{path: filepath.Clean(path)}
}

func (f *follower) skipExisting() error {
	info, err := os.Stat(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat log: %w", err)
	}
	f.offset = info.Size()
	return nil
}

// resume is the offset of the first byte not yet delivered as a line.
func (f *follower) resume() int64 {
	return f.offset - int64(len(f.partial))
}

func (f *follower) deliver(fn func([]string)) error {
	lines, err := f.poll()
	if err != nil {
		return err
	}
	if len(lines) > 0 {
		fn(lines)
	}
	return nil
}

func (f *follower) reset() {
	f.offset = 0
	f.partial = nil
}

// poll returns the complete lines written since the previous call. A
// trailing line without a newline is held back until it is finished.
func (f *follower) poll() ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}
	if info.Size() < f.offset {
		f.reset()
	}
	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek log: %w", err)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	f.offset += int64(len(data))

	data = append(f.partial, data...)
	f.partial = nil
	var lines []string
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		lines = append(lines, string(bytes.TrimSuffix(data[:i], []byte("\r"))))
		data = data[i+1:]
	}
	if len(data) > 0 {
		f.partial = bytes.Clone(data)
	}
	return lines, nil
}
