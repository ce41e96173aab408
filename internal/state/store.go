package state

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// SourceStatus describes the health of one followed log source.
type SourceStatus struct {
	Path                string
	Lines               int // lines ingested since start
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the source has failed repeatedly in a row.
func (s SourceStatus) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to source health.
type Store struct {
	mu      sync.RWMutex
	sources map[string]SourceStatus
}

// Update records progress for path. When err is non-nil the line count is
// kept but the error is recorded for visibility.
func (s *Store) Update(path string, lines int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sources == nil {
		s.sources = make(map[string]SourceStatus)
	}
	status := s.sources[path]
	status.Path = path
	status.LastUpdated = time.Now()
	if err != nil {
		status.LastError = err
		status.ConsecutiveFailures++
		s.sources[path] = status
		return
	}
	status.Lines += lines
	status.LastError = nil
	status.ConsecutiveFailures = 0
	s.sources[path] = status
}

// Snapshot returns a copy of every source status, sorted by path.
func (s *Store) Snapshot() []SourceStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.sources) == 0 {
		return nil
	}
	out := make([]SourceStatus, 0, len(s.sources))
	for _, status := range s.sources {
		if status.LastError != nil {
			status.LastError = fmt.Errorf("%w", status.LastError)
		}
		out = append(out, status)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
