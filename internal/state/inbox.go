package state

import (
	"sync"

	"github.com/five82/logbook/internal/logbook"
)

// Inbox buffers records produced on other goroutines until the owner of the
// logbook.Logger drains them. It implements logbook.Sink.
type Inbox struct {
	mu      sync.Mutex
	limit   int
	pending []logbook.Record
	dropped uint64
}

// NewInbox returns an inbox holding at most limit pending records. When full
// the oldest pending record is dropped. A limit <= 0 means unbounded.
func NewInbox(limit int) *Inbox {
	return &Inbox{limit: limit}
}

// Push queues rec.
func (i *Inbox) Push(rec logbook.Record) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.limit > 0 && len(i.pending) >= i.limit {
		n := len(i.pending) - i.limit + 1
		clear(i.pending[:n])
		i.pending = i.pending[n:]
		i.dropped += uint64(n)
	}
	i.pending = append(i.pending, rec)
}

// Drain removes and returns every pending record in arrival order.
func (i *Inbox) Drain() []logbook.Record {
	i.mu.Lock()
	defer i.mu.Unlock()

	out := i.pending
	i.pending = nil
	return out
}

// Len returns the number of pending records.
func (i *Inbox) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.pending)
}

// Dropped returns how many records were discarded because the inbox was full.
func (i *Inbox) Dropped() uint64 {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.dropped
}

// DrainInto moves every pending record into l and returns how many moved.
func (i *Inbox) DrainInto(l *logbook.Logger) int {
	records := i.Drain()
	for _, rec := range records {
		l.LogRecord(rec)
	}
	return len(records)
}
