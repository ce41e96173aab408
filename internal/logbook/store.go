package logbook

import "iter"

// Store keeps one FIFO queue of records per severity. Levels never evict
// each other's records.
type Store struct {
	levels [levelCount]ring
}

// Push appends rec to the queue for its level.
func (s *Store) Push(rec Record) {
	s.levels[rec.Level.clamp()].push(rec)
}

// Enforce evicts the oldest records of level until at most limit remain and
// returns what was evicted, oldest first.
func (s *Store) Enforce(level Severity, limit int) []Record {
	limit = max(limit, 0)
	q := &s.levels[level.clamp()]
	var evicted []Record
	for q.len() > limit {
		rec, ok := q.popFront()
		if !ok {
			break
		}
		evicted = append(evicted, rec)
	}
	return evicted
}

// Len returns the number of records across all levels.
func (s *Store) Len() int {
	total := 0
	for i := range s.levels {
		total += s.levels[i].len()
	}
	return total
}

// LenLevel returns the number of records held for level.
func (s *Store) LenLevel(level Severity) int {
	return s.levels[level.clamp()].len()
}

// All yields records level by level (Debug first), each level in insertion
// order.
func (s *Store) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for i := range s.levels {
			q := &s.levels[i]
			for j := 0; j < q.len(); j++ {
				if !yield(q.at(j)) {
					return
				}
			}
		}
	}
}

// Reset drops every record.
func (s *Store) Reset() {
	for i := range s.levels {
		s.levels[i] = ring{}
	}
}

// ring is a growable circular buffer.
type ring struct {
	buf  []Record
	head int
	size int
}

func (r *ring) len() int { return r.size }

func (r *ring) at(i int) Record {
	return r.buf[(r.head+i)%len(r.buf)]
}

func (r *ring) push(rec Record) {
	if r.size == len(r.buf) {
		r.grow()
	}
	r.buf[(r.head+r.size)%len(r.buf)] = rec
	r.size++
}

func (r *ring) popFront() (Record, bool) {
	if r.size == 0 {
		return Record{}, false
	}
	rec := r.buf[r.head]
	r.buf[r.head] = Record{}
	r.head = (r.head + 1) % len(r.buf)
	r.size--
	return rec, true
}

func (r *ring) grow() {
	next := make([]Record, max(2*len(r.buf), 16))
	for i := 0; i < r.size; i++ {
		next[i] = r.at(i)
	}
	r.buf = next
	r.head = 0
}
