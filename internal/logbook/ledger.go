package logbook

import "sort"

// Ledger counts live records per category. A record carrying the same
// category twice counts twice. Names stay in the ledger after their count
// reaches zero until Reset.
type Ledger struct {
	counts map[string]uint32
}

// Add increments the counter of every category occurrence.
func (l *Ledger) Add(categories []string) {
	if len(categories) == 0 {
		return
	}
	if l.counts == nil {
		l.counts = make(map[string]uint32)
	}
	for _, name := range categories {
		l.counts[name]++
	}
}

// Remove decrements the counter of every category occurrence, never going
// below zero.
func (l *Ledger) Remove(categories []string) {
	for _, name := range categories {
		if n, ok := l.counts[name]; ok && n > 0 {
			l.counts[name] = n - 1
		}
	}
}

// Count returns the live count for name.
func (l *Ledger) Count(name string) uint32 {
	return l.counts[name]
}

// Names returns every category ever seen since the last Reset, sorted.
func (l *Ledger) Names() []string {
	names := make([]string, 0, len(l.counts))
	for name := range l.counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of known category names.
func (l *Ledger) Len() int {
	return len(l.counts)
}

// Reset forgets every category.
func (l *Ledger) Reset() {
	l.counts = nil
}

func (l *Ledger) snapshot() map[string]uint32 {
	if len(l.counts) == 0 {
		return nil
	}
	dup := make(map[string]uint32, len(l.counts))
	for name, n := range l.counts {
		dup[name] = n
	}
	return dup
}

func (l *Ledger) restore(name string, n uint32) {
	if l.counts == nil {
		l.counts = make(map[string]uint32)
	}
	l.counts[name] = n
}
