package state

import (
	"fmt"
	"sync"
	"testing"

	"github.com/five82/logbook/internal/logbook"
)

func TestInbox_DrainReturnsArrivalOrder(t *testing.T) {
	in := NewInbox(0)
	for i := range 3 {
		in.Push(logbook.NewRecord(logbook.Info, nil, fmt.Sprintf("m%d", i)))
	}
	if in.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", in.Len())
	}
	got := in.Drain()
	for i, rec := range got {
		if want := fmt.Sprintf("m%d", i); rec.Message != want {
			t.Fatalf("Drain()[%d] = %q, want %q", i, rec.Message, want)
		}
	}
	if in.Len() != 0 || len(in.Drain()) != 0 {
		t.Fatalf("inbox not empty after Drain")
	}
}

func TestInbox_LimitDropsOldest(t *testing.T) {
	in := NewInbox(2)
	for i := range 5 {
		in.Push(logbook.NewRecord(logbook.Debug, nil, fmt.Sprintf("m%d", i)))
	}
	got := in.Drain()
	if len(got) != 2 || got[0].Message != "m3" || got[1].Message != "m4" {
		t.Fatalf("Drain() = %#v, want m3 m4", got)
	}
	if in.Dropped() != 3 {
		t.Fatalf("Dropped() = %d, want 3", in.Dropped())
	}
}

func TestInbox_ConcurrentPushAndDrainInto(t *testing.T) {
	in := NewInbox(0)
	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				in.Push(logbook.NewRecord(logbook.Warn, []string{fmt.Sprintf("w%d", w)}, fmt.Sprint(i)))
			}
		}()
	}
	wg.Wait()

	l := logbook.New()
	if n := in.DrainInto(l); n != 200 {
		t.Fatalf("DrainInto() = %d, want 200", n)
	}
	if l.TotalRecords() != 200 || l.CategoryCount("w0") != 50 {
		t.Fatalf("total=%d w0=%d, want 200 50", l.TotalRecords(), l.CategoryCount("w0"))
	}
}
