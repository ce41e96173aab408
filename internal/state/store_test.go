package state

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update("/var/log/b.log", 3, nil)
	s.Update("/var/log/a.log", 1, nil)
	s.Update("/var/log/b.log", 2, nil)

	snap := s.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("snapshot = %#v, want 2 sources", snap)
	}
	if snap[0].Path != "/var/log/a.log" || snap[1].Path != "/var/log/b.log" {
		t.Fatalf("snapshot order = %q, %q; want a then b", snap[0].Path, snap[1].Path)
	}
	if snap[1].Lines != 5 {
		t.Fatalf("Lines = %d, want 5", snap[1].Lines)
	}
	if snap[1].LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap[1].LastUpdated, before)
	}

	snap[0].Lines = 999
	if again := s.Snapshot(); again[0].Lines != 1 {
		t.Fatalf("Snapshot should copy statuses; got lines %d want 1", again[0].Lines)
	}
}

func TestStore_UpdateErrorKeepsLineCount(t *testing.T) {
	var s Store

	s.Update("app.log", 4, nil)
	origErr := errors.New("boom")
	s.Update("app.log", 10, origErr)

	snap := s.Snapshot()[0]
	if snap.Lines != 4 {
		t.Fatalf("Lines changed on error: got %d want 4", snap.Lines)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	if snap := s.Snapshot(); snap != nil {
		t.Fatalf("empty Snapshot() = %#v, want nil", snap)
	}

	s.Update("app.log", 0, errors.New("fail 1"))
	if snap := s.Snapshot()[0]; snap.ConsecutiveFailures != 1 || snap.IsOffline() {
		t.Fatalf("after 1 failure: failures=%d offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update("app.log", 0, errors.New("fail 2"))
	if snap := s.Snapshot()[0]; snap.ConsecutiveFailures != 2 || !snap.IsOffline() {
		t.Fatalf("after 2 failures: failures=%d offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update("app.log", 1, nil)
	if snap := s.Snapshot()[0]; snap.ConsecutiveFailures != 0 || snap.IsOffline() || snap.LastError != nil {
		t.Fatalf("after success: %#v", snap)
	}
}
