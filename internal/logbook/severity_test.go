package logbook

import (
	"slices"
	"testing"
)

func TestSeverityOrdering(t *testing.T) {
	if !(Debug < Info && Info < Warn && Warn < Error) {
		t.Fatalf("severities not ordered: %d %d %d %d", Debug, Info, Warn, Error)
	}
	if DefaultSeverity != Info {
		t.Fatalf("DefaultSeverity = %v, want INFO", DefaultSeverity)
	}
	want := []Severity{Error, Warn, Info, Debug}
	if got := Severities(); !slices.Equal(got, want) {
		t.Fatalf("Severities() = %v, want %v", got, want)
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in     string
		want   Severity
		wantOK bool
	}{
		{"debug", Debug, true},
		{"INFO", Info, true},
		{" Warn ", Warn, true},
		{"warning", Warn, true},
		{"Error", Error, true},
		{"fatal", DefaultSeverity, false},
		{"", DefaultSeverity, false},
	}
	for _, tt := range tests {
		got, ok := ParseSeverity(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Fatalf("ParseSeverity(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSeverityNextWraps(t *testing.T) {
	got := []Severity{Debug.Next(), Info.Next(), Warn.Next(), Error.Next()}
	want := []Severity{Info, Warn, Error, Debug}
	if !slices.Equal(got, want) {
		t.Fatalf("Next() = %v, want %v", got, want)
	}
}

func TestSeverityText(t *testing.T) {
	for _, level := range Severities() {
		text, err := level.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", level, err)
		}
		var back Severity
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if back != level {
			t.Fatalf("round trip %v = %v", level, back)
		}
	}
	if _, err := Severity(9).MarshalText(); err == nil {
		t.Fatalf("MarshalText(9) error = nil, want error")
	}
	var s Severity
	if err := s.UnmarshalText([]byte("loud")); err == nil {
		t.Fatalf("UnmarshalText(loud) error = nil, want error")
	}
}

func TestTimeFormatText(t *testing.T) {
	var f TimeFormat
	if err := f.UnmarshalText([]byte("localtime")); err != nil || f != TimeLocal {
		t.Fatalf("UnmarshalText(localtime) = %v, %v; want local", f, err)
	}
	if TimeHide.Next() != TimeUTC {
		t.Fatalf("TimeHide.Next() = %v, want utc", TimeHide.Next())
	}
	var p TimePrecision
	if err := p.UnmarshalText([]byte("ms")); err != nil || p != Milliseconds {
		t.Fatalf("UnmarshalText(ms) = %v, %v; want milliseconds", p, err)
	}
}
