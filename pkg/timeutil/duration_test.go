package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowComposite(t *testing.T) {
	dur, err := ParseWindow("1w2d6h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (7*24 + 2*24 + 6) * time.Hour
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	if _, err := ParseWindow("noop"); err == nil {
		t.Fatalf("expected error for invalid window")
	}
	if _, err := ParseWindow(""); err == nil {
		t.Fatalf("expected error for empty window")
	}
}

func TestWindowDates(t *testing.T) {
	now := time.Date(2024, time.May, 10, 15, 0, 0, 0, time.UTC)
	from, to := WindowDates(now, 7*24*time.Hour)
	if from != "2024-05-03" || to != "2024-05-10" {
		t.Fatalf("unexpected window dates %s..%s", from, to)
	}
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2024, time.May, 10, 12, 30, 45, 0, time.UTC)
	start := StartOfDay(at)
	end := EndOfDay(at)
	if !start.Equal(time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start of day: %v", start)
	}
	if !end.Equal(time.Date(2024, time.May, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC)) {
		t.Fatalf("unexpected end of day: %v", end)
	}
}
