package helper

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	min, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("parse clock: %v", err)
	}
	if min != 570 {
		t.Fatalf("expected 570, got %d", min)
	}

	if _, err := ParseClock("9h30"); err == nil {
		t.Fatal("expected error for malformed clock")
	}
	if _, err := ParseClock("25:00"); err == nil {
		t.Fatal("expected error for out-of-range hour")
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(570); got != "09:30" {
		t.Fatalf("expected 09:30, got %q", got)
	}
	if got := FormatClock(0); got != "00:00" {
		t.Fatalf("expected 00:00, got %q", got)
	}
}

func TestParseCivilDate(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	d, err := ParseCivilDate("2025-01-10", loc)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.January || d.Day() != 10 {
		t.Fatalf("unexpected date %v", d)
	}
	if d.Location() != loc {
		t.Fatal("date must carry the reference zone")
	}

	if _, err := ParseCivilDate("10/01/2025", loc); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestWallClockInstant(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	// Stored DATE columns come back as UTC midnight; the instant must still
	// land on the civil day in the reference zone, not shift by the offset.
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	got := WallClockInstant(date, 14*60, loc)
	want := time.Date(2025, 1, 10, 14, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSameCivilDay(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	a := time.Date(2025, 1, 10, 23, 30, 0, 0, loc)
	b := time.Date(2025, 1, 10, 0, 15, 0, 0, loc)
	if !SameCivilDay(a, b, loc) {
		t.Fatal("same civil day expected")
	}

	// 18:00 UTC is already Jan 11 in UTC+7.
	c := time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC)
	d := time.Date(2025, 1, 11, 8, 0, 0, 0, loc)
	if !SameCivilDay(c, d, loc) {
		t.Fatal("conversion into the reference zone expected")
	}
}
