package service

import "testing"

func TestOverlaps(t *testing.T) {
	// Exam at 09:00-11:00; a second one 10:30-12:00 collides, 11:00-12:00
	// does not (intervals are half-open).
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"inner overlap", 9 * 60, 11 * 60, 10*60 + 30, 12 * 60, true},
		{"back to back", 9 * 60, 11 * 60, 11 * 60, 12 * 60, false},
		{"identical", 9 * 60, 11 * 60, 9 * 60, 11 * 60, true},
		{"contained", 9 * 60, 12 * 60, 10 * 60, 11 * 60, true},
		{"disjoint before", 9 * 60, 10 * 60, 13 * 60, 14 * 60, false},
		{"touching start", 11 * 60, 12 * 60, 9 * 60, 11 * 60, false},
	}
	for _, tc := range cases {
		if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Errorf("%s: Overlaps=%v, want %v", tc.name, got, tc.want)
		}
		// symmetric
		if got := Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd); got != tc.want {
			t.Errorf("%s (swapped): Overlaps=%v, want %v", tc.name, got, tc.want)
		}
	}
}
