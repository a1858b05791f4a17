package helper

import (
	"fmt"
	"time"
)

// Exam start/end are wall-clock "HH:MM" strings on a local civil day.
// They are stored as minutes since midnight and only combined with a date
// in the fixed reference timezone.

// ParseClock converts "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight back as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseCivilDate parses "YYYY-MM-DD" as midnight in loc.
func ParseCivilDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// WallClockInstant builds the instant at (date, minutes since midnight)
// in loc. date may carry any zone; only its civil Y/M/D is used.
func WallClockInstant(date time.Time, minutes int, loc *time.Location) time.Time {
	y, m, d := date.Year(), date.Month(), date.Day()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc)
}

// SameCivilDay reports whether a and b fall on the same calendar day in loc.
func SameCivilDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
