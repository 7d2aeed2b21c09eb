package timeutil

import "time"

// DateLayout is the plain calendar-day format used for range inputs.
const DateLayout = "2006-01-02"

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// WindowDates converts a trailing window ending now into a pair of
// calendar-day strings suitable for the range filter.
func WindowDates(now time.Time, window time.Duration) (string, string) {
	from := now.Add(-window)
	return from.Format(DateLayout), now.Format(DateLayout)
}
