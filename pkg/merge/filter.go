package merge

import (
	"fmt"
	"time"

	"tableflip.dev/timekeep/pkg/timeutil"
)

// Range is an optional inclusive calendar-day window. Dates are plain
// YYYY-MM-DD strings as typed by the user; empty means absent. Location
// controls which wall clock the days resolve against, defaulting to the
// system location.
type Range struct {
	From     string
	To       string
	Location *time.Location
}

// Empty reports whether no range was requested at all.
func (r Range) Empty() bool {
	return r.From == "" && r.To == ""
}

func (r Range) location() *time.Location {
	if r.Location != nil {
		return r.Location
	}
	return time.Local
}

// Bounds resolves the range to concrete instants: midnight of the start
// day through 23:59:59.999 of the end day. Supplying only one date is
// ErrIncompleteRange; a start after the end is ErrInvertedRange.
func (r Range) Bounds() (time.Time, time.Time, error) {
	if r.From == "" || r.To == "" {
		return time.Time{}, time.Time{}, ErrIncompleteRange
	}
	loc := r.location()
	from, err := time.ParseInLocation(timeutil.DateLayout, r.From, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing start date %q: %w", r.From, err)
	}
	to, err := time.ParseInLocation(timeutil.DateLayout, r.To, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing end date %q: %w", r.To, err)
	}
	start := timeutil.StartOfDay(from)
	end := timeutil.EndOfDay(to)
	if start.After(end) {
		return time.Time{}, time.Time{}, ErrInvertedRange
	}
	return start, end, nil
}

// FilterRange keeps the entries whose start instant falls inside the
// closed interval the range resolves to. Only the start is tested: an
// entry that runs past the end of the window is still kept. An empty
// range passes everything through untouched; a filter that excludes
// everything is ErrNoEntries.
func FilterRange(entries []FlatEntry, r Range) ([]FlatEntry, error) {
	if r.Empty() {
		return entries, nil
	}
	start, end, err := r.Bounds()
	if err != nil {
		return nil, err
	}
	kept := make([]FlatEntry, 0, len(entries))
	for _, e := range entries {
		if e.StartTime.Before(start) || e.StartTime.After(end) {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) == 0 {
		return nil, ErrNoEntries
	}
	return kept, nil
}
