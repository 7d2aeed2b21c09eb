// Package timekeep defines the embedded time-tracking record model and its
// fenced-block JSON codec.
package timekeep

import "time"

// Entry is one node of a timekeep record: either a leaf holding tracked
// time, or a group that only nests children under a shared name. The
// distinction is made at parse time by the presence of an orderable start
// instant. An entry may legally carry both a start time and children; such
// dual-role entries are treated as a leaf and a group at once downstream.
type Entry struct {
	Name       string
	StartTime  *time.Time
	EndTime    *time.Time
	SubEntries []Entry
}

// IsLeaf reports whether the entry carries tracked time of its own.
func (e Entry) IsLeaf() bool {
	return e.StartTime != nil
}

// IsGroup reports whether the entry nests children.
func (e Entry) IsGroup() bool {
	return len(e.SubEntries) > 0
}

// Open reports whether a leaf is still running (no end time yet).
func (e Entry) Open() bool {
	return e.IsLeaf() && e.EndTime == nil
}

// Timekeep is one self-contained record: an ordered sequence of top-level
// entries, as found inside a single embedded block.
type Timekeep struct {
	Entries []Entry
}
