// Package merge implements the entry merge engine: flattening hierarchical
// timekeep records into leaf entries with path-qualified names, filtering
// them to a calendar-day range, and merging them into one chronological
// sequence. Every stage is a pure function over its inputs.
package merge

import (
	"strings"
	"time"

	"tableflip.dev/timekeep/pkg/timekeep"
)

// FlatEntry is one leaf extracted from a record tree. Nesting is collapsed
// into the qualified name; nothing else survives flattening.
type FlatEntry struct {
	Name      string
	StartTime time.Time
	EndTime   *time.Time
}

// Duration returns the tracked span, or zero for an open entry.
func (f FlatEntry) Duration() time.Duration {
	if f.EndTime == nil {
		return 0
	}
	return f.EndTime.Sub(f.StartTime)
}

// Flatten walks entries depth-first in pre-order and emits one FlatEntry
// per leaf, carrying the chain of ancestor group names into a qualified
// name of the form "[[path]] - Group / Subgroup / Leaf". The trailing .md
// of sourcePath is stripped.
//
// An entry holding both a start time and children is emitted as a leaf AND
// recursed into, so its time appears under itself and again under its
// descendants. The duplication is intentional; do not collapse the two
// checks into an either/or.
func Flatten(entries []timekeep.Entry, sourcePath string) []FlatEntry {
	prefix := "[[" + timekeep.StripExtension(sourcePath) + "]] - "
	return flattenInto(nil, entries, prefix, nil)
}

func flattenInto(out []FlatEntry, entries []timekeep.Entry, prefix string, chain []string) []FlatEntry {
	for _, e := range entries {
		if e.IsLeaf() {
			out = append(out, FlatEntry{
				Name:      prefix + strings.Join(append(chain, e.Name), " / "),
				StartTime: *e.StartTime,
				EndTime:   e.EndTime,
			})
		}
		if e.IsGroup() {
			out = flattenInto(out, e.SubEntries, prefix, append(chain, e.Name))
		}
	}
	return out
}
