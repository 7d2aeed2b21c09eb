package merge

import "sort"

// Merge concatenates the per-record flattened sequences and orders the
// result ascending by start instant. The sort is stable so that entries
// with equal start times keep their concatenation order.
func Merge(groups ...[]FlatEntry) []FlatEntry {
	var total int
	for _, g := range groups {
		total += len(g)
	}
	out := make([]FlatEntry, 0, total)
	for _, g := range groups {
		out = append(out, g...)
	}
	sortByStart(out)
	return out
}

func sortByStart(entries []FlatEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartTime.Before(entries[j].StartTime)
	})
}
