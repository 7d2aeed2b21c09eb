// Package vault discovers timekeep records embedded in a directory of
// markdown documents. It is the read side only: records are produced fresh
// on every scan and nothing is cached between invocations.
package vault

import (
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/timekeep/pkg/timekeep"
)

// Record is one discovered timekeep block.
type Record struct {
	// ID is a per-discovery unique identifier used only to track
	// selection in interactive surfaces. It carries no merge semantics
	// and is never written back to a document.
	ID string

	// SourcePath is the document path relative to the vault root, with
	// its extension intact.
	SourcePath string

	// Ordinal is the block's index within its document, for telling
	// multiple records in one document apart when displayed.
	Ordinal int

	Keep timekeep.Timekeep
}

func newRecord(path string, ordinal int, tk timekeep.Timekeep) Record {
	return Record{
		ID:         uuid.NewString(),
		SourcePath: path,
		Ordinal:    ordinal,
		Keep:       tk,
	}
}

// Leaves counts the record's leaf entries, dual-role entries included once.
func (r Record) Leaves() int {
	return countLeaves(r.Keep.Entries)
}

func countLeaves(entries []timekeep.Entry) int {
	n := 0
	for _, e := range entries {
		if e.IsLeaf() {
			n++
		}
		n += countLeaves(e.SubEntries)
	}
	return n
}

// SelectRecords keeps records matched by any of the selectors, each a
// case-insensitive path substring. No selectors selects everything.
// Record order is preserved and a record matches at most once.
func SelectRecords(records []Record, selectors []string) []Record {
	if len(selectors) == 0 {
		return records
	}
	kept := make([]Record, 0, len(records))
	for _, r := range records {
		path := strings.ToLower(r.SourcePath)
		for _, sel := range selectors {
			if strings.Contains(path, strings.ToLower(sel)) {
				kept = append(kept, r)
				break
			}
		}
	}
	return kept
}

// FilterRecords keeps records whose source path contains the query,
// case-insensitively. An empty query keeps everything. This is the
// search-as-you-type filter behind the interactive picker.
func FilterRecords(records []Record, query string) []Record {
	if query == "" {
		return records
	}
	q := strings.ToLower(query)
	kept := make([]Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.SourcePath), q) {
			kept = append(kept, r)
		}
	}
	return kept
}
