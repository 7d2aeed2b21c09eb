package merge

import (
	"tableflip.dev/timekeep/pkg/vault"
)

// Build runs the full pipeline over the selected records: flatten each
// record under its document path, concatenate, filter once globally, and
// sort. On any range error or an empty outcome the partial result is
// discarded and only the error returned; callers never see a half merge.
func Build(records []vault.Record, r Range) ([]FlatEntry, error) {
	var flat []FlatEntry
	for _, rec := range records {
		flat = append(flat, Flatten(rec.Keep.Entries, rec.SourcePath)...)
	}
	filtered, err := FilterRange(flat, r)
	if err != nil {
		return nil, err
	}
	if len(filtered) == 0 {
		return nil, ErrNoEntries
	}
	sorted := Merge(filtered)
	return sorted, nil
}
