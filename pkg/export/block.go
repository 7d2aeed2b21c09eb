// Package export renders a merged entry list into its downstream shapes:
// the embedded-block text inserted into documents, and csv/json/markdown/pdf
// artifacts.
package export

import (
	"fmt"

	"tableflip.dev/timekeep/pkg/merge"
	"tableflip.dev/timekeep/pkg/timekeep"
)

// Keep wraps merged output back into a record: a flat list of leaves with
// no residual hierarchy, ready for serialization.
func Keep(entries []merge.FlatEntry) timekeep.Timekeep {
	out := make([]timekeep.Entry, 0, len(entries))
	for _, e := range entries {
		start := e.StartTime
		out = append(out, timekeep.Entry{
			Name:      e.Name,
			StartTime: &start,
			EndTime:   e.EndTime,
		})
	}
	return timekeep.Timekeep{Entries: out}
}

// Block renders the fenced code block text for insertion into a document.
func Block(entries []merge.FlatEntry) (string, error) {
	data, err := timekeep.Marshal(Keep(entries))
	if err != nil {
		return "", fmt.Errorf("rendering timekeep block: %w", err)
	}
	return "```timekeep\n" + string(data) + "\n```\n", nil
}
