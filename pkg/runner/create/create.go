// Package create provides the runner behind the merge command: select
// records, run the merge engine, and emit the merged block.
package create

import (
	"context"
	"fmt"
	"os"
	"time"

	"tableflip.dev/timekeep/pkg/export"
	"tableflip.dev/timekeep/pkg/merge"
	"tableflip.dev/timekeep/pkg/printers"
	"tableflip.dev/timekeep/pkg/vault"
)

// Create merges the selected records into a single timekeep block.
type Create struct {
	Vault string

	// Paths are case-insensitive path substrings selecting records; empty
	// selects every record in the vault.
	Paths []string

	// From and To bound the merge to an inclusive calendar-day range.
	From, To string
	Location *time.Location

	// AppendTo, when set, appends the merged block to that document
	// (vault-relative) instead of printing it.
	AppendTo string

	// Table prints the merged entries as a table instead of a block.
	Table bool

	// Calendar prints a month grid marking the days with merged entries.
	Calendar bool
}

// Do runs the pipeline. The three engine errors come back unwrapped so the
// command layer can turn them into one-line notices.
func (n *Create) Do(ctx context.Context) error {
	all, err := vault.Scan(ctx, n.Vault)
	if err != nil {
		return err
	}
	selected := vault.SelectRecords(all, n.Paths)

	merged, err := merge.Build(selected, merge.Range{From: n.From, To: n.To, Location: n.Location})
	if err != nil {
		return err
	}

	if n.Table || n.Calendar {
		pp := printers.PrettyPrint{}
		fmt.Println("")
		pp.TitleWithCount("Merged timekeep", len(selected))
		if n.Table {
			pp.Merged(merged...)
		}
		if n.Calendar {
			pp.Tracking(merged...)
		}
		return nil
	}

	block, err := export.Block(merged)
	if err != nil {
		return err
	}

	if n.AppendTo != "" {
		if err := export.AppendToDocument(n.Vault, n.AppendTo, block); err != nil {
			return err
		}
		fmt.Printf("Appended merged timekeep (%d entries) to %s\n", len(merged), n.AppendTo)
		return nil
	}

	_, err = fmt.Fprint(os.Stdout, block)
	return err
}
