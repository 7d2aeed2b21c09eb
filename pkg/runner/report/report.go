// Package report provides the runner that writes merged output as a file
// artifact (markdown, csv, json, or pdf).
package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"tableflip.dev/timekeep/pkg/export"
	"tableflip.dev/timekeep/pkg/merge"
	"tableflip.dev/timekeep/pkg/vault"
)

// Report merges selected records and writes the result in the requested
// format.
type Report struct {
	Vault    string
	Paths    []string
	From, To string
	Location *time.Location

	// Format is one of md, csv, json, pdf.
	Format string
	// Output is the artifact path; empty writes text formats to stdout.
	Output string
	// Title is used by formats that carry one (pdf).
	Title string
}

// Do runs the merge and dispatches on format.
func (n *Report) Do(ctx context.Context) error {
	all, err := vault.Scan(ctx, n.Vault)
	if err != nil {
		return err
	}
	selected := vault.SelectRecords(all, n.Paths)

	merged, err := merge.Build(selected, merge.Range{From: n.From, To: n.To, Location: n.Location})
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	var file *os.File
	if n.Output != "" {
		f, err := os.Create(n.Output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", n.Output, err)
		}
		file = f
		out = f
	} else if n.Format == "pdf" {
		return fmt.Errorf("pdf format requires --output")
	}

	title := n.Title
	if title == "" {
		title = "Merged Timekeep"
	}

	switch n.Format {
	case "csv":
		err = export.CSV(out, merged)
	case "json":
		err = export.JSON(out, merged)
	case "pdf":
		err = export.PDF(out, title, merged)
	case "", "md":
		err = export.Markdown(out, merged)
	default:
		if file != nil {
			file.Close()
		}
		return fmt.Errorf("unknown export format %q", n.Format)
	}
	if file != nil {
		// A failed close can mean a failed flush; the artifact must not
		// be reported as written.
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}
	if err != nil {
		return err
	}

	if n.Output != "" {
		fmt.Printf("Wrote %d merged entries to %s\n", len(merged), n.Output)
	}
	return nil
}
