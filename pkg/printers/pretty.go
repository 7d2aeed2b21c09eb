// Package printers renders records and merged entries for the terminal.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/timekeep/pkg/merge"
	"tableflip.dev/timekeep/pkg/vault"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" record")
	default:
		_, _ = c.Println(" records")
	}
}

// Records prints one row per discovered record: path, block ordinal, and
// how many leaf entries it holds.
func (pp *PrettyPrint) Records(records ...vault.Record) {
	if len(records) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("PATH", "BLOCK", "LEAVES")
	for _, r := range records {
		tbl.AddRow(r.SourcePath, fmt.Sprintf("#%d", r.Ordinal+1), r.Leaves())
	}

	if pp.ShowID {
		// Re-render with the selection id column in front.
		tbl = uitable.New()
		tbl.Separator = "  "
		tbl.AddRow("ID", "PATH", "BLOCK", "LEAVES")
		for _, r := range records {
			tbl.AddRow(y.Sprint(r.ID), r.SourcePath, fmt.Sprintf("#%d", r.Ordinal+1), r.Leaves())
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Merged prints the chronological merged entry list.
func (pp *PrettyPrint) Merged(entries ...merge.FlatEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 70
	tbl.AddRow("ENTRY", "START", "END", "DURATION")
	var total time.Duration
	for _, e := range entries {
		end := "-"
		if e.EndTime != nil {
			end = e.EndTime.Format("2006-01-02 15:04")
		}
		total += e.Duration()
		tbl.AddRow(e.Name, e.StartTime.Format("2006-01-02 15:04"), end, formatSpan(e.Duration()))
	}
	tbl.AddRow("Total", "", "", formatSpan(total))
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

func formatSpan(d time.Duration) string {
	seconds := int64(d / time.Second)
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", seconds%60)
}
