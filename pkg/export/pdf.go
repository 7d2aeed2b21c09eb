package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"tableflip.dev/timekeep/pkg/merge"
)

// PDF writes the merged entries as a single-table PDF document.
func PDF(w io.Writer, title string, entries []merge.FlatEntry) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	const (
		nameWidth  = 95
		timeWidth  = 32
		durWidth   = 26
		rowHeight  = 7
		tableAlign = "L"
	)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(nameWidth, rowHeight, "Entry", "1", 0, tableAlign, true, 0, "")
	pdf.CellFormat(timeWidth, rowHeight, "Start", "1", 0, tableAlign, true, 0, "")
	pdf.CellFormat(timeWidth, rowHeight, "End", "1", 0, tableAlign, true, 0, "")
	pdf.CellFormat(durWidth, rowHeight, "Duration", "1", 1, tableAlign, true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	var total time.Duration
	for _, e := range entries {
		end := "-"
		if e.EndTime != nil {
			end = e.EndTime.Format(stampLayout)
		}
		total += e.Duration()
		pdf.CellFormat(nameWidth, rowHeight, e.Name, "1", 0, tableAlign, false, 0, "")
		pdf.CellFormat(timeWidth, rowHeight, e.StartTime.Format(stampLayout), "1", 0, tableAlign, false, 0, "")
		pdf.CellFormat(timeWidth, rowHeight, end, "1", 0, tableAlign, false, 0, "")
		pdf.CellFormat(durWidth, rowHeight, formatDuration(e.Duration()), "1", 1, tableAlign, false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(nameWidth+2*timeWidth, rowHeight, "Total", "1", 0, tableAlign, false, 0, "")
	pdf.CellFormat(durWidth, rowHeight, formatDuration(total), "1", 1, tableAlign, false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
