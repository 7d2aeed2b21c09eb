package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"tableflip.dev/timekeep/pkg/merge"
)

const stampLayout = "2006-01-02 15:04:05"

// CSV writes one row per merged entry: name, start, end, duration seconds.
// Open entries have an empty end column and zero duration.
func CSV(w io.Writer, entries []merge.FlatEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "start", "end", "duration_seconds"}); err != nil {
		return err
	}
	for _, e := range entries {
		end := ""
		if e.EndTime != nil {
			end = e.EndTime.Format(stampLayout)
		}
		row := []string{
			e.Name,
			e.StartTime.Format(stampLayout),
			end,
			strconv.FormatInt(int64(e.Duration()/time.Second), 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonFlatEntry struct {
	Name            string  `json:"name"`
	StartTime       string  `json:"startTime"`
	EndTime         *string `json:"endTime"`
	DurationSeconds int64   `json:"durationSeconds"`
}

// JSON writes the merged entries as a flat JSON array.
func JSON(w io.Writer, entries []merge.FlatEntry) error {
	out := make([]jsonFlatEntry, 0, len(entries))
	for _, e := range entries {
		je := jsonFlatEntry{
			Name:            e.Name,
			StartTime:       e.StartTime.Format(time.RFC3339),
			DurationSeconds: int64(e.Duration() / time.Second),
		}
		if e.EndTime != nil {
			s := e.EndTime.Format(time.RFC3339)
			je.EndTime = &s
		}
		out = append(out, je)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Markdown writes a pipe table of the merged entries plus a total row.
func Markdown(w io.Writer, entries []merge.FlatEntry) error {
	if _, err := fmt.Fprintln(w, "| Entry | Start | End | Duration |"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "| --- | --- | --- | --- |"); err != nil {
		return err
	}
	var total time.Duration
	for _, e := range entries {
		end := "-"
		if e.EndTime != nil {
			end = e.EndTime.Format(stampLayout)
		}
		total += e.Duration()
		if _, err := fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
			e.Name, e.StartTime.Format(stampLayout), end, formatDuration(e.Duration())); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "| **Total** |  |  | %s |\n", formatDuration(total))
	return err
}

// formatDuration renders a span as "1h 40m" / "45m" / "30s".
func formatDuration(d time.Duration) string {
	seconds := int64(d / time.Second)
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}
