package timekeep

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// timestampLayout is the wire format for instants inside embedded blocks.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// jsonEntry mirrors the embedded-block JSON shape. Times travel as strings
// so that open end times and group entries can serialize as null.
type jsonEntry struct {
	Name       string      `json:"name"`
	StartTime  *string     `json:"startTime"`
	EndTime    *string     `json:"endTime"`
	SubEntries []jsonEntry `json:"subEntries,omitempty"`
}

type jsonTimekeep struct {
	Entries []jsonEntry `json:"entries"`
}

// Parse decodes a timekeep record from raw block JSON. A startTime that is
// absent, null, or not a parsable instant leaves the entry a pure group;
// the leaf test downstream is "has an orderable start instant", decided
// here once.
func Parse(data []byte) (Timekeep, error) {
	var raw jsonTimekeep
	if err := json.Unmarshal(data, &raw); err != nil {
		return Timekeep{}, fmt.Errorf("decoding timekeep block: %w", err)
	}
	tk := Timekeep{Entries: fromJSONEntries(raw.Entries)}
	return tk, nil
}

func fromJSONEntries(raw []jsonEntry) []Entry {
	if len(raw) == 0 {
		return nil
	}
	entries := make([]Entry, 0, len(raw))
	for _, r := range raw {
		entries = append(entries, Entry{
			Name:       r.Name,
			StartTime:  parseInstant(r.StartTime),
			EndTime:    parseInstant(r.EndTime),
			SubEntries: fromJSONEntries(r.SubEntries),
		})
	}
	return entries
}

// parseInstant converts a wire timestamp to a time, or nil when the value
// is missing or does not behave as an instant.
func parseInstant(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t
		}
	}
	return nil
}

// Marshal encodes a record back to block JSON. Only the wire fields are
// written; runtime-only data (selection ids, ordinals) never lives on the
// record and therefore cannot leak into a document.
func Marshal(tk Timekeep) ([]byte, error) {
	raw := jsonTimekeep{Entries: toJSONEntries(tk.Entries)}
	if raw.Entries == nil {
		raw.Entries = []jsonEntry{}
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding timekeep block: %w", err)
	}
	return data, nil
}

func toJSONEntries(entries []Entry) []jsonEntry {
	if len(entries) == 0 {
		return nil
	}
	raw := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		raw = append(raw, jsonEntry{
			Name:       e.Name,
			StartTime:  formatInstant(e.StartTime),
			EndTime:    formatInstant(e.EndTime),
			SubEntries: toJSONEntries(e.SubEntries),
		})
	}
	return raw
}

func formatInstant(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(timestampLayout)
	return &s
}

// StripExtension removes a trailing .md from a document path for use in
// qualified names.
func StripExtension(path string) string {
	return strings.TrimSuffix(path, ".md")
}
