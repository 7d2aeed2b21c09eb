package picker

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/timekeep/pkg/timekeep"
	"tableflip.dev/timekeep/pkg/vault"
)

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testRecord(id, path string, ordinal int, starts ...time.Time) vault.Record {
	entries := make([]timekeep.Entry, 0, len(starts))
	for i, s := range starts {
		s := s
		entries = append(entries, timekeep.Entry{Name: "Task " + string(rune('A'+i)), StartTime: &s})
	}
	return vault.Record{
		ID:         id,
		SourcePath: path,
		Ordinal:    ordinal,
		Keep:       timekeep.Timekeep{Entries: entries},
	}
}

func loaded(t *testing.T, records ...vault.Record) Model {
	t.Helper()
	m := New(".", time.UTC, nil)
	return press(t, m, recordsLoadedMsg{Records: records})
}

func TestModelLoadsRecords(t *testing.T) {
	at := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	m := loaded(t,
		testRecord("1", "A.md", 0, at),
		testRecord("2", "B.md", 0, at),
	)

	if m.loading {
		t.Fatalf("still loading after recordsLoadedMsg")
	}
	if len(m.visible) != 2 {
		t.Fatalf("got %d visible records, want 2", len(m.visible))
	}
}

func TestModelScanError(t *testing.T) {
	m := New(".", time.UTC, nil)
	m = press(t, m, scanErrorMsg{Err: errors.New("boom")})

	if !strings.Contains(m.View(), "failed to load entries") {
		t.Fatalf("scan failure not surfaced:\n%s", m.View())
	}
}

func TestModelToggleSelection(t *testing.T) {
	at := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	m := loaded(t, testRecord("1", "A.md", 0, at))

	m = press(t, m, runes(" "))
	if m.SelectedCount() != 1 {
		t.Fatalf("space did not select")
	}
	m = press(t, m, runes(" "))
	if m.SelectedCount() != 0 {
		t.Fatalf("space did not deselect")
	}
}

func TestModelToggleAll(t *testing.T) {
	at := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	m := loaded(t,
		testRecord("1", "A.md", 0, at),
		testRecord("2", "B.md", 0, at),
	)

	m = press(t, m, runes("a"))
	if m.SelectedCount() != 2 {
		t.Fatalf("a did not select everything")
	}
	m = press(t, m, runes("a"))
	if m.SelectedCount() != 0 {
		t.Fatalf("a did not clear a full selection")
	}
}

func TestModelSearchFilters(t *testing.T) {
	at := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	m := loaded(t,
		testRecord("1", "Notes/Project.md", 0, at),
		testRecord("2", "Journal/May.md", 0, at),
	)

	m = press(t, m, runes("/"))
	for _, r := range "proj" {
		m = press(t, m, runes(string(r)))
	}
	if len(m.visible) != 1 {
		t.Fatalf("query left %d visible, want 1", len(m.visible))
	}
	if m.records[m.visible[0]].SourcePath != "Notes/Project.md" {
		t.Fatalf("wrong record visible")
	}

	// Leaving search keeps the filter applied.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.visible) != 1 {
		t.Fatalf("filter dropped on blur")
	}
}

func TestModelIncompleteRangeNotice(t *testing.T) {
	at := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	m := loaded(t, testRecord("1", "A.md", 0, at))
	m = press(t, m, runes(" "))

	m = press(t, m, runes("d"))
	for _, r := range "2024-05-01" {
		m = press(t, m, runes(string(r)))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.done {
		t.Fatalf("dialog closed despite range error")
	}
	if !strings.Contains(m.View(), "Provide both dates or neither") {
		t.Fatalf("range notice missing:\n%s", m.View())
	}
}

func TestModelNoSelectionNotice(t *testing.T) {
	at := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	m := loaded(t, testRecord("1", "A.md", 0, at))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.done {
		t.Fatalf("dialog closed with nothing selected")
	}
	if !strings.Contains(m.View(), "Nothing to merge") {
		t.Fatalf("empty-selection notice missing:\n%s", m.View())
	}
}

func TestModelCreate(t *testing.T) {
	early := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	late := early.Add(2 * time.Hour)
	m := loaded(t,
		testRecord("1", "A.md", 0, late),
		testRecord("2", "B.md", 0, early),
	)

	m = press(t, m, runes("a"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.done {
		t.Fatalf("dialog did not close on a successful merge")
	}
	entries, canceled := m.Result()
	if canceled {
		t.Fatalf("successful merge reported as canceled")
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Name != "[[B]] - Task A" || entries[1].Name != "[[A]] - Task A" {
		t.Fatalf("merge order wrong: %q, %q", entries[0].Name, entries[1].Name)
	}
}

func TestModelCancel(t *testing.T) {
	at := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	m := loaded(t, testRecord("1", "A.md", 0, at))
	m = press(t, m, runes(" "))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if _, canceled := m.Result(); !canceled {
		t.Fatalf("esc should cancel")
	}
}

func TestModelReselectAcrossRescan(t *testing.T) {
	at := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	m := loaded(t,
		testRecord("1", "A.md", 0, at),
		testRecord("2", "B.md", 0, at),
	)
	m = press(t, m, runes(" ")) // selects A.md

	// A rescan mints fresh ids and drops B.md.
	m = press(t, m, recordsLoadedMsg{Records: []vault.Record{
		testRecord("7", "A.md", 0, at),
	}})

	if m.SelectedCount() != 1 {
		t.Fatalf("selection lost across rescan")
	}
	if !m.selected["7"] {
		t.Fatalf("selection not re-keyed to the fresh id")
	}
}

func TestModelVaultChangeTriggersRescan(t *testing.T) {
	root := t.TempDir()
	block := "```timekeep\n" +
		`{"entries": [{"name": "Task", "startTime": "2024-05-01T09:00:00.000Z", "endTime": null}]}` +
		"\n```\n"
	if err := os.WriteFile(filepath.Join(root, "A.md"), []byte(block), 0o644); err != nil {
		t.Fatalf("seed vault: %v", err)
	}

	events := make(chan vault.Event, 1)
	m := New(root, time.UTC, events)

	next, cmd := m.Update(vaultChangedMsg{})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("vault change should schedule a rescan")
	}

	// Run the rescan the command would have run and feed its result back.
	msg := scanCmd(root)()
	loadedMsg, ok := msg.(recordsLoadedMsg)
	if !ok {
		t.Fatalf("scan produced %T", msg)
	}
	m = press(t, m, loadedMsg)

	if len(m.records) != 1 || m.records[0].SourcePath != "A.md" {
		t.Fatalf("rescan did not refresh records: %+v", m.records)
	}
}

func TestModelCursorClampedByFilter(t *testing.T) {
	at := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	m := loaded(t,
		testRecord("1", "Notes/A.md", 0, at),
		testRecord("2", "Notes/B.md", 0, at),
		testRecord("3", "Journal/C.md", 0, at),
	)
	m = press(t, m, runes("j"))
	m = press(t, m, runes("j"))
	if m.cursor != 2 {
		t.Fatalf("cursor at %d, want 2", m.cursor)
	}

	m = press(t, m, runes("/"))
	for _, r := range "journal" {
		m = press(t, m, runes(string(r)))
	}
	if m.cursor >= len(m.visible) {
		t.Fatalf("cursor %d out of range for %d visible", m.cursor, len(m.visible))
	}
}
