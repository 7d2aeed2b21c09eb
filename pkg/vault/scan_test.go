package vault

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeDoc(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

const taskBlock = "```timekeep\n" +
	`{"entries": [{"name": "Task", "startTime": "2024-05-01T09:00:00.000Z", "endTime": null}]}` +
	"\n```\n"

func TestScanVault(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "A.md", "# A\n\n"+taskBlock)
	writeDoc(t, root, "Notes/B.md", taskBlock+"\nprose\n"+taskBlock)
	writeDoc(t, root, "Notes/empty.md", "no blocks here\n")
	writeDoc(t, root, "ignored.txt", taskBlock)

	records, err := Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	wantPaths := []string{"A.md", "Notes/B.md", "Notes/B.md"}
	wantOrdinals := []int{0, 0, 1}
	for i, r := range records {
		if r.SourcePath != wantPaths[i] || r.Ordinal != wantOrdinals[i] {
			t.Fatalf("record %d is %s#%d, want %s#%d", i, r.SourcePath, r.Ordinal, wantPaths[i], wantOrdinals[i])
		}
		if r.ID == "" {
			t.Fatalf("record %d has no id", i)
		}
		if r.Leaves() != 1 {
			t.Fatalf("record %d has %d leaves, want 1", i, r.Leaves())
		}
	}
}

func TestScanSkipsMalformedBlocks(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "ok.md", taskBlock)
	writeDoc(t, root, "broken.md", "```timekeep\n{not json at all\n```\n")

	records, err := Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].SourcePath != "ok.md" {
		t.Fatalf("got %+v, want only ok.md", records)
	}
}

func TestScanSkipsHiddenDirectories(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, ".obsidian/workspace.md", taskBlock)
	writeDoc(t, root, "visible.md", taskBlock)

	records, err := Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].SourcePath != "visible.md" {
		t.Fatalf("got %+v, want only visible.md", records)
	}
}

func TestScanMissingRoot(t *testing.T) {
	if _, err := Scan(context.Background(), filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing vault root")
	}
}

func TestScanCanceledContext(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 50; i++ {
		writeDoc(t, root, filepath.Join("bulk", string(rune('a'+i%26))+".md"), taskBlock)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Scan(ctx, root); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestSelectRecords(t *testing.T) {
	records := []Record{
		{SourcePath: "Notes/Project.md"},
		{SourcePath: "Notes/Other.md"},
		{SourcePath: "Journal/May.md"},
	}

	kept := SelectRecords(records, []string{"project", "journal"})
	if len(kept) != 2 {
		t.Fatalf("got %d records, want 2", len(kept))
	}
	if kept[0].SourcePath != "Notes/Project.md" || kept[1].SourcePath != "Journal/May.md" {
		t.Fatalf("selection order wrong: %+v", kept)
	}

	if got := SelectRecords(records, nil); len(got) != 3 {
		t.Fatalf("empty selectors should keep everything")
	}
}

func TestFilterRecords(t *testing.T) {
	records := []Record{
		{SourcePath: "Notes/Project.md"},
		{SourcePath: "Journal/May.md"},
	}
	if got := FilterRecords(records, "PROJ"); len(got) != 1 {
		t.Fatalf("case-insensitive filter failed: %+v", got)
	}
	if got := FilterRecords(records, ""); len(got) != 2 {
		t.Fatalf("empty query should keep everything")
	}
}
