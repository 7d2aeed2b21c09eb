package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tableflip.dev/timekeep/pkg/merge"
)

func seedVault(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	write := func(rel, content string) {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}

	write("Notes/Project.md", "```timekeep\n"+
		`{"entries": [{"name": "Write", "startTime": "2024-05-01T10:00:00.000Z", "endTime": "2024-05-01T11:00:00.000Z"}]}`+
		"\n```\n")
	write("Journal/May.md", "```timekeep\n"+
		`{"entries": [{"name": "Review", "startTime": "2024-05-01T09:00:00.000Z", "endTime": null}]}`+
		"\n```\n")
	return root
}

func TestServiceListRecords(t *testing.T) {
	svc := NewService(seedVault(t), time.UTC)

	all, err := svc.ListRecords(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d records, want 2", len(all))
	}
	for _, r := range all {
		if r.Leaves != 1 {
			t.Fatalf("record %s has %d leaves, want 1", r.SourcePath, r.Leaves)
		}
	}

	filtered, err := svc.ListRecords(context.Background(), "journal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtered) != 1 || filtered[0].SourcePath != "Journal/May.md" {
		t.Fatalf("query filter returned %+v", filtered)
	}
}

func TestServiceMergeRecords(t *testing.T) {
	svc := NewService(seedVault(t), time.UTC)

	result, err := svc.MergeRecords(context.Background(), nil, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EntryCount != 2 || result.Records != 2 {
		t.Fatalf("summary %+v", result)
	}
	if !strings.HasPrefix(result.Block, "```timekeep\n") {
		t.Fatalf("block not fenced:\n%s", result.Block)
	}
	// Review starts an hour earlier and must come first.
	if strings.Index(result.Block, "Review") > strings.Index(result.Block, "Write") {
		t.Fatalf("entries out of order:\n%s", result.Block)
	}
}

func TestServiceMergeRecordsSelection(t *testing.T) {
	svc := NewService(seedVault(t), time.UTC)

	result, err := svc.MergeRecords(context.Background(), []string{"project"}, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Records != 1 || result.EntryCount != 1 {
		t.Fatalf("summary %+v", result)
	}
}

func TestServiceMergeRecordsRangeErrors(t *testing.T) {
	svc := NewService(seedVault(t), time.UTC)

	if _, err := svc.MergeRecords(context.Background(), nil, "2024-05-01", ""); !errors.Is(err, merge.ErrIncompleteRange) {
		t.Fatalf("expected ErrIncompleteRange, got %v", err)
	}
	if _, err := svc.MergeRecords(context.Background(), []string{"no-such-path"}, "", ""); !errors.Is(err, merge.ErrNoEntries) {
		t.Fatalf("expected ErrNoEntries, got %v", err)
	}
}
