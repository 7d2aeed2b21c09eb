package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func seedVault(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	block := "```timekeep\n" +
		`{"entries": [{"name": "Write", "startTime": "2024-05-01T10:00:00.000Z", "endTime": "2024-05-01T11:00:00.000Z"}]}` +
		"\n```\n"
	if err := os.WriteFile(filepath.Join(root, "A.md"), []byte(block), 0o644); err != nil {
		t.Fatalf("seed vault: %v", err)
	}
	return root
}

func TestReportWritesArtifact(t *testing.T) {
	out := filepath.Join(t.TempDir(), "merged.csv")
	r := Report{
		Vault:    seedVault(t),
		Location: time.UTC,
		Format:   "csv",
		Output:   out,
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	if !strings.Contains(string(data), "[[A]] - Write") {
		t.Fatalf("artifact missing merged entry:\n%s", data)
	}
}

func TestReportUnknownFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "merged.out")
	r := Report{
		Vault:    seedVault(t),
		Location: time.UTC,
		Format:   "xml",
		Output:   out,
	}
	if err := r.Do(context.Background()); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestReportPDFRequiresOutput(t *testing.T) {
	r := Report{
		Vault:    seedVault(t),
		Location: time.UTC,
		Format:   "pdf",
	}
	if err := r.Do(context.Background()); err == nil {
		t.Fatal("expected error for pdf without an output path")
	}
}
