package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppendToDocument appends a rendered block to a markdown document inside
// the vault, separated from existing content by a blank line.
func AppendToDocument(root, rel, block string) error {
	path := filepath.Join(root, filepath.FromSlash(rel))
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", rel, err)
	}

	var b strings.Builder
	b.Write(existing)
	if len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		b.WriteString("\n")
	}
	if len(existing) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(block)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}
