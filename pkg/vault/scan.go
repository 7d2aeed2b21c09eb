package vault

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"tableflip.dev/timekeep/pkg/timekeep"
)

// scanConcurrency bounds how many documents are read at once.
const scanConcurrency = 25

// Scan walks the vault rooted at root and returns every timekeep record
// embedded in its markdown documents, ordered by document path and block
// position. Documents are read concurrently in a bounded pool; a single
// document that cannot be read or parsed is logged and contributes zero
// records, it never aborts the scan of its siblings. Only a failure to
// enumerate the vault itself is returned as an error.
func Scan(ctx context.Context, root string) ([]Record, error) {
	paths, err := listDocuments(root)
	if err != nil {
		return nil, fmt.Errorf("scanning vault %s: %w", root, err)
	}

	perDoc := make([][]Record, len(paths))
	sem := make(chan struct{}, scanConcurrency)
	var wg sync.WaitGroup

	for i, rel := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int, rel string) {
			defer wg.Done()
			defer func() { <-sem }()
			perDoc[i] = scanDocument(root, rel)
		}(i, rel)
	}
	wg.Wait()

	var records []Record
	for _, docRecords := range perDoc {
		records = append(records, docRecords...)
	}
	return records, nil
}

// listDocuments returns vault-relative paths of all markdown documents in
// lexical walk order.
func listDocuments(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip hidden directories such as .obsidian and .git.
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// scanDocument extracts and parses every block of one document. Failures
// are swallowed here on purpose: a broken document reduces the input, it
// does not break the merge.
func scanDocument(root, rel string) []Record {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		slog.Warn("skipping unreadable document", "path", rel, "err", err)
		return nil
	}

	var records []Record
	for ordinal, block := range extractBlocks(data) {
		tk, err := timekeep.Parse([]byte(block))
		if err != nil {
			slog.Warn("skipping malformed timekeep block", "path", rel, "ordinal", ordinal, "err", err)
			continue
		}
		records = append(records, newRecord(rel, ordinal, tk))
	}
	return records
}
