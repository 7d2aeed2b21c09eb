// Package mcp provides the Model Context Protocol server integration for
// timekeep.
package mcp

import (
	"context"
	"time"

	"tableflip.dev/timekeep/pkg/export"
	"tableflip.dev/timekeep/pkg/merge"
	"tableflip.dev/timekeep/pkg/vault"
)

// Service coordinates vault-backed operations shared by the MCP tools.
// Every call scans fresh; the vault is the only store.
type Service struct {
	Vault    string
	Location *time.Location
}

// NewService constructs a Service for the given vault root.
func NewService(vaultRoot string, loc *time.Location) *Service {
	return &Service{Vault: vaultRoot, Location: loc}
}

// RecordDTO is a transport-friendly projection of a discovered record.
type RecordDTO struct {
	ID         string `json:"id"`
	SourcePath string `json:"sourcePath"`
	Ordinal    int    `json:"ordinal"`
	Leaves     int    `json:"leaves"`
}

// ListRecords scans the vault and returns record summaries, optionally
// filtered by a path substring query.
func (s *Service) ListRecords(ctx context.Context, query string) ([]RecordDTO, error) {
	all, err := vault.Scan(ctx, s.Vault)
	if err != nil {
		return nil, err
	}
	all = vault.FilterRecords(all, query)

	out := make([]RecordDTO, 0, len(all))
	for _, r := range all {
		out = append(out, RecordDTO{
			ID:         r.ID,
			SourcePath: r.SourcePath,
			Ordinal:    r.Ordinal,
			Leaves:     r.Leaves(),
		})
	}
	return out, nil
}

// MergeResult carries the merged block and a summary for tool consumers.
type MergeResult struct {
	Block      string `json:"block"`
	EntryCount int    `json:"entryCount"`
	Records    int    `json:"records"`
}

// MergeRecords selects records by path substrings, merges them through the
// engine, and renders the embedded block. Engine errors pass through
// unchanged for the tool layer to report.
func (s *Service) MergeRecords(ctx context.Context, paths []string, from, to string) (MergeResult, error) {
	all, err := vault.Scan(ctx, s.Vault)
	if err != nil {
		return MergeResult{}, err
	}
	selected := vault.SelectRecords(all, paths)

	merged, err := merge.Build(selected, merge.Range{From: from, To: to, Location: s.Location})
	if err != nil {
		return MergeResult{}, err
	}

	block, err := export.Block(merged)
	if err != nil {
		return MergeResult{}, err
	}
	return MergeResult{
		Block:      block,
		EntryCount: len(merged),
		Records:    len(selected),
	}, nil
}
