package picker

import (
	"tableflip.dev/timekeep/pkg/vault"
)

// recordsLoadedMsg is sent when a vault scan completes.
type recordsLoadedMsg struct {
	Records []vault.Record
}

// scanErrorMsg is sent when the vault scan itself fails; per-document
// failures never reach here, they only shrink the record list.
type scanErrorMsg struct {
	Err error
}

// vaultChangedMsg is sent when the watcher observes a document change and
// the record list should be refreshed.
type vaultChangedMsg struct{}

// watchClosedMsg is sent when the watcher channel closes.
type watchClosedMsg struct{}
