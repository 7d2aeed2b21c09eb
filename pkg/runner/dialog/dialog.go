// Package dialog provides the runner that hosts the interactive record
// picker and emits whatever the user confirmed.
package dialog

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/timekeep/pkg/export"
	"tableflip.dev/timekeep/pkg/printers"
	"tableflip.dev/timekeep/pkg/tui/picker"
	"tableflip.dev/timekeep/pkg/vault"
)

// Dialog runs the interactive picker over the vault.
type Dialog struct {
	Vault    string
	Location *time.Location

	// AppendTo appends the confirmed block to a document instead of
	// printing it.
	AppendTo string
	// Table prints the merged entries as a table instead of a block.
	Table bool
	// Watch refreshes the record list while the dialog is open.
	Watch bool
}

// Do opens the dialog and, when the user confirms, writes the merged
// output the same way the non-interactive merge does.
func (n *Dialog) Do(ctx context.Context) error {
	var events <-chan vault.Event
	if n.Watch {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		ch, err := vault.Watch(watchCtx, n.Vault)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: vault watch unavailable: %v\n", err)
		} else {
			events = ch
		}
	}

	program := tea.NewProgram(picker.New(n.Vault, n.Location, events))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}

	model, ok := final.(picker.Model)
	if !ok {
		return fmt.Errorf("unexpected model type %T", final)
	}
	merged, canceled := model.Result()
	if canceled {
		return nil
	}

	if n.Table {
		pp := printers.PrettyPrint{}
		fmt.Println("")
		pp.Title("Merged timekeep")
		pp.Merged(merged...)
		return nil
	}

	block, err := export.Block(merged)
	if err != nil {
		return err
	}
	if n.AppendTo != "" {
		if err := export.AppendToDocument(n.Vault, n.AppendTo, block); err != nil {
			return err
		}
		fmt.Printf("Appended merged timekeep (%d entries) to %s\n", len(merged), n.AppendTo)
		return nil
	}
	_, err = fmt.Fprint(os.Stdout, block)
	return err
}
