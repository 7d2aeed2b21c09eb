// Package options defines shared flag helpers for CLI commands.
package options

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/timekeep/pkg/timeutil"
)

// VaultOptions captures the vault root override shared by all commands.
type VaultOptions struct {
	Vault string
}

// AddVaultArg wires the vault flag; empty falls back to configuration.
func AddVaultArg(cmd *cobra.Command, o *VaultOptions) {
	cmd.Flags().StringVar(&o.Vault, "vault", "",
		"Vault root directory. Defaults to the configured vault.")
}

// SelectionOptions captures which records a non-interactive command
// operates on.
type SelectionOptions struct {
	Paths []string
}

// AddSelectionArgs wires the record selection flags.
func AddSelectionArgs(cmd *cobra.Command, o *SelectionOptions) {
	cmd.Flags().StringArrayVarP(&o.Paths, "path", "p", nil,
		Wrap80("Select records whose document path contains this substring. Repeatable; no flag selects every record."))
}

// RangeOptions captures the optional calendar-day window.
type RangeOptions struct {
	From string
	To   string
	Last string
}

// AddRangeArgs wires the date range flags.
func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().StringVar(&o.From, "from", "",
		`Range start date, example: --from="2024-05-01". Requires --to.`)
	cmd.Flags().StringVar(&o.To, "to", "",
		`Range end date, example: --to="2024-05-10". Requires --from.`)
	cmd.Flags().StringVar(&o.Last, "last", "",
		`Trailing window ending today, example: --last=2w. Excludes --from/--to.`)
}

// Dates resolves the flags to the from/to strings the range filter takes.
// A --last window is converted to explicit dates ending today.
func (o *RangeOptions) Dates() (string, string, error) {
	if o.Last == "" {
		return o.From, o.To, nil
	}
	if o.From != "" || o.To != "" {
		return "", "", errors.New("--last cannot be combined with --from/--to")
	}
	window, err := timeutil.ParseWindow(o.Last)
	if err != nil {
		return "", "", err
	}
	from, to := timeutil.WindowDates(time.Now(), window)
	return from, to, nil
}
