package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/timekeep/pkg/commands/options"
	"tableflip.dev/timekeep/pkg/runner/dialog"
)

func addUI(topLevel *cobra.Command) {
	vo := &options.VaultOptions{}

	var appendTo string
	var table bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Pick records interactively and merge them.",
		Long: options.Wrap80("Opens a terminal dialog listing every discovered record with " +
			"checkboxes, search-as-you-type path filtering, and optional date-range " +
			"inputs. Confirming merges the ticked records."),
		Example: `
timekeep ui
timekeep ui --append "Reports/May.md"
timekeep ui --watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vaultRoot, cfg, err := resolveVault(vo)
			if err != nil {
				return err
			}
			s := dialog.Dialog{
				Vault:    vaultRoot,
				Location: cfg.Location(),
				AppendTo: appendTo,
				Table:    table,
				Watch:    watch,
			}
			return s.Do(context.Background())
		},
	}

	options.AddVaultArg(cmd, vo)
	cmd.Flags().StringVar(&appendTo, "append", "",
		"Append the merged block to this vault document instead of printing it.")
	cmd.Flags().BoolVar(&table, "table", false,
		"Print the merged entries as a table instead of a block.")
	cmd.Flags().BoolVar(&watch, "watch", false,
		"Refresh the record list when the vault changes while the dialog is open.")

	topLevel.AddCommand(cmd)
}
