package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/timekeep/pkg/commands/options"
	"tableflip.dev/timekeep/pkg/runner/create"
)

func addMerge(topLevel *cobra.Command) {
	vo := &options.VaultOptions{}
	so := &options.SelectionOptions{}
	ro := &options.RangeOptions{}

	var appendTo string
	var table bool
	var calendar bool

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge selected records into a single timekeep block.",
		Long: options.Wrap80("Flattens every selected record into path-qualified leaf entries, " +
			"optionally restricts them to an inclusive date range, and emits one " +
			"chronologically ordered timekeep block."),
		Example: `
timekeep merge
timekeep merge --path projects/ --path meetings.md
timekeep merge --from 2024-05-01 --to 2024-05-10
timekeep merge --append "Reports/May.md"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vaultRoot, cfg, err := resolveVault(vo)
			if err != nil {
				return err
			}
			from, to, err := ro.Dates()
			if err != nil {
				return err
			}
			s := create.Create{
				Vault:    vaultRoot,
				Paths:    so.Paths,
				From:     from,
				To:       to,
				Location: cfg.Location(),
				AppendTo: appendTo,
				Table:    table,
				Calendar: calendar,
			}
			return s.Do(context.Background())
		},
	}

	options.AddVaultArg(cmd, vo)
	options.AddSelectionArgs(cmd, so)
	options.AddRangeArgs(cmd, ro)
	cmd.Flags().StringVar(&appendTo, "append", "",
		"Append the merged block to this vault document instead of printing it.")
	cmd.Flags().BoolVar(&table, "table", false,
		"Print the merged entries as a table instead of a block.")
	cmd.Flags().BoolVar(&calendar, "calendar", false,
		"Print a month grid marking the days with merged entries.")

	topLevel.AddCommand(cmd)
}
