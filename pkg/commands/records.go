package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/timekeep/pkg/commands/options"
	"tableflip.dev/timekeep/pkg/runner/records"
)

func addRecords(topLevel *cobra.Command) {
	vo := &options.VaultOptions{}
	oo := &options.OutputOptions{}

	var query string
	var showID bool

	cmd := &cobra.Command{
		Use:   "records",
		Short: "List the timekeep records discovered in the vault.",
		Example: `
timekeep records
timekeep records --query projects/
timekeep records --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vaultRoot, _, err := resolveVault(vo)
			if err != nil {
				return err
			}
			s := records.Records{
				Vault:  vaultRoot,
				Query:  query,
				ShowID: showID,
				JSON:   oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddVaultArg(cmd, vo)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().StringVarP(&query, "query", "q", "",
		"Filter records by a case-insensitive path substring.")
	cmd.Flags().BoolVar(&showID, "show-id", false,
		"Show the per-discovery record ids.")

	topLevel.AddCommand(cmd)
}
