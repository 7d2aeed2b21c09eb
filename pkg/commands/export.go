package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/timekeep/pkg/commands/options"
	"tableflip.dev/timekeep/pkg/runner/report"
)

func addExport(topLevel *cobra.Command) {
	vo := &options.VaultOptions{}
	so := &options.SelectionOptions{}
	ro := &options.RangeOptions{}

	var format string
	var output string
	var title string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Merge selected records and write the result as an artifact.",
		Example: `
timekeep export --format csv --output merged.csv
timekeep export --format pdf --output merged.pdf --from 2024-05-01 --to 2024-05-31
timekeep export --path projects/
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vaultRoot, cfg, err := resolveVault(vo)
			if err != nil {
				return err
			}
			f := format
			if f == "" {
				f = cfg.ExportFormat
			}
			from, to, err := ro.Dates()
			if err != nil {
				return err
			}
			s := report.Report{
				Vault:    vaultRoot,
				Paths:    so.Paths,
				From:     from,
				To:       to,
				Location: cfg.Location(),
				Format:   f,
				Output:   output,
				Title:    title,
			}
			return s.Do(context.Background())
		},
	}

	options.AddVaultArg(cmd, vo)
	options.AddSelectionArgs(cmd, so)
	options.AddRangeArgs(cmd, ro)
	cmd.Flags().StringVarP(&format, "format", "f", "",
		"Artifact format: md, csv, json, or pdf. Defaults to the configured format.")
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"Artifact path. Text formats default to stdout; pdf requires a path.")
	cmd.Flags().StringVar(&title, "title", "",
		"Artifact title for formats that carry one.")

	topLevel.AddCommand(cmd)
}
