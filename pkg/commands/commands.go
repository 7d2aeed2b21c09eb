// Package commands wires the cobra command tree for the timekeep CLI.
package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/timekeep/pkg/commands/options"
	"tableflip.dev/timekeep/pkg/config"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "timekeep",
		Short: options.Wrap80("Merge timekeep time-tracking records embedded in a markdown vault."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addRecords(topLevel)
	addMerge(topLevel)
	addExport(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
}

// resolveVault returns the vault root and config, honoring a --vault
// override.
func resolveVault(vo *options.VaultOptions) (string, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", config.Config{}, err
	}
	vaultRoot := cfg.Vault
	if vo.Vault != "" {
		vaultRoot = vo.Vault
	}
	return vaultRoot, cfg, nil
}
