package commands

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/timekeep/pkg/commands/options"
	"tableflip.dev/timekeep/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	vo := &options.VaultOptions{}

	var transport string
	var httpAddr string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve vault records and the merge engine over the Model Context Protocol.",
		Example: `
timekeep mcp
timekeep mcp --transport http --http-addr 127.0.0.1:8080
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vaultRoot, cfg, err := resolveVault(vo)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := mcp.Runner{
				Service:   mcp.NewService(vaultRoot, cfg.Location()),
				Name:      "timekeep",
				Version:   version,
				Transport: mcp.Transport(transport),
			}
			if r.Transport == mcp.TransportHTTP {
				r.HTTPListenAddr = httpAddr
				r.OnHTTPListening = func(addr net.Addr) {
					fmt.Fprintf(os.Stderr, "MCP listening on %s\n", addr)
				}
			}
			return r.Do(ctx)
		},
	}

	options.AddVaultArg(cmd, vo)
	cmd.Flags().StringVar(&transport, "transport", "stdio",
		"MCP transport: stdio or http.")
	cmd.Flags().StringVar(&httpAddr, "http-addr", "127.0.0.1:8080",
		"Listen address for the http transport.")

	topLevel.AddCommand(cmd)
}
