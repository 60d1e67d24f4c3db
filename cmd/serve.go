package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API until SIGINT or SIGTERM.

Storage follows database.type: memory keeps everything in process,
sqlite and mysql persist carts, wishlists and preferences in the
kv_entries table and serve the catalog from the products table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				opts.cfg.Server.Port = port
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			app, err := NewBuilder(opts.cfg).Build(ctx)
			if err != nil {
				return err
			}
			return app.Run(ctx)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Override server.port")
	return cmd
}

