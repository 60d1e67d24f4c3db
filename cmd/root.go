/*
Package cmd - the storefront command line

	storefront serve             run the HTTP API
	storefront migrate           create tables and seed the catalog
	storefront quote <subtotal>  price a subtotal with the configured policy
	storefront token <user-id>   issue a session token for local testing
*/
package cmd

import (
	"fmt"

	"storefront/config"
	"storefront/pkg/logger"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	cfg        *config.Config
}

// NewRootCommand builds the storefront command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Cart, wishlist and checkout API for the storefront",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			if err := logger.Init(&cfg.Log, cfg.App.Env); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default: ./config.yaml or ./config/config.yaml)")

	root.AddCommand(newServeCommand(opts))
	root.AddCommand(newMigrateCommand(opts))
	root.AddCommand(newQuoteCommand(opts))
	root.AddCommand(newTokenCommand(opts))
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
