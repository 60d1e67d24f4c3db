package cmd

import (
	"fmt"

	"storefront/infrastructure/persistence/gormdb"
	"storefront/infrastructure/persistence/memory"
	"storefront/infrastructure/persistence/retry"

	"github.com/spf13/cobra"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	var (
		seedFile string
		noSeed   bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create tables and seed the catalog",
		Long: `Create the kv_entries and products tables in the configured database
and upsert the catalog seed file. Re-running is safe: existing products are
overwritten by the seed, other products are left alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cfg.Database.Type == "memory" {
				return fmt.Errorf("database.type is memory, nothing to migrate")
			}

			ctx := cmd.Context()
			db, err := gormdb.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer gormdb.Close(db)

			if err := gormdb.AutoMigrate(ctx, db); err != nil {
				return fmt.Errorf("auto migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")

			if noSeed {
				return nil
			}
			if seedFile == "" {
				seedFile = cfg.Catalog.SeedFile
			}
			products, err := memory.LoadSeed(seedFile)
			if err != nil {
				return err
			}
			repo := gormdb.NewProductRepository(db, retry.FromAppConfig(cfg.Database.Retry))
			if err := repo.Seed(ctx, products); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products from %s\n", len(products), seedFile)
			return nil
		},
	}
	cmd.Flags().StringVar(&seedFile, "seed", "", "Catalog seed file (default: catalog.seed_file)")
	cmd.Flags().BoolVar(&noSeed, "no-seed", false, "Only migrate the schema")
	return cmd
}
