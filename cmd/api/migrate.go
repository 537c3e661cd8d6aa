package main

import (
	"errors"

	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/database/migration"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/metrics"
	"github.com/spf13/cobra"
)

var errSeedInProduction = errors.New("refusing to seed demo accounts in production")

func newMigrateCommand() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema to the current version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer app.close()

			if seed && app.cfg.IsProduction() {
				return errSeedInProduction
			}

			if err := app.db.Migrate(ctx); err != nil {
				app.logger.Error("Failed to run migrations", map[string]any{
					"error": err.Error(),
				})
				return err
			}

			if !seed {
				return nil
			}

			services, err := app.buildUseCases(metrics.NoopRecorder{})
			if err != nil {
				return err
			}
			return migration.SeedDemoAccounts(ctx, services.accounts, services.transactions, app.logger)
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "create demo accounts with opening balances")

	return cmd
}
