package main

import (
	"context"
	"log/slog"
	"time"

	"vplmon/internal/errors"
	"vplmon/internal/infra/persistence/postgres"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the notification preference tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Postgres == nil {
				return errors.New("postgres configuration is required")
			}

			db, err := pgLib.New(cfg.Postgres)
			if err != nil {
				return errors.Wrap(err, "failed to create PostgreSQL client")
			}

			sqlDB, err := db.DB()
			if err != nil {
				return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
			}
			defer sqlDB.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}

			logger.Info("Preference tables migrated", slog.String("profile", cfg.Preferences.Profile))

			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "maximum time to spend migrating")

	return cmd
}
