package main

import (
	"fmt"

	"github.com/qolzam/jobly/internal/database/migrations"
	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/qolzam/jobly/internal/pkg/log"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := platformconfig.LoadFromEnv()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ctx := cmd.Context()
			client, err := postgres.NewClient(ctx, cfg.Database.Postgres, cfg.Tracing)
			if err != nil {
				return err
			}
			defer client.Close()

			if err := migrations.Apply(ctx, client.DB()); err != nil {
				return err
			}
			log.Info("schema is up to date")
			return nil
		},
	}
}
