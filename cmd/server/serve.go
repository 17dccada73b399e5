package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/cache"
	"github.com/qolzam/jobly/internal/database/migrations"
	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/qolzam/jobly/internal/pkg/log"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/internal/server"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply the schema before serving")
	return cmd
}

func runServe(ctx context.Context, migrate bool) error {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.SetDebug(cfg.Server.Debug)

	client, err := postgres.NewClient(ctx, cfg.Database.Postgres, cfg.Tracing)
	if err != nil {
		return err
	}
	defer client.Close()

	if migrate {
		if err := migrations.Apply(ctx, client.DB()); err != nil {
			return err
		}
	}

	issuer, err := tokens.NewIssuer(cfg.JWT.PrivateKey, cfg.JWT.TokenTTL)
	if err != nil {
		return err
	}

	var storage fiber.Storage
	if cfg.Cache.Enabled {
		redisStorage, err := cache.NewRedisStorage(cfg.Cache.Redis, cfg.Cache.Prefix)
		if err != nil {
			// Limits still apply per instance.
			log.Warn("rate limit counters kept in memory: %v", err)
		} else {
			defer redisStorage.Close()
			storage = redisStorage
		}
	}

	app, err := server.New(server.Dependencies{
		Config:       cfg,
		Repositories: server.NewRepositories(client),
		Tokens:       issuer,
		Storage:      storage,
		Health:       client.HealthCheck,
	})
	if err != nil {
		return err
	}

	return server.Run(ctx, app, cfg.Server)
}
