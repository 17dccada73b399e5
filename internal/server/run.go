package server

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/pkg/log"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
)

// Run serves app until ctx is cancelled, then drains in-flight requests for
// at most cfg.ShutdownTimeout.
func Run(ctx context.Context, app *fiber.App, cfg platformconfig.ServerConfig) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("jobly listening on %s", cfg.Addr())
		errCh <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			return err
		}
		return <-errCh
	}
}
