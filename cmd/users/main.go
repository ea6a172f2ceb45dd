// Command users serves the seeded user list over HTTP.
//
// Once the listener is bound it creates the users table, clears it and
// inserts the demo users. GET / lists them as JSON.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/km-arc/go-beans/framework/app"
	"github.com/km-arc/go-beans/framework/config"
	"github.com/km-arc/go-beans/framework/container"
	"github.com/km-arc/go-beans/framework/logging"
	"github.com/km-arc/go-beans/framework/providers"
	"github.com/km-arc/go-beans/internal/user"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "users:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	application, err := newApplication(cfg, logger)
	if err != nil {
		logger.Error("failed to build application", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		logger.Error("server error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// newApplication registers the database and user providers and schedules
// the seed sequence for when the server is ready.
func newApplication(cfg *config.Config, logger *zap.Logger) (*app.Application, error) {
	application, err := app.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := application.Register(&providers.DatabaseServiceProvider{}); err != nil {
		return nil, err
	}
	if err := application.Register(&user.ServiceProvider{}); err != nil {
		return nil, err
	}

	application.OnReady("seed users", func(ctx context.Context) error {
		repo, err := container.Resolve[user.Repository](application.Container, "users.repository")
		if err != nil {
			return err
		}
		return user.Seed(ctx, repo, logger)
	})
	return application, nil
}
