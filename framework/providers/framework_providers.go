package providers

import (
	"context"

	"go.uber.org/zap"

	"github.com/km-arc/go-beans/framework/config"
	"github.com/km-arc/go-beans/framework/container"
	"github.com/km-arc/go-beans/framework/database"
	"github.com/km-arc/go-beans/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider binds the loaded configuration.
//
// Bound abstracts:
//   - "config"  → *config.Config
type ConfigServiceProvider struct {
	container.BaseProvider
	Config *config.Config
}

func (p *ConfigServiceProvider) Register(app *container.Container) error {
	app.Instance("config", p.Config)
	return nil
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider binds the application logger.
//
// Bound abstracts:
//   - "logger"  → *zap.Logger
type LogServiceProvider struct {
	container.BaseProvider
	Logger *zap.Logger
}

func (p *LogServiceProvider) Register(app *container.Container) error {
	app.Instance("logger", p.Logger)
	return nil
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Bound abstracts:
//   - "router"  → *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) error {
	app.Singleton("router", func(c *container.Container) (any, error) {
		logger, err := container.Resolve[*zap.Logger](c, "logger")
		if err != nil {
			return nil, err
		}
		return routing.New(logger), nil
	})
	return nil
}

// ── DatabaseServiceProvider ───────────────────────────────────────────────────

// DatabaseServiceProvider opens the SQL database described by config.DB.
//
// Bound abstracts:
//   - "db"  → *sql.DB (closed on application shutdown)
type DatabaseServiceProvider struct {
	container.BaseProvider
}

func (p *DatabaseServiceProvider) Register(app *container.Container) error {
	app.Singleton("db", func(c *container.Container) (any, error) {
		cfg, err := container.Resolve[*config.Config](c, "config")
		if err != nil {
			return nil, err
		}
		return database.Open(context.Background(), cfg.DB.Driver, cfg.DB.Path)
	})
	app.Tag([]string{"db"}, container.TagClosable)
	return nil
}
