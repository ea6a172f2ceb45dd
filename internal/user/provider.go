package user

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/km-arc/go-beans/framework/container"
	"github.com/km-arc/go-beans/framework/routing"
)

// ServiceProvider binds the user repository and handler, and mounts the
// handler routes on boot. It needs "db", "logger" and "router".
//
// Bound abstracts:
//   - "users.repository"  → Repository
//   - "users.handler"     → *Handler
type ServiceProvider struct {
	container.BaseProvider
}

func (p *ServiceProvider) Register(app *container.Container) error {
	app.Singleton("users.repository", func(c *container.Container) (any, error) {
		db, err := container.Resolve[*sql.DB](c, "db")
		if err != nil {
			return nil, err
		}
		return Repository(NewRepository(db)), nil
	})
	app.Singleton("users.handler", func(c *container.Container) (any, error) {
		repo, err := container.Resolve[Repository](c, "users.repository")
		if err != nil {
			return nil, err
		}
		logger, err := container.Resolve[*zap.Logger](c, "logger")
		if err != nil {
			return nil, err
		}
		return NewHandler(repo, logger), nil
	})
	return nil
}

func (p *ServiceProvider) Boot(app *container.Container) error {
	h, err := container.Resolve[*Handler](app, "users.handler")
	if err != nil {
		return err
	}
	r, err := container.Resolve[*routing.Router](app, "router")
	if err != nil {
		return err
	}
	h.Routes(r)
	return nil
}
