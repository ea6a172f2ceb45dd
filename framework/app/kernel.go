package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/km-arc/go-beans/framework/config"
	"github.com/km-arc/go-beans/framework/container"
	"github.com/km-arc/go-beans/framework/providers"
	"github.com/km-arc/go-beans/framework/routing"
)

// ReadyListener runs once the object graph is built and the HTTP listener is
// bound. Listeners run one after another on a single goroutine, in the order
// they were added. ctx is cancelled when the application shuts down.
type ReadyListener func(ctx context.Context) error

type namedListener struct {
	name string
	fn   ReadyListener
}

// Application is the top-level application container.
// It embeds the bean Container and ProviderRegistry so user code can call
// app.Singleton(), app.Register() directly.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry

	logger *zap.Logger
	ready  []namedListener
}

// New creates the application and registers the core providers
// (config, logger, router).
func New(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
		logger:    logger,
	}

	c.AfterResolving(func(abstract string, instance any) {
		logger.Debug("bean created", zap.String("bean", abstract), zap.String("type", fmt.Sprintf("%T", instance)))
	})

	for _, p := range []container.ServiceProvider{
		&providers.ConfigServiceProvider{Config: cfg},
		&providers.LogServiceProvider{Logger: logger},
		&providers.RoutingServiceProvider{},
	} {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot runs the Boot phase on all providers.
func (a *Application) Boot() error {
	return a.Providers.Boot()
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.MustResolve[*config.Config](a.Container, "config")
}

// Logger returns the application logger.
func (a *Application) Logger() *zap.Logger { return a.logger }

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.MustResolve[*routing.Router](a.Container, "router")
}

// OnReady adds a listener fired after the server starts accepting
// connections. Errors are logged, never dropped.
func (a *Application) OnReady(name string, fn ReadyListener) {
	a.ready = append(a.ready, namedListener{name: name, fn: fn})
}

// Run boots the application (if needed), binds APP_PORT and serves until
// ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	addr := ":" + a.Config().App.Port
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve serves HTTP on ln until ctx is cancelled, then shuts down gracefully
// and closes every resolved closable bean.
func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	if !a.Providers.Booted() {
		if err := a.Boot(); err != nil {
			ln.Close()
			return err
		}
	}
	cfg := a.Config()

	srv := &http.Server{
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()
	a.logger.Info("server started",
		zap.String("addr", ln.Addr().String()),
		zap.String("env", cfg.App.Env))

	readyCtx, cancelReady := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.fireReady(readyCtx)
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	a.logger.Info("shutting down server")
	cancelReady()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.App.ShutdownSeconds)*time.Second)
	defer cancel()
	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		err = errors.Join(err, fmt.Errorf("shutdown: %w", shutdownErr))
	}
	wg.Wait()

	if closeErr := a.Close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	a.logger.Info("server stopped")
	return err
}

func (a *Application) fireReady(ctx context.Context) {
	for _, l := range a.ready {
		if ctx.Err() != nil {
			return
		}
		if err := l.fn(ctx); err != nil {
			a.logger.Error("ready listener failed", zap.String("listener", l.name), zap.Error(err))
			continue
		}
		a.logger.Debug("ready listener done", zap.String("listener", l.name))
	}
}

// Close closes every bean tagged container.TagClosable that was resolved,
// most recently registered first.
func (a *Application) Close() error {
	keys := a.TaggedKeys(container.TagClosable)
	slices.Reverse(keys)

	var errs []error
	for _, key := range keys {
		if !a.Resolved(key) {
			continue
		}
		inst, err := a.Make(key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if c, ok := inst.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", key, err))
			}
		}
	}
	return errors.Join(errs...)
}
