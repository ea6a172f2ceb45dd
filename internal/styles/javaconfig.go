package styles

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/km-arc/go-beans/framework/container"
	"github.com/km-arc/go-beans/internal/customer"
	"github.com/km-arc/go-beans/internal/datasource"
	"github.com/km-arc/go-beans/internal/profile"
)

// javaConfig is the graph built by the generated injector: one provider
// function per bean, wired at compile time.
type javaConfig struct {
	DataSource      *datasource.DataSource
	CustomerService *customer.Service
}

func provideDataSource(ctx context.Context) (*datasource.DataSource, error) {
	return datasource.NewEmbedded(ctx)
}

func provideCustomerService(ds *datasource.DataSource, logger *zap.Logger) *customer.Service {
	return customer.NewService(ds, customer.Style(profile.JavaConfig.Token()), logger)
}

var javaConfigSet = wire.NewSet(
	provideDataSource,
	provideCustomerService,
	wire.Struct(new(javaConfig), "*"),
)

const javaConfigBean = "javaConfig"

type javaConfigProvider struct {
	container.BaseProvider
}

func (p *javaConfigProvider) Register(app *container.Container) error {
	app.Singleton(javaConfigBean, func(c *container.Container) (any, error) {
		logger, err := container.Resolve[*zap.Logger](c, "logger")
		if err != nil {
			return nil, err
		}
		return initializeJavaConfig(context.Background(), logger)
	})

	register(app, DataSourceBean, TagDataSource, func(c *container.Container) (any, error) {
		cfg, err := container.Resolve[*javaConfig](c, javaConfigBean)
		if err != nil {
			return nil, err
		}
		return cfg.DataSource, nil
	})
	register(app, customer.BeanName, TagCustomerService, func(c *container.Container) (any, error) {
		cfg, err := container.Resolve[*javaConfig](c, javaConfigBean)
		if err != nil {
			return nil, err
		}
		return cfg.CustomerService, nil
	})
	return nil
}
