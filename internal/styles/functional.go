package styles

import (
	"context"

	"go.uber.org/zap"

	"github.com/km-arc/go-beans/framework/container"
	"github.com/km-arc/go-beans/internal/customer"
	"github.com/km-arc/go-beans/internal/datasource"
	"github.com/km-arc/go-beans/internal/profile"
)

// functionalProvider registers both beans as plain closures.
type functionalProvider struct {
	container.BaseProvider
}

func (p *functionalProvider) Register(app *container.Container) error {
	register(app, DataSourceBean, TagDataSource, func(c *container.Container) (any, error) {
		return datasource.NewEmbedded(context.Background())
	})

	register(app, customer.BeanName, TagCustomerService, func(c *container.Container) (any, error) {
		ds, err := container.Resolve[*datasource.DataSource](c, DataSourceBean)
		if err != nil {
			return nil, err
		}
		logger, err := container.Resolve[*zap.Logger](c, "logger")
		if err != nil {
			return nil, err
		}
		return customer.NewService(ds, customer.Style(profile.Functional.Token()), logger), nil
	})
	return nil
}
