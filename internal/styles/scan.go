package styles

import (
	"context"
	"fmt"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/km-arc/go-beans/framework/components"
	"github.com/km-arc/go-beans/framework/container"
	"github.com/km-arc/go-beans/internal/customer"
	"github.com/km-arc/go-beans/internal/datasource"
	"github.com/km-arc/go-beans/internal/profile"
)

// ScanBase is the package tree searched for components.
const ScanBase = "github.com/km-arc/go-beans/internal"

// configStyleBean is only visible to the customer service, through a
// contextual binding.
const configStyleBean = "configStyle"

// scanProvider declares the data source itself and finds the customer
// service among the registered components, autowiring it by type.
type scanProvider struct {
	container.BaseProvider
	base string
}

func (p *scanProvider) Register(app *container.Container) error {
	comps := components.Scan(p.base)
	if !hasComponent(comps, customer.BeanName) {
		return fmt.Errorf("component scan of %s: no %s component", p.base, customer.BeanName)
	}

	register(app, DataSourceBean, TagDataSource, func(c *container.Container) (any, error) {
		return datasource.NewEmbedded(context.Background())
	})

	app.When(customer.BeanName).Needs(configStyleBean).GiveValue(customer.Style(profile.ComponentScan.Token()))

	register(app, customer.BeanName, TagCustomerService, func(c *container.Container) (any, error) {
		dc := dig.New()
		err := dc.Provide(func() (*datasource.DataSource, error) {
			return container.Resolve[*datasource.DataSource](c, DataSourceBean)
		})
		if err != nil {
			return nil, err
		}
		if err := dc.Provide(func() (customer.Style, error) {
			return container.Resolve[customer.Style](c, configStyleBean)
		}); err != nil {
			return nil, err
		}
		if err := dc.Provide(func() (*zap.Logger, error) {
			return container.Resolve[*zap.Logger](c, "logger")
		}); err != nil {
			return nil, err
		}
		if err := components.Provide(dc, comps); err != nil {
			return nil, err
		}

		var svc *customer.Service
		if err := dc.Invoke(func(s *customer.Service) { svc = s }); err != nil {
			return nil, fmt.Errorf("autowire %s: %w", customer.BeanName, err)
		}
		return svc, nil
	})
	return nil
}

func hasComponent(comps []components.Component, name string) bool {
	for _, c := range comps {
		if c.Name == name {
			return true
		}
	}
	return false
}
