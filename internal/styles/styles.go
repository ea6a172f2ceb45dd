// Package styles registers the data source and customer service beans in one
// of five ways, chosen by the active profile.
package styles

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/km-arc/go-beans/framework/config"
	"github.com/km-arc/go-beans/framework/container"
	"github.com/km-arc/go-beans/internal/customer"
	"github.com/km-arc/go-beans/internal/datasource"
	"github.com/km-arc/go-beans/internal/profile"
	"github.com/km-arc/go-beans/resources"
)

// Bean tags. Every style tags what it registers so the registry can count
// beans by kind.
const (
	TagDataSource      = "beans.datasource"
	TagCustomerService = "beans.customer-service"
)

// DataSourceBean is the container key of the data source in every style.
const DataSourceBean = "dataSource"

// ErrBeanCount is returned by Confirm when a bean kind is missing or ambiguous.
var ErrBeanCount = errors.New("styles: unexpected bean count")

// Opener opens a bean descriptor. It is only called when the style that
// reads the descriptor is active.
type Opener func() (io.ReadCloser, error)

// Sources are the descriptors read by the properties and XML styles.
type Sources struct {
	Properties Opener
	XML        Opener
}

// DefaultSources reads descriptors from the configured paths, falling back
// to the embedded resources.
func DefaultSources(cfg config.ResourceConfig) Sources {
	return Sources{
		Properties: fileOrEmbedded(cfg.PropertiesPath, resources.PropertiesDemo),
		XML:        fileOrEmbedded(cfg.XMLPath, resources.XMLDemo),
	}
}

func fileOrEmbedded(path, name string) Opener {
	if path != "" {
		return func() (io.ReadCloser, error) { return os.Open(path) }
	}
	return func() (io.ReadCloser, error) { return resources.Open(name) }
}

// Registrar accepts service providers; *app.Application implements it.
type Registrar interface {
	Register(provider container.ServiceProvider) error
}

// Provider returns the service provider implementing strategy.
func Provider(strategy profile.Strategy, src Sources) (container.ServiceProvider, error) {
	switch strategy {
	case profile.PropertiesFile:
		return &propertiesProvider{open: src.Properties}, nil
	case profile.JavaConfig:
		return &javaConfigProvider{}, nil
	case profile.XMLConfig:
		return &xmlProvider{open: src.XML}, nil
	case profile.ComponentScan:
		return &scanProvider{base: ScanBase}, nil
	case profile.Functional:
		return &functionalProvider{}, nil
	}
	return nil, fmt.Errorf("%w: %v", profile.ErrUnknownStrategy, strategy)
}

// Install selects the style named by profiles and registers its provider.
// ok is false when no style profile is active; nothing is registered then.
func Install(r Registrar, profiles profile.Set, src Sources, logger *zap.Logger) (strategy profile.Strategy, ok bool, err error) {
	strategy, ok, err = profile.Select(profiles)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		logger.Warn("no config style profile is active", zap.Stringer("profiles", profiles))
		return 0, false, nil
	}

	p, err := Provider(strategy, src)
	if err != nil {
		return strategy, false, err
	}
	if err := r.Register(p); err != nil {
		return strategy, false, err
	}
	logger.Info("config style selected",
		zap.String("token", strategy.Token()),
		zap.Stringer("style", strategy))
	return strategy, true, nil
}

// Beans is the object graph built by the active style.
type Beans struct {
	DataSource      *datasource.DataSource
	CustomerService *customer.Service
}

// Confirm instantiates every tagged bean and checks that exactly one data
// source and one customer service exist.
func Confirm(c *container.Container) (*Beans, error) {
	ds, err := exactlyOne[*datasource.DataSource](c, TagDataSource, "DataSource")
	if err != nil {
		return nil, err
	}
	svc, err := exactlyOne[*customer.Service](c, TagCustomerService, "CustomerService")
	if err != nil {
		return nil, err
	}
	return &Beans{DataSource: ds, CustomerService: svc}, nil
}

func exactlyOne[T any](c *container.Container, tag, kind string) (T, error) {
	var zero T
	all, err := c.Tagged(tag)
	if err != nil {
		return zero, err
	}
	if len(all) != 1 {
		return zero, fmt.Errorf("%w: there should be 1 instances of %s, found %d", ErrBeanCount, kind, len(all))
	}
	typed, ok := all[0].(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s bean is %T", container.ErrWrongType, kind, all[0])
	}
	return typed, nil
}

// register binds a bean and tags it. Data sources are also closed on shutdown.
func register(c *container.Container, name, tag string, factory container.Factory) {
	c.Singleton(name, factory)
	c.Tag([]string{name}, tag)
	if tag == TagDataSource {
		c.Tag([]string{name}, container.TagClosable)
	}
}
