// Package container provides the bean registry and service provider system
// shared by the demo programs.
//
// # Overview
//
// The container owns the instantiation and lifecycle of an application's
// beans. Every binding is a singleton: a factory runs on first resolution and
// its result is cached. The container does no auto-wiring of its own; every
// factory resolves its dependencies explicitly.
//
// # Container Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(&MyProvider{})
//  3. Boot: registry.Boot()
//  4. Serve requests
//
// # Bindings
//
//	c.Singleton("dataSource", func(c *container.Container) (any, error) {
//	    return datasource.NewEmbedded(ctx)
//	})
//
//	// Pre-built value
//	c.Instance("config", cfg)
//
//	// Alias
//	c.Alias("dataSource", "db")
//
// # Resolving
//
//	raw, err := c.Make("dataSource")
//	ds, err := container.Resolve[*datasource.DataSource](c, "dataSource")
//
// # Contextual Binding
//
//	c.When("customerService").
//	    Needs("configStyle").
//	    GiveValue("cs")
//
// # Tags
//
// Tags group beans of one kind. They are how the registry answers "how many
// data sources are there" without reflecting over types.
//
//	c.Tag([]string{"dataSource"}, "beans.datasource")
//	all, err := c.Tagged("beans.datasource")  // []any
package container
