package styles

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/km-arc/go-beans/framework/container"
	"github.com/km-arc/go-beans/internal/customer"
	"github.com/km-arc/go-beans/internal/datasource"
)

var (
	// ErrUnknownClass is returned for a definition naming no catalog class.
	ErrUnknownClass = errors.New("styles: unknown bean class")

	// ErrInvalidDefinition wraps validation failures of a bean definition.
	ErrInvalidDefinition = errors.New("styles: invalid bean definition")
)

// Definition is a declarative bean description read from a properties or
// XML descriptor.
type Definition struct {
	ID    string `validate:"required"`
	Class string `validate:"required"`
	Args  []Arg  `validate:"dive"`
}

// Arg is one constructor argument: a reference to another bean or a literal.
type Arg struct {
	Ref   string `validate:"required_without=Value,excluded_with=Value"`
	Value string `validate:"required_without=Ref,excluded_with=Ref"`
}

// class knows how to build one kind of bean from resolved arguments.
type class struct {
	tag   string
	arity int
	build func(c *container.Container, args []any) (any, error)
}

var classes = map[string]class{
	"EmbeddedDataSource": {
		tag:   TagDataSource,
		arity: 0,
		build: func(_ *container.Container, _ []any) (any, error) {
			return datasource.NewEmbedded(context.Background())
		},
	},
	"CustomerService": {
		tag:   TagCustomerService,
		arity: 2,
		build: func(c *container.Container, args []any) (any, error) {
			ds, ok := args[0].(*datasource.DataSource)
			if !ok {
				return nil, fmt.Errorf("CustomerService arg 0: want *datasource.DataSource, got %T", args[0])
			}
			label, ok := args[1].(string)
			if !ok {
				return nil, fmt.Errorf("CustomerService arg 1: want string, got %T", args[1])
			}
			logger, err := container.Resolve[*zap.Logger](c, "logger")
			if err != nil {
				return nil, err
			}
			return customer.NewService(ds, customer.Style(label), logger), nil
		},
	},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// registerDefinitions validates every definition, then binds each as a
// singleton whose factory resolves its arguments on first use.
func registerDefinitions(c *container.Container, defs []Definition) error {
	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if err := validate.Struct(def); err != nil {
			return fmt.Errorf("%w %q: %v", ErrInvalidDefinition, def.ID, err)
		}
		if seen[def.ID] {
			return fmt.Errorf("%w: duplicate bean id %q", ErrInvalidDefinition, def.ID)
		}
		seen[def.ID] = true

		cl, ok := classes[def.Class]
		if !ok {
			return fmt.Errorf("%w %q for bean %q", ErrUnknownClass, def.Class, def.ID)
		}
		if len(def.Args) != cl.arity {
			return fmt.Errorf("%w %q: class %s takes %d args, got %d", ErrInvalidDefinition, def.ID, def.Class, cl.arity, len(def.Args))
		}

		register(c, def.ID, cl.tag, definitionFactory(def, cl))
	}
	return nil
}

func definitionFactory(def Definition, cl class) container.Factory {
	return func(c *container.Container) (any, error) {
		args := make([]any, len(def.Args))
		for i, a := range def.Args {
			if a.Ref == "" {
				args[i] = a.Value
				continue
			}
			ref, err := c.Make(a.Ref)
			if err != nil {
				return nil, err
			}
			args[i] = ref
		}
		return cl.build(c, args)
	}
}
