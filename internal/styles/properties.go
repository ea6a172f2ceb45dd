package styles

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/km-arc/go-beans/framework/container"
)

// ErrBadProperty is returned for a property key outside the bean grammar.
var ErrBadProperty = errors.New("styles: malformed bean property")

// propertiesProvider registers the beans described by a properties file:
//
//	dataSource.class=EmbeddedDataSource
//	customerService.class=CustomerService
//	customerService.arg.0.ref=dataSource
//	customerService.arg.1.value=pf
type propertiesProvider struct {
	container.BaseProvider
	open Opener
}

func (p *propertiesProvider) Register(app *container.Container) error {
	if p.open == nil {
		return fmt.Errorf("properties style: no properties source")
	}
	r, err := p.open()
	if err != nil {
		return fmt.Errorf("open properties: %w", err)
	}
	defer r.Close()

	defs, err := ParseProperties(r)
	if err != nil {
		return err
	}
	return registerDefinitions(app, defs)
}

// ParseProperties reads bean definitions from key=value lines. Definitions
// come back sorted by bean id.
func ParseProperties(r io.Reader) ([]Definition, error) {
	props, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse properties: %w", err)
	}

	byID := make(map[string]*Definition)
	args := make(map[string]map[int]Arg)
	for key, val := range props {
		parts := strings.Split(key, ".")
		id := parts[0]
		def, ok := byID[id]
		if !ok {
			def = &Definition{ID: id}
			byID[id] = def
		}

		switch {
		case len(parts) == 2 && parts[1] == "class":
			def.Class = val
		case len(parts) == 4 && parts[1] == "arg":
			idx, err := strconv.Atoi(parts[2])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("%w: %s: bad argument index", ErrBadProperty, key)
			}
			if args[id] == nil {
				args[id] = make(map[int]Arg)
			}
			a := args[id][idx]
			switch parts[3] {
			case "ref":
				a.Ref = val
			case "value":
				a.Value = val
			default:
				return nil, fmt.Errorf("%w: %s", ErrBadProperty, key)
			}
			args[id][idx] = a
		default:
			return nil, fmt.Errorf("%w: %s", ErrBadProperty, key)
		}
	}

	defs := make([]Definition, 0, len(byID))
	for id, def := range byID {
		for i := 0; i < len(args[id]); i++ {
			a, ok := args[id][i]
			if !ok {
				return nil, fmt.Errorf("%w: %s.arg.%d missing", ErrBadProperty, id, i)
			}
			def.Args = append(def.Args, a)
		}
		defs = append(defs, *def)
	}
	slices.SortFunc(defs, func(a, b Definition) int { return strings.Compare(a.ID, b.ID) })
	return defs, nil
}
