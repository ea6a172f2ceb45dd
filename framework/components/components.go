// Package components is a catalog of constructors that packages announce
// from init, the way database/sql drivers register themselves. A scan picks
// every component under a package path and hands the constructors to a dig
// container, which wires them by type.
package components

import (
	"fmt"
	"reflect"
	"runtime"
	"slices"
	"strings"
	"sync"

	"go.uber.org/dig"
)

// Component is one registered constructor.
type Component struct {
	Name        string // bean name
	Package     string // import path of the package declaring Constructor
	Constructor any
}

var (
	mu      sync.RWMutex
	catalog = make(map[string]Component)
)

// Register announces a constructor under a bean name. It panics if the name
// is taken or ctor is not a function, since both are programming errors
// caught at init time.
func Register(name string, ctor any) {
	mu.Lock()
	defer mu.Unlock()

	v := reflect.ValueOf(ctor)
	if v.Kind() != reflect.Func || v.IsNil() {
		panic(fmt.Sprintf("components: Register %q: constructor is %T, not a func", name, ctor))
	}
	if _, dup := catalog[name]; dup {
		panic("components: Register called twice for " + name)
	}
	catalog[name] = Component{
		Name:        name,
		Package:     packageOf(v),
		Constructor: ctor,
	}
}

// Scan returns the components declared in base or any package below it,
// sorted by name.
func Scan(base string) []Component {
	mu.RLock()
	defer mu.RUnlock()

	var out []Component
	for _, c := range catalog {
		if c.Package == base || strings.HasPrefix(c.Package, base+"/") {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b Component) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Provide registers every component constructor with dc. Components are
// wired by result type, so two components may not build the same type.
func Provide(dc *dig.Container, comps []Component) error {
	for _, c := range comps {
		if err := dc.Provide(c.Constructor); err != nil {
			return fmt.Errorf("component %s: %w", c.Name, err)
		}
	}
	return nil
}

// packageOf extracts the import path from a function's symbol name, e.g.
// "example.com/m/internal/customer.NewService" → "example.com/m/internal/customer".
func packageOf(fn reflect.Value) string {
	f := runtime.FuncForPC(fn.Pointer())
	if f == nil {
		return ""
	}
	full := f.Name()
	slash := strings.LastIndex(full, "/")
	if dot := strings.Index(full[slash+1:], "."); dot >= 0 {
		return full[:slash+1+dot]
	}
	return full
}
