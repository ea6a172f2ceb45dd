package container

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ── Errors ────────────────────────────────────────────────────────────────────

var (
	// ErrNotBound is returned when an abstract has no binding or instance.
	ErrNotBound = errors.New("container: no binding registered")

	// ErrCircular is returned when a factory (directly or not) resolves itself.
	ErrCircular = errors.New("container: circular dependency")

	// ErrWrongType is returned by Resolve when the instance has another type.
	ErrWrongType = errors.New("container: resolved instance has unexpected type")
)

// ── Binding types ─────────────────────────────────────────────────────────────

// Factory builds a concrete value from the container.
type Factory func(c *Container) (any, error)

// binding holds a registered factory. Every binding in a bean container is a
// singleton: the factory runs once and its result is cached.
type binding struct {
	factory Factory
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the bean registry shared by every registration style.
//
// It supports:
//   - Singleton / Instance / Alias
//   - Make / Resolve (generic)
//   - Tags (group beans of one kind so they can be counted and listed)
//   - Contextual binding (when A needs B, give it C)
//   - Resolved event callbacks
type Container struct {
	mu sync.RWMutex

	// abstract → binding
	bindings map[string]*binding

	// abstract → resolved singleton instance
	instances map[string]any

	// alias → abstract (canonical key)
	aliases map[string]string

	// tag → []abstract
	tags map[string][]string

	// contextual: when[concrete][abstract] = factory
	contextual map[string]map[string]Factory

	// resolved callbacks: []func(abstract, instance)
	afterResolving []func(string, any)

	// stack of abstracts currently being resolved (for contextual lookup)
	buildStack []string
}

// New creates an empty container.
func New() *Container {
	c := &Container{
		bindings:   make(map[string]*binding),
		instances:  make(map[string]any),
		aliases:    make(map[string]string),
		tags:       make(map[string][]string),
		contextual: make(map[string]map[string]Factory),
	}
	c.Instance("container", c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Singleton registers a factory whose result is cached after first resolution.
// Registering the same abstract again replaces the factory and drops any
// cached instance.
//
//	c.Singleton("dataSource", func(c *container.Container) (any, error) {
//	    return datasource.NewEmbedded(context.Background())
//	})
func (c *Container) Singleton(abstract string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.instances, key)
	c.bindings[key] = &binding{factory: factory}
}

// Instance registers a pre-built value as a singleton.
//
//	c.Instance("config", cfg)
func (c *Container) Instance(abstract string, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.bindings, key)
	c.instances[key] = instance
}

// Alias registers an alternative name for an abstract.
//
//	c.Alias("dataSource", "db")
func (c *Container) Alias(abstract, alias string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if abstract == alias {
		panic(fmt.Sprintf("container: [%s] is aliased to itself", abstract))
	}
	c.aliases[alias] = c.canonical(abstract)
}

// ── Contextual Binding ────────────────────────────────────────────────────────

// When starts a contextual binding chain.
//
//	c.When("customerService").Needs("configStyle").GiveValue("cs")
func (c *Container) When(concrete string) *ContextualBuilder {
	return &ContextualBuilder{container: c, concrete: concrete}
}

// getContextual returns the contextual factory for (concrete, abstract), or nil.
func (c *Container) getContextual(concrete, abstract string) Factory {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if m, ok := c.contextual[concrete]; ok {
		if f, ok := m[abstract]; ok {
			return f
		}
	}
	return nil
}

// ── Tags ──────────────────────────────────────────────────────────────────────

// Tag associates abstracts with a named group. Tagging the same abstract
// twice under one tag has no effect.
//
//	c.Tag([]string{"dataSource"}, beans.TagDataSource)
func (c *Container) Tag(abstracts []string, tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, abs := range abstracts {
		key := c.canonical(abs)
		if !slices.Contains(c.tags[tag], key) {
			c.tags[tag] = append(c.tags[tag], key)
		}
	}
}

// TaggedKeys returns the abstracts registered under tag without resolving them.
func (c *Container) TaggedKeys(tag string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.tags[tag])
}

// Tagged resolves all abstracts registered under a tag.
//
//	sources, err := c.Tagged(beans.TagDataSource)
func (c *Container) Tagged(tag string) ([]any, error) {
	abstracts := c.TaggedKeys(tag)

	result := make([]any, 0, len(abstracts))
	for _, abs := range abstracts {
		inst, err := c.make(abs)
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", tag, err)
		}
		result = append(result, inst)
	}
	return result, nil
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves an abstract from the container.
//
//	raw, err := c.Make("customerService")
func (c *Container) Make(abstract string) (any, error) {
	return c.make(abstract)
}

// make is the internal resolver. It holds no outer lock; each step locks as needed.
func (c *Container) make(abstract string) (any, error) {
	c.mu.RLock()
	key := c.canonical(abstract)
	if inst, ok := c.instances[key]; ok {
		c.mu.RUnlock()
		return inst, nil
	}
	c.mu.RUnlock()

	if slices.Contains(c.buildStack, key) {
		return nil, fmt.Errorf("%w: %v -> %s", ErrCircular, c.buildStack, key)
	}

	// Contextual bindings are looked up against the bean currently being built.
	if len(c.buildStack) > 0 {
		caller := c.buildStack[len(c.buildStack)-1]
		if f := c.getContextual(caller, abstract); f != nil {
			return c.runFactory(key, f, false)
		}
	}

	c.mu.RLock()
	b, ok := c.bindings[key]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w for [%s]", ErrNotBound, abstract)
	}

	return c.runFactory(key, b.factory, true)
}

// runFactory executes a factory, optionally caching the result.
func (c *Container) runFactory(key string, f Factory, cache bool) (any, error) {
	c.buildStack = append(c.buildStack, key)
	instance, err := f(c)
	c.buildStack = c.buildStack[:len(c.buildStack)-1]
	if err != nil {
		return nil, fmt.Errorf("build [%s]: %w", key, err)
	}

	if cache {
		c.mu.Lock()
		c.instances[key] = instance
		c.mu.Unlock()
	}

	c.fireAfterResolving(key, instance)
	return instance, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Bound returns true if an abstract has been registered.
func (c *Container) Bound(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key := c.canonical(abstract)
	_, hasBinding := c.bindings[key]
	_, hasInstance := c.instances[key]
	return hasBinding || hasInstance
}

// Resolved returns true if the abstract has been resolved at least once.
func (c *Container) Resolved(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[c.canonical(abstract)]
	return ok
}

// Bindings returns all registered abstract keys, sorted.
func (c *Container) Bindings() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.bindings)+len(c.instances))
	for k := range c.bindings {
		out = append(out, k)
	}
	for k := range c.instances {
		if _, already := c.bindings[k]; !already {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

// canonical resolves an alias to its canonical key (must hold mu).
func (c *Container) canonical(abstract string) string {
	if target, ok := c.aliases[abstract]; ok {
		return target
	}
	return abstract
}

// ── Callbacks ─────────────────────────────────────────────────────────────────

// AfterResolving registers a callback fired after any factory produces a bean.
func (c *Container) AfterResolving(cb func(abstract string, instance any)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.afterResolving = append(c.afterResolving, cb)
}

func (c *Container) fireAfterResolving(abstract string, instance any) {
	c.mu.RLock()
	cbs := c.afterResolving
	c.mu.RUnlock()
	for _, cb := range cbs {
		cb(abstract, instance)
	}
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve calls Make and type-asserts the result.
//
//	ds, err := container.Resolve[*datasource.DataSource](c, "dataSource")
func Resolve[T any](c *Container, abstract string) (T, error) {
	var zero T
	instance, err := c.Make(abstract)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("%w: Resolve[%T]: [%s] resolved to %T", ErrWrongType, zero, abstract, instance)
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on error. Use it only where a missing
// binding is a programming mistake, e.g. framework bindings after boot.
func MustResolve[T any](c *Container, abstract string) T {
	typed, err := Resolve[T](c, abstract)
	if err != nil {
		panic(err)
	}
	return typed
}

// TagClosable marks beans implementing io.Closer that the application closes
// on shutdown, in reverse registration order, if they were ever resolved.
const TagClosable = "container.closable"
