package conversion

// Note: ConverterFactory is not mockable with mockgen because Register()
// uses the unexported coreConverter type. Use DefaultFactory in tests.

import (
	"fmt"
	"sort"
	"sync"
)

// ConverterFactory is a registry of conversion methods.
type ConverterFactory interface {
	// Get returns the shared Converter for a method.
	Get(method Method) (Converter, error)

	// Create returns a fresh, uncached Converter for a method.
	Create(method Method) (Converter, error)

	// List returns the registered method names, sorted.
	List() []string

	// All returns every registered Converter in registration order.
	All() []Converter

	// Register adds or replaces a method.
	Register(method Method, creator func() coreConverter) error
}

// DefaultFactory is the default ConverterFactory. It is safe for concurrent
// use and caches one Converter per method.
type DefaultFactory struct {
	mu         sync.RWMutex
	subject    *Subject
	order      []Method
	creators   map[Method]func() coreConverter
	converters map[Method]Converter
}

// FactoryOption configures a DefaultFactory.
type FactoryOption func(*factoryOptions)

type factoryOptions struct {
	table     *Table
	observers []Observer
}

// WithTable makes the cached method use table instead of DefaultTable.
func WithTable(table *Table) FactoryOption {
	return func(o *factoryOptions) { o.table = table }
}

// WithObservers registers observers notified by every Converter the factory
// hands out.
func WithObservers(observers ...Observer) FactoryOption {
	return func(o *factoryOptions) { o.observers = append(o.observers, observers...) }
}

// NewDefaultFactory creates a factory with the four built-in methods
// registered: exact, interpolate, cached and binet.
func NewDefaultFactory(opts ...FactoryOption) *DefaultFactory {
	var o factoryOptions
	for _, opt := range opts {
		opt(&o)
	}
	table := o.table
	if table == nil {
		table = DefaultTable()
	}

	f := &DefaultFactory{
		subject:    NewSubject(o.observers...),
		creators:   make(map[Method]func() coreConverter),
		converters: make(map[Method]Converter),
	}
	_ = f.Register(MethodExact, func() coreConverter { return ExactConverter{} })
	_ = f.Register(MethodInterpolate, func() coreConverter { return InterpolationConverter{} })
	_ = f.Register(MethodCached, func() coreConverter { return NewCachedConverter(table) })
	_ = f.Register(MethodBinet, func() coreConverter { return BinetConverter{} })
	return f
}

// Subject returns the subject shared by every Converter of this factory.
func (f *DefaultFactory) Subject() *Subject { return f.subject }

// Register adds a method. Registering an existing name replaces it and drops
// the cached Converter.
func (f *DefaultFactory) Register(method Method, creator func() coreConverter) error {
	if method == "" || creator == nil {
		return fmt.Errorf("conversion: invalid registration for method %q", method)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.creators[method]; !exists {
		f.order = append(f.order, method)
	}
	f.creators[method] = creator
	delete(f.converters, method)
	return nil
}

// Create returns a new Converter for method without caching it.
func (f *DefaultFactory) Create(method Method) (Converter, error) {
	f.mu.RLock()
	creator, ok := f.creators[method]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown conversion method: %s", method)
	}
	return NewConverter(creator(), f.subject), nil
}

// Get returns the cached Converter for method, creating it on first use.
func (f *DefaultFactory) Get(method Method) (Converter, error) {
	f.mu.RLock()
	if c, exists := f.converters[method]; exists {
		f.mu.RUnlock()
		return c, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	if c, exists := f.converters[method]; exists {
		return c, nil
	}
	creator, ok := f.creators[method]
	if !ok {
		return nil, fmt.Errorf("unknown conversion method: %s", method)
	}
	c := NewConverter(creator(), f.subject)
	f.converters[method] = c
	return c, nil
}

// List returns the registered method names sorted alphabetically.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for m := range f.creators {
		names = append(names, string(m))
	}
	sort.Strings(names)
	return names
}

// All returns every registered Converter in registration order.
func (f *DefaultFactory) All() []Converter {
	f.mu.RLock()
	order := append([]Method(nil), f.order...)
	f.mu.RUnlock()

	out := make([]Converter, 0, len(order))
	for _, m := range order {
		c, err := f.Get(m)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}
