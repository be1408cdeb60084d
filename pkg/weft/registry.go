package weft

import (
	"fmt"
	"sort"
	"sync"
)

// ProviderRegistry provides access to all registered provider factories
type ProviderRegistry interface {
	// RegisterProviderFactory binds a factory to an instantiation path
	RegisterProviderFactory(path string, factory ProviderFactory)

	// ProviderFactoryFor retrieves the factory bound to a path
	ProviderFactoryFor(path string) (ProviderFactory, bool)

	// Paths returns all registered paths in sorted order
	Paths() []string
}

// inMemoryProviderRegistry implements ProviderRegistry
type inMemoryProviderRegistry struct {
	mu        sync.RWMutex
	factories map[string]ProviderFactory
}

// NewProviderRegistry creates a new in-memory provider registry
func NewProviderRegistry() ProviderRegistry {
	return &inMemoryProviderRegistry{
		factories: make(map[string]ProviderFactory),
	}
}

func (r *inMemoryProviderRegistry) RegisterProviderFactory(path string, factory ProviderFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[path] = factory
}

func (r *inMemoryProviderRegistry) ProviderFactoryFor(path string) (ProviderFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, exists := r.factories[path]
	return factory, exists
}

func (r *inMemoryProviderRegistry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	paths := make([]string, 0, len(r.factories))
	for path := range r.factories {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// DefaultProviderRegistry is the global registry generated init functions
// register into.
var DefaultProviderRegistry = NewProviderRegistry()

// RegisterProviderFactory registers a factory with the default registry.
// Generated code calls this from init.
func RegisterProviderFactory(path string, factory ProviderFactory) {
	DefaultProviderRegistry.RegisterProviderFactory(path, factory)
}

// ProviderFor resolves and invokes the factory registered for the scope's
// path.
func ProviderFor(scope *Scope) (DependencyProvider, error) {
	factory, exists := DefaultProviderRegistry.ProviderFactoryFor(scope.Path())
	if !exists {
		return nil, fmt.Errorf("no provider factory registered for path %q", scope.Path())
	}
	return factory(scope), nil
}
