// Package weft is the runtime counterpart of the weft code generator.
// Generated provider files register their factories here, and application
// code instantiates components through scopes that resolve dependencies via
// the registered factories.
package weft

import "fmt"

// DependencyProvider marks a generated provider struct. Providers expose one
// accessor per dependency; the concrete type is group-specific generated
// code.
type DependencyProvider interface{}

// ProviderFactory creates a dependency provider bound to an instantiation
// scope.
type ProviderFactory func(scope *Scope) DependencyProvider

// Scope is one node of the component instantiation path. Generated
// factories traverse it upward to pull dependencies from ancestor
// components.
type Scope struct {
	component interface{}
	parent    *Scope
	name      string
}

// NewRootScope creates the scope for a hierarchy root component.
func NewRootScope(name string, component interface{}) *Scope {
	return &Scope{component: component, name: name}
}

// Child creates the scope for a component instantiated under this one.
func (s *Scope) Child(name string, component interface{}) *Scope {
	return &Scope{component: component, parent: s, name: name}
}

// Component returns the component instance this scope wraps.
func (s *Scope) Component() interface{} {
	return s.component
}

// Ancestor returns the component the given number of levels up the path.
// Level 0 is the scope's own component. Asking for a level above the root is
// a defect in the generated code's level metadata, not a runtime condition,
// and panics.
func (s *Scope) Ancestor(level int) interface{} {
	current := s
	for i := 0; i < level; i++ {
		if current.parent == nil {
			panic(fmt.Sprintf("weft: scope %q has no ancestor at level %d", s.name, level))
		}
		current = current.parent
	}
	return current.component
}

// Path renders the instantiation path in registration form, e.g.
// "^->RootComponent->SessionComponent".
func (s *Scope) Path() string {
	if s.parent == nil {
		return "^->" + s.name
	}
	return s.parent.Path() + "->" + s.name
}

// emptyProvider backs every component that requires nothing.
type emptyProvider struct{}

// EmptyProviderFactory is the shared factory registered for
// empty-dependency components. The generator emits no per-component code
// for them.
func EmptyProviderFactory(scope *Scope) DependencyProvider {
	return emptyProvider{}
}
