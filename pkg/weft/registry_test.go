package weft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoot struct {
	Value string
}

type fakeChild struct{}

func TestScope_Path(t *testing.T) {
	root := NewRootScope("RootComponent", &fakeRoot{})
	child := root.Child("SessionComponent", &fakeChild{})

	assert.Equal(t, "^->RootComponent", root.Path())
	assert.Equal(t, "^->RootComponent->SessionComponent", child.Path())
}

func TestScope_Ancestor(t *testing.T) {
	rootComponent := &fakeRoot{Value: "root"}
	root := NewRootScope("RootComponent", rootComponent)
	child := root.Child("SessionComponent", &fakeChild{})

	assert.Same(t, rootComponent, child.Ancestor(1))
	assert.IsType(t, &fakeChild{}, child.Ancestor(0))

	assert.Panics(t, func() {
		child.Ancestor(2)
	})
}

func TestProviderRegistry(t *testing.T) {
	registry := NewProviderRegistry()

	registry.RegisterProviderFactory("^->Root", func(scope *Scope) DependencyProvider {
		return scope.Component()
	})
	registry.RegisterProviderFactory("^->Root->Child", EmptyProviderFactory)

	factory, exists := registry.ProviderFactoryFor("^->Root")
	require.True(t, exists)
	require.NotNil(t, factory)

	_, exists = registry.ProviderFactoryFor("^->Missing")
	assert.False(t, exists)

	assert.Equal(t, []string{"^->Root", "^->Root->Child"}, registry.Paths())
}

func TestProviderFor(t *testing.T) {
	rootComponent := &fakeRoot{Value: "root"}
	scope := NewRootScope("ProviderForRoot", rootComponent)

	_, err := ProviderFor(scope)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no provider factory registered")

	RegisterProviderFactory(scope.Path(), func(s *Scope) DependencyProvider {
		return s.Component().(*fakeRoot).Value
	})

	provider, err := ProviderFor(scope)
	require.NoError(t, err)
	assert.Equal(t, "root", provider)
}

func TestEmptyProviderFactory(t *testing.T) {
	scope := NewRootScope("RootComponent", &fakeRoot{})
	provider := EmptyProviderFactory(scope)
	assert.NotNil(t, provider)
}
