package registry

import (
	"fmt"
	"strings"

	"github.com/weftdev/weft/internal/models"
	"github.com/weftdev/weft/internal/utils"
)

// ComponentRegistry tracks every component discovered across packages and
// resolves the hierarchy facts the serializer needs: instantiation paths and
// the level each dependency is provided at.
type ComponentRegistry struct {
	components *utils.Registry[string, *models.ComponentMetadata]
}

// NewComponentRegistry creates a new component registry
func NewComponentRegistry() *ComponentRegistry {
	components := utils.NewRegistry[string, *models.ComponentMetadata]("component", "component name")
	components.SetValidator(func(name string, component *models.ComponentMetadata, existing map[string]*models.ComponentMetadata) error {
		if duplicate, exists := existing[name]; exists {
			return fmt.Errorf("component '%s' is already registered in package '%s'", name, duplicate.PackagePath)
		}
		return nil
	})
	return &ComponentRegistry{components: components}
}

// Register adds a component to the registry
func (r *ComponentRegistry) Register(component *models.ComponentMetadata) error {
	if component == nil {
		return fmt.Errorf("component metadata cannot be nil")
	}
	if component.Name == "" {
		return fmt.Errorf("component name cannot be empty")
	}
	return r.components.Register(component.Name, component)
}

// Get retrieves a component by name
func (r *ComponentRegistry) Get(name string) (*models.ComponentMetadata, bool) {
	return r.components.Get(name)
}

// Validate checks the registered hierarchy: every non-root component must
// reach a root through known parents, and roots must not name a parent.
func (r *ComponentRegistry) Validate() error {
	for _, name := range r.components.List() {
		component, _ := r.components.Get(name)

		if component.IsRoot {
			if component.Parent != "" {
				return r.validationError(component, fmt.Sprintf("root component '%s' must not name a parent", name))
			}
			continue
		}

		parent := parentOf(component)
		if parent == "" {
			return r.validationError(component, fmt.Sprintf("component '%s' must name a parent, a plugin host, or be marked -root", name))
		}
		if !r.components.Has(parent) {
			return r.validationError(component, fmt.Sprintf("component '%s' references unknown parent '%s'", name, parent))
		}

		if _, err := r.Path(name); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the instantiation path of a component, root first.
func (r *ComponentRegistry) Path(name string) ([]string, error) {
	var reversed []string
	visited := make(map[string]bool)

	current := name
	for current != "" {
		if visited[current] {
			return nil, fmt.Errorf("component hierarchy contains a cycle through '%s'", current)
		}
		visited[current] = true

		component, err := r.components.GetOrError(current)
		if err != nil {
			return nil, err
		}
		reversed = append(reversed, current)
		current = parentOf(component)
	}

	path := make([]string, len(reversed))
	for i, step := range reversed {
		path[len(reversed)-1-i] = step
	}
	return path, nil
}

// BuildProviders turns a package's components into the processed providers
// the serializer consumes, in the package's declaration order.
func (r *ComponentRegistry) BuildProviders(pkg *models.PackageMetadata) ([]*models.ProcessedProvider, error) {
	providers := make([]*models.ProcessedProvider, 0, len(pkg.Components))

	for i := range pkg.Components {
		component := &pkg.Components[i]

		path, err := r.Path(component.Name)
		if err != nil {
			return nil, err
		}

		levels, err := r.resolveLevels(component)
		if err != nil {
			return nil, err
		}

		providers = append(providers, &models.ProcessedProvider{
			ProviderData: &models.ProviderData{
				ComponentName:     component.Name,
				PackageName:       component.PackageName,
				Path:              path,
				Levels:            levels,
				Params:            component.Params,
				IsEmptyDependency: len(component.Dependencies) == 0,
			},
			Properties: component.Dependencies,
		})
	}

	return providers, nil
}

// resolveLevels finds, for each dependency property, the nearest ancestor
// that provides it, starting at the parent (level 1).
func (r *ComponentRegistry) resolveLevels(component *models.ComponentMetadata) ([]models.ComponentLevel, error) {
	if len(component.Dependencies) == 0 {
		return nil, nil
	}

	levels := make([]models.ComponentLevel, 0, len(component.Dependencies))
	for _, property := range component.Dependencies {
		entry, found := r.findProvider(component, property)
		if !found {
			return nil, r.validationError(component, fmt.Sprintf(
				"no ancestor of component '%s' provides %s %s; declare it on an ancestor component or its constructor",
				component.Name, property.Name, property.Type))
		}
		levels = append(levels, entry)
	}
	return levels, nil
}

// findProvider locates the component that provides a property: the
// component itself at level 0 when its own constructor builds the value,
// otherwise the nearest ancestor exposing it as a dependency field or a
// constructor value.
func (r *ComponentRegistry) findProvider(component *models.ComponentMetadata, property models.Property) (models.ComponentLevel, bool) {
	if providesViaConstructor(component, property) {
		return models.ComponentLevel{Component: component.Name, Level: 0}, true
	}

	level := 0
	visited := make(map[string]bool)

	current := component
	for {
		parentName := parentOf(current)
		if parentName == "" || visited[parentName] {
			return models.ComponentLevel{}, false
		}
		visited[parentName] = true
		level++

		parent, exists := r.components.Get(parentName)
		if !exists {
			return models.ComponentLevel{}, false
		}
		if provides(parent, property) {
			return models.ComponentLevel{Component: parent.Name, Level: level}, true
		}
		current = parent
	}
}

// provides reports whether a component exposes a value matching the
// property. Field matches compare name and type; constructor parameters
// compare the lowered name.
func provides(component *models.ComponentMetadata, property models.Property) bool {
	for _, field := range component.Dependencies {
		if field == property {
			return true
		}
	}
	return providesViaConstructor(component, property)
}

func providesViaConstructor(component *models.ComponentMetadata, property models.Property) bool {
	for _, param := range component.Params {
		if param.Type == property.Type && strings.EqualFold(param.Name, property.Name) {
			return true
		}
	}
	return false
}

// parentOf resolves the effective parent: plugin components attach to their
// host when no explicit parent is named.
func parentOf(component *models.ComponentMetadata) string {
	if component.Parent != "" {
		return component.Parent
	}
	return component.PluginHost
}

func (r *ComponentRegistry) validationError(component *models.ComponentMetadata, message string) error {
	return &models.GeneratorError{
		Type:    models.ErrorTypeValidation,
		File:    component.FileName,
		Line:    component.Line,
		Message: message,
	}
}
