package models

import "strings"

// Attribute keys recognized by the aggregation stage.
const (
	AttrMaxLevel    = "maxLevel"    // deepest ancestor traversal a factory performs
	AttrFactoryName = "factoryName" // name of the generated provider factory
)

// Property describes one dependency a component requires. Properties are
// compared by value: two properties describe the same dependency iff both
// name and type match.
type Property struct {
	Name string // field name on the component, e.g. "Logger"
	Type string // Go type expression, e.g. "*logging.Logger"
}

// ComponentLevel records where in the instantiation path a dependency is
// provided. Level 0 is the component itself, 1 its parent, and so on.
type ComponentLevel struct {
	Component string // component type name that provides the dependency
	Level     int    // distance from the requiring component
}

// ProviderData holds the analyzed facts about one component's dependency
// provider, as produced by the upstream analysis stage.
type ProviderData struct {
	ComponentName     string           // component type name, e.g. "SessionComponent"
	PackageName       string           // package the component lives in
	Path              []string         // instantiation path from the root component
	Levels            []ComponentLevel // providing component per dependency, in property order
	Params            []Property       // parameters of the component's own constructor
	IsEmptyDependency bool             // true when the component requires nothing
}

// MaxLevel returns the highest level in the provider's level mapping, or 0
// when the mapping is empty.
func (p *ProviderData) MaxLevel() int {
	max := 0
	for _, entry := range p.Levels {
		if entry.Level > max {
			max = entry.Level
		}
	}
	return max
}

// PathString renders the instantiation path in registration form, e.g.
// "^->RootComponent->SessionComponent".
func (p *ProviderData) PathString() string {
	return "^->" + strings.Join(p.Path, "->")
}

// SourceOf returns the level entry for the i-th dependency property. A
// provider whose analysis produced no entry for that position resolves
// against itself at level 0.
func (p *ProviderData) SourceOf(i int) ComponentLevel {
	if i >= 0 && i < len(p.Levels) {
		return p.Levels[i]
	}
	return ComponentLevel{Component: p.ComponentName, Level: 0}
}

// ProcessedProvider pairs a provider with the ordered property list that
// decides which generated base struct it shares with its siblings.
type ProcessedProvider struct {
	*ProviderData
	Properties []Property // ordered dependency properties; the grouping signature
}

// SerializedProvider is one emitted record handed to the aggregation stage.
// Content and Registration may be empty; Attributes is never nil.
type SerializedProvider struct {
	Content      string            // generated declaration or factory text
	Registration string            // registration statement
	Attributes   map[string]string // metadata for the aggregation stage
}
