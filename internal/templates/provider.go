package templates

import (
	"fmt"
	"strings"

	"github.com/weftdev/weft/internal/models"
)

// EmptyFactoryRef is the registration target for components that require
// nothing. The runtime ships one shared factory so no per-component code is
// generated for them.
const EmptyFactoryRef = "weft.EmptyProviderFactory"

// GenerateSharedDeclaration generates the base provider struct shared by
// every member of a group: the struct itself, a constructor, and one
// accessor per dependency property.
func GenerateSharedDeclaration(name GroupName, signature []models.Property) string {
	var decl strings.Builder

	decl.WriteString(fmt.Sprintf("// %s supplies the dependency shape shared by its component group.\n", name.TypeName()))
	decl.WriteString(fmt.Sprintf("type %s struct {\n", name.TypeName()))
	for _, prop := range signature {
		decl.WriteString(fmt.Sprintf("\t%s %s\n", lowerFirst(prop.Name), prop.Type))
	}
	decl.WriteString("}\n\n")

	decl.WriteString(fmt.Sprintf("func %s(%s) *%s {\n", name.ConstructorName(), ParameterList(signature), name.TypeName()))
	decl.WriteString(fmt.Sprintf("\treturn &%s{\n", name.TypeName()))
	for _, prop := range signature {
		decl.WriteString(fmt.Sprintf("\t\t%s: %s,\n", lowerFirst(prop.Name), lowerFirst(prop.Name)))
	}
	decl.WriteString("\t}\n")
	decl.WriteString("}\n")

	for _, prop := range signature {
		decl.WriteString("\n")
		decl.WriteString(fmt.Sprintf("func (p *%s) %s() %s {\n", name.TypeName(), prop.Name, prop.Type))
		decl.WriteString(fmt.Sprintf("\treturn p.%s\n", lowerFirst(prop.Name)))
		decl.WriteString("}\n")
	}

	return decl.String()
}

// GenerateFactory generates the factory function for one provider. The
// factory resolves every dependency property against the instantiation
// scope and hands the values to the group's shared constructor.
func GenerateFactory(name GroupName, factoryName string, provider *models.ProcessedProvider) string {
	var factory strings.Builder

	factory.WriteString(fmt.Sprintf("func %s(scope *weft.Scope) weft.DependencyProvider {\n", factoryName))
	factory.WriteString(fmt.Sprintf("\treturn %s(\n", name.ConstructorName()))
	for i, prop := range provider.Properties {
		source := provider.SourceOf(i)
		if source.Level == 0 {
			factory.WriteString(fmt.Sprintf("\t\tscope.Component().(*%s).%s,\n", source.Component, prop.Name))
		} else {
			factory.WriteString(fmt.Sprintf("\t\tscope.Ancestor(%d).(*%s).%s,\n", source.Level, source.Component, prop.Name))
		}
	}
	factory.WriteString("\t)\n")
	factory.WriteString("}\n")

	return factory.String()
}

// GenerateRegistration generates the statement binding a factory to an
// instantiation path.
func GenerateRegistration(path, factoryRef string) string {
	return fmt.Sprintf("weft.RegisterProviderFactory(%q, %s)", path, factoryRef)
}
