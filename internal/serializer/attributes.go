package serializer

import (
	"strconv"

	"github.com/weftdev/weft/internal/models"
)

// providerAttributes derives the metadata the aggregation stage consumes.
// Empty-dependency providers carry no attributes. Everything else carries
// its factory name, plus the deepest ancestor traversal when any dependency
// resolves above the component itself.
func providerAttributes(provider *models.ProcessedProvider, factoryName string) map[string]string {
	attributes := make(map[string]string)
	if provider.IsEmptyDependency {
		return attributes
	}

	if max := provider.MaxLevel(); max > 0 {
		attributes[models.AttrMaxLevel] = strconv.Itoa(max)
	}
	attributes[models.AttrFactoryName] = factoryName

	return attributes
}
