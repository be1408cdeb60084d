package serializer

import (
	"github.com/weftdev/weft/internal/models"
	"github.com/weftdev/weft/internal/templates"
)

// ProviderSerializer turns processed providers into the flat record list the
// aggregation stage assembles into generated files. The transform is pure:
// it does not mutate its input and holds no state across calls, so separate
// invocations may run concurrently.
type ProviderSerializer struct{}

// NewProviderSerializer creates a new provider serializer
func NewProviderSerializer() *ProviderSerializer {
	return &ProviderSerializer{}
}

// Serialize emits one shared-declaration record per group of providers with
// an identical dependency signature (skipped when the group requires
// nothing), followed by one record per member. Groups appear in first-seen
// order and members in input order.
func (s *ProviderSerializer) Serialize(providers []*models.ProcessedProvider) []models.SerializedProvider {
	var serialized []models.SerializedProvider

	for index, group := range groupProviders(providers) {
		representative := group.representative()
		name := templates.NewGroupName(representative.ComponentName, group.signature, index)

		if !representative.IsEmptyDependency {
			serialized = append(serialized, models.SerializedProvider{
				Content:    templates.GenerateSharedDeclaration(name, group.signature),
				Attributes: map[string]string{},
			})
		}

		for _, provider := range group.members {
			serialized = append(serialized, s.serializeMember(name, provider))
		}
	}

	return serialized
}

// serializeMember emits the factory, registration, and attributes for one
// provider. Empty-dependency providers get no factory body but still
// register the runtime's shared empty factory so the aggregation stage sees
// a complete record.
func (s *ProviderSerializer) serializeMember(name templates.GroupName, provider *models.ProcessedProvider) models.SerializedProvider {
	if provider.IsEmptyDependency {
		return models.SerializedProvider{
			Registration: templates.GenerateRegistration(provider.PathString(), templates.EmptyFactoryRef),
			Attributes:   providerAttributes(provider, ""),
		}
	}

	factoryName := name.FactoryName(provider.Params)
	return models.SerializedProvider{
		Content:      templates.GenerateFactory(name, factoryName, provider),
		Registration: templates.GenerateRegistration(provider.PathString(), factoryName),
		Attributes:   providerAttributes(provider, factoryName),
	}
}
