package serializer

import (
	"strings"

	"github.com/weftdev/weft/internal/models"
)

// providerGroup holds the providers that share one dependency signature.
// Groups exist only through newProviderGroup, which seeds them with their
// first member, so a group is never empty.
type providerGroup struct {
	signature []models.Property
	members   []*models.ProcessedProvider
}

// newProviderGroup creates a group for a signature's first provider
func newProviderGroup(first *models.ProcessedProvider) *providerGroup {
	return &providerGroup{
		signature: first.Properties,
		members:   []*models.ProcessedProvider{first},
	}
}

func (g *providerGroup) add(provider *models.ProcessedProvider) {
	g.members = append(g.members, provider)
}

// representative returns the group's first member, which the shared
// declaration is derived from.
func (g *providerGroup) representative() *models.ProcessedProvider {
	if len(g.members) == 0 {
		panic("serializer: provider group has no members")
	}
	return g.members[0]
}

// signatureKey flattens an ordered property list into a map key. The
// separators keep adjacent fields from running together, so distinct
// signatures always produce distinct keys and order stays significant.
func signatureKey(props []models.Property) string {
	var key strings.Builder
	for _, prop := range props {
		key.WriteString(prop.Name)
		key.WriteByte(0x1f)
		key.WriteString(prop.Type)
		key.WriteByte(0x1e)
	}
	return key.String()
}

// groupProviders partitions providers by their ordered property signature.
// Group order follows the first appearance of each distinct signature and
// member order follows input order, so identical input always produces the
// identical partition.
func groupProviders(providers []*models.ProcessedProvider) []*providerGroup {
	index := make(map[string]*providerGroup)
	var groups []*providerGroup

	for _, provider := range providers {
		key := signatureKey(provider.Properties)
		if group, exists := index[key]; exists {
			group.add(provider)
			continue
		}
		group := newProviderGroup(provider)
		index[key] = group
		groups = append(groups, group)
	}

	return groups
}
