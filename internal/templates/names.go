package templates

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/weftdev/weft/internal/models"
)

// GroupName is the shared name token for one provider group. It is computed
// once per group and passed by value into every serializer that has to agree
// on the generated identifiers, so the derivation lives in exactly one place.
type GroupName struct {
	base string
}

// NewGroupName derives the token from the representative component's name, a
// digest of the group's property signature, and the group's position in
// first-appearance order. Identical input always yields the identical token;
// the index keeps tokens distinct across groups even when two signatures
// digest alike.
func NewGroupName(componentName string, signature []models.Property, index int) GroupName {
	return GroupName{
		base: fmt.Sprintf("%sDeps%08xg%d", componentName, propertyDigest(signature), index),
	}
}

// TypeName returns the name of the generated shared provider struct.
func (n GroupName) TypeName() string {
	return n.base + "Provider"
}

// ConstructorName returns the name of the shared provider's constructor.
func (n GroupName) ConstructorName() string {
	return "new" + n.base + "Provider"
}

// FactoryName returns the factory function name for one constructed
// parameter shape. Providers in the same group with identical parameter
// shapes intentionally collapse onto the same factory.
func (n GroupName) FactoryName(params []models.Property) string {
	return fmt.Sprintf("factory%s%08x", n.base, propertyDigest(params))
}

// propertyDigest hashes an ordered property list. Order is part of the
// identity, so entries are separated rather than concatenated raw.
func propertyDigest(props []models.Property) uint32 {
	h := fnv.New32a()
	for _, prop := range props {
		h.Write([]byte(prop.Name))
		h.Write([]byte{0})
		h.Write([]byte(prop.Type))
		h.Write([]byte{0})
	}
	return h.Sum32()
}

// ParameterList renders a property list as a Go parameter list fragment,
// e.g. "logger *logging.Logger, store *store.Store".
func ParameterList(params []models.Property) string {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		parts = append(parts, fmt.Sprintf("%s %s", lowerFirst(param.Name), param.Type))
	}
	return strings.Join(parts, ", ")
}

// lowerFirst converts an identifier to its unexported form
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
