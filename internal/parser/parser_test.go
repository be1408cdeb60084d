package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftdev/weft/internal/models"
)

func TestParseSource_Component(t *testing.T) {
	source := `package app

import "example.com/app/internal/logging"

// RootComponent anchors the hierarchy.
// weft::component -root
type RootComponent struct {
	Logger *logging.Logger
}

// weft::component -parent=RootComponent
type SessionComponent struct {
	Logger *logging.Logger
	Store  *Store
	hidden int
}

func NewSessionComponent(timeout int) *SessionComponent {
	return &SessionComponent{}
}

type Store struct{}
`

	parser := NewComponentParser()
	metadata, err := parser.ParseSource("components.go", source)
	require.NoError(t, err)

	assert.Equal(t, "app", metadata.PackageName)
	require.Len(t, metadata.Components, 2)

	root := metadata.Components[0]
	assert.Equal(t, "RootComponent", root.Name)
	assert.True(t, root.IsRoot)
	assert.Empty(t, root.Parent)
	assert.Equal(t, []models.Property{{Name: "Logger", Type: "*logging.Logger"}}, root.Dependencies)

	session := metadata.Components[1]
	assert.Equal(t, "SessionComponent", session.Name)
	assert.Equal(t, "RootComponent", session.Parent)
	assert.False(t, session.IsRoot)
	// Unexported fields are not dependencies
	assert.Equal(t, []models.Property{
		{Name: "Logger", Type: "*logging.Logger"},
		{Name: "Store", Type: "*Store"},
	}, session.Dependencies)
	// Constructor parameters are picked up from NewSessionComponent
	assert.Equal(t, []models.Property{{Name: "timeout", Type: "int"}}, session.Params)
}

func TestParseSource_EmbeddedFieldsIgnored(t *testing.T) {
	source := `package app

// weft::component -root
type RootComponent struct {
	BaseComponent
	Logger *Logger
}

type BaseComponent struct{}
type Logger struct{}
`

	parser := NewComponentParser()
	metadata, err := parser.ParseSource("components.go", source)
	require.NoError(t, err)

	require.Len(t, metadata.Components, 1)
	assert.Equal(t, []models.Property{{Name: "Logger", Type: "*Logger"}}, metadata.Components[0].Dependencies)
}

func TestParseSource_EmptyDependencyComponent(t *testing.T) {
	source := `package app

// weft::component -parent=RootComponent
type IdleComponent struct{}
`

	parser := NewComponentParser()
	metadata, err := parser.ParseSource("components.go", source)
	require.NoError(t, err)

	require.Len(t, metadata.Components, 1)
	assert.Empty(t, metadata.Components[0].Dependencies)
}

func TestParseSource_PluginComponent(t *testing.T) {
	source := `package app

// weft::component -plugin=HostComponent
type ExtensionComponent struct {
	Host *HostComponent
}

type HostComponent struct{}
`

	parser := NewComponentParser()
	metadata, err := parser.ParseSource("components.go", source)
	require.NoError(t, err)

	require.Len(t, metadata.Components, 1)
	component := metadata.Components[0]
	assert.Equal(t, "HostComponent", component.PluginHost)
	assert.True(t, component.IsPlugin())
}

func TestParseSource_AnnotationOnNonStruct(t *testing.T) {
	source := `package app

// weft::component -root
type Alias = int
`

	parser := NewComponentParser()
	_, err := parser.ParseSource("components.go", source)
	require.Error(t, err)

	var genErr *models.GeneratorError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, models.ErrorTypeParsing, genErr.Type)
}

func TestParseSource_UnknownAnnotationKind(t *testing.T) {
	source := `package app

// weft::widget
type Widget struct{}
`

	parser := NewComponentParser()
	_, err := parser.ParseSource("components.go", source)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown annotation kind")
}

func TestParsePackage_SkipsGeneratedAndTestFiles(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "components.go", `package app

// weft::component -root
type RootComponent struct{}
`)
	writeFile(t, dir, "components_test.go", `package app

// weft::component -root
type TestOnlyComponent struct{}
`)
	writeFile(t, dir, "weftgen_providers.go", `package app
`)

	parser := NewComponentParser()
	metadata, err := parser.ParsePackage(dir)
	require.NoError(t, err)

	require.Len(t, metadata.Components, 1)
	assert.Equal(t, "RootComponent", metadata.Components[0].Name)
}

func TestParsePackage_ConstructorInSeparateFile(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "component.go", `package app

// weft::component -root
type RootComponent struct {
	Logger *Logger
}

type Logger struct{}
`)
	writeFile(t, dir, "constructor.go", `package app

func NewRootComponent(verbose bool) *RootComponent {
	return &RootComponent{}
}
`)

	parser := NewComponentParser()
	metadata, err := parser.ParsePackage(dir)
	require.NoError(t, err)

	require.Len(t, metadata.Components, 1)
	assert.Equal(t, []models.Property{{Name: "verbose", Type: "bool"}}, metadata.Components[0].Params)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}
