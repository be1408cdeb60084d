package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftdev/weft/internal/templates"
	"github.com/weftdev/weft/internal/utils"
)

const appSource = `package app

type Logger struct{}

// weft::component -root
type App struct {
	Logger *Logger
}

func NewApp(logger *Logger) *App {
	return &App{Logger: logger}
}

// weft::component -parent=App
type Worker struct{}
`

func newTestDiagnostics() *utils.DiagnosticSystem {
	diagnostics := utils.NewQuietDiagnostics()
	var out, errOut bytes.Buffer
	diagnostics.SetOutput(&out, &errOut)
	return diagnostics
}

func TestGeneratorRun_WritesProviderFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.go", appSource)

	generator := NewGenerator(newTestDiagnostics())
	err := generator.Run(Config{
		Directories: []string{dir},
		ModuleName:  "example.com/app",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, templates.GeneratedFileName))
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "Code generated by weft. DO NOT EDIT.")
	assert.Contains(t, content, "package app")
	assert.Contains(t, content, "weft.RegisterProviderFactory(\"^->App\"")
	assert.Contains(t, content, "weft.RegisterProviderFactory(\"^->App->Worker\", weft.EmptyProviderFactory)")
	assert.Contains(t, content, "func init()")

	summary := generator.Summary()
	assert.Equal(t, "example.com/app", summary.ModuleName)
	assert.Equal(t, 1, summary.PackageCount)
	assert.Equal(t, 2, summary.ComponentCount)
	assert.Len(t, summary.GeneratedFiles, 1)
	assert.NotEmpty(t, summary.RunID)
}

func TestGeneratorRun_HierarchyErrorSurfaces(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.go", `package app

// weft::component -parent=Missing
type Orphan struct{}
`)

	generator := NewGenerator(newTestDiagnostics())
	err := generator.Run(Config{Directories: []string{dir}, ModuleName: "example.com/app"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing")
}

func TestGeneratorRun_NoComponentsWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plain.go", "package plain\n\ntype Plain struct{}\n")

	generator := NewGenerator(newTestDiagnostics())
	err := generator.Run(Config{Directories: []string{dir}, ModuleName: "example.com/app"})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, templates.GeneratedFileName))
	assert.True(t, os.IsNotExist(err))
	assert.Zero(t, generator.Summary().PackageCount)
}

func TestCleaner_RemovesGeneratedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.go", appSource)

	generator := NewGenerator(newTestDiagnostics())
	require.NoError(t, generator.Run(Config{Directories: []string{dir}, ModuleName: "example.com/app"}))

	cleaner := NewCleaner(newTestDiagnostics())
	removed, err := cleaner.Clean([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(filepath.Join(dir, templates.GeneratedFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestCleaner_NothingToRemove(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.go", "package app\n")

	cleaner := NewCleaner(newTestDiagnostics())
	removed, err := cleaner.Clean([]string{dir})
	require.NoError(t, err)
	assert.Zero(t, removed)
}
