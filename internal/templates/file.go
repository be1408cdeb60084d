package templates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/weftdev/weft/internal/models"
)

// GeneratedFileName is the name weft writes its per-package output under.
const GeneratedFileName = "weftgen_providers.go"

// ImportManager collects and deduplicates the import paths a generated file
// needs.
type ImportManager struct {
	imports map[string]bool
}

// NewImportManager creates a new import manager
func NewImportManager() *ImportManager {
	return &ImportManager{
		imports: make(map[string]bool),
	}
}

// Add records an import path
func (im *ImportManager) Add(importPath string) {
	if importPath != "" {
		im.imports[importPath] = true
	}
}

// Generate renders the import block, sorted, or an empty string when nothing
// was recorded.
func (im *ImportManager) Generate() string {
	if len(im.imports) == 0 {
		return ""
	}

	paths := make([]string, 0, len(im.imports))
	for path := range im.imports {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var block strings.Builder
	block.WriteString("import (\n")
	for _, path := range paths {
		block.WriteString(fmt.Sprintf("\t%q\n", path))
	}
	block.WriteString(")\n\n")
	return block.String()
}

// AssembleFile stitches serialized provider records into one generated file:
// header, package clause, imports, every non-empty content block in record
// order, and an init function carrying the registrations. Import fixup for
// the referenced user packages happens later in the formatting step.
func AssembleFile(packageName string, records []models.SerializedProvider, imports *ImportManager) string {
	var file strings.Builder

	file.WriteString("// Code generated by weft. DO NOT EDIT.\n")
	file.WriteString("// This file was automatically generated and should not be modified manually.\n\n")
	file.WriteString(fmt.Sprintf("package %s\n\n", packageName))

	if imports == nil {
		imports = NewImportManager()
	}
	imports.Add("github.com/weftdev/weft/pkg/weft")
	file.WriteString(imports.Generate())

	for _, record := range records {
		if record.Content == "" {
			continue
		}
		file.WriteString(record.Content)
		file.WriteString("\n")
	}

	registrations := make([]string, 0, len(records))
	for _, record := range records {
		if record.Registration != "" {
			registrations = append(registrations, record.Registration)
		}
	}
	if len(registrations) > 0 {
		file.WriteString("func init() {\n")
		for _, registration := range registrations {
			file.WriteString(fmt.Sprintf("\t%s\n", registration))
		}
		file.WriteString("}\n")
	}

	return file.String()
}
