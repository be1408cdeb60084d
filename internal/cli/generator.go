package cli

import (
	"path/filepath"

	"github.com/google/uuid"

	"github.com/weftdev/weft/internal/models"
	"github.com/weftdev/weft/internal/parser"
	"github.com/weftdev/weft/internal/registry"
	"github.com/weftdev/weft/internal/serializer"
	"github.com/weftdev/weft/internal/templates"
	"github.com/weftdev/weft/internal/utils"
)

// GenerationSummary records what one generator run produced
type GenerationSummary struct {
	RunID          string   // unique id for this run
	ModuleName     string   // resolved module name
	PackageCount   int      // packages with components
	ComponentCount int      // components discovered
	GeneratedFiles []string // files written
}

// Generator coordinates the CLI generation process: scan, parse, validate,
// serialize, write.
type Generator struct {
	scanner        *DirectoryScanner
	moduleResolver *ModuleResolver
	parser         *parser.ComponentParser
	components     *registry.ComponentRegistry
	serializer     *serializer.ProviderSerializer
	diagnostics    *utils.DiagnosticSystem
	summary        GenerationSummary
}

// NewGenerator creates a new CLI generator
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		scanner:        NewDirectoryScanner(),
		moduleResolver: NewModuleResolver(),
		parser:         parser.NewComponentParser(),
		components:     registry.NewComponentRegistry(),
		serializer:     serializer.NewProviderSerializer(),
		diagnostics:    diagnostics,
		summary: GenerationSummary{
			RunID:          uuid.New().String(),
			GeneratedFiles: make([]string, 0),
		},
	}
}

// Summary returns the summary of the last run
func (g *Generator) Summary() GenerationSummary {
	return g.summary
}

// Run executes the generation process for the given configuration
func (g *Generator) Run(config Config) error {
	moduleName, err := g.moduleResolver.ResolveModuleName(config.ModuleName)
	if err != nil {
		g.diagnostics.Warn("module name not resolved: %v", err)
	} else {
		g.summary.ModuleName = moduleName
		g.diagnostics.Verbose("module: %s", moduleName)
	}
	g.diagnostics.Verbose("generation run %s", g.summary.RunID)

	directories, err := g.scanner.ScanDirectories(config.Directories)
	if err != nil {
		return utils.WrapResolveError("scan directories", err)
	}

	// First pass: discover every component so cross-package parents
	// resolve before any providers are built.
	var packages []*models.PackageMetadata
	for _, dir := range directories {
		pkg, err := g.parser.ParsePackage(dir)
		if err != nil {
			return utils.WrapParseError(dir, err)
		}
		if len(pkg.Components) == 0 {
			continue
		}

		for i := range pkg.Components {
			if err := g.components.Register(&pkg.Components[i]); err != nil {
				return err
			}
		}
		packages = append(packages, pkg)
		g.summary.ComponentCount += len(pkg.Components)
		g.diagnostics.Verbose("found %d component(s) in %s", len(pkg.Components), dir)
	}
	g.summary.PackageCount = len(packages)

	if err := g.components.Validate(); err != nil {
		return utils.WrapValidateError("component hierarchy", err)
	}

	// Second pass: serialize and write one provider file per package.
	packageDirs := make(map[string]string, len(packages))
	for _, pkg := range packages {
		packageDirs[pkg.PackageName] = pkg.PackagePath
	}
	for _, pkg := range packages {
		if err := g.generatePackage(pkg, packageDirs); err != nil {
			return utils.WrapGenerateError("package "+pkg.PackageName, err)
		}
	}

	g.diagnostics.Summary("Generation complete", []utils.SummaryStat{
		{Name: "Packages", Value: g.summary.PackageCount},
		{Name: "Components", Value: g.summary.ComponentCount},
		{Name: "Files written", Value: len(g.summary.GeneratedFiles)},
	})
	return nil
}

func (g *Generator) generatePackage(pkg *models.PackageMetadata, packageDirs map[string]string) error {
	providers, err := g.components.BuildProviders(pkg)
	if err != nil {
		return err
	}

	records := g.serializer.Serialize(providers)
	if len(records) == 0 {
		return nil
	}

	content := templates.AssembleFile(pkg.PackageName, records, g.resolveImports(pkg, providers, packageDirs))
	filePath := filepath.Join(pkg.PackagePath, templates.GeneratedFileName)

	if err := utils.FormatAndWriteGoFile(filePath, content); err != nil {
		return err
	}

	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, filePath)
	g.diagnostics.Progress("generated %s", filePath)
	return nil
}

// resolveImports collects import paths for dependency types that live in
// other scanned packages. Types from packages weft never scanned are left to
// the goimports pass in the formatting step.
func (g *Generator) resolveImports(pkg *models.PackageMetadata, providers []*models.ProcessedProvider, packageDirs map[string]string) *templates.ImportManager {
	imports := templates.NewImportManager()
	if g.summary.ModuleName == "" {
		return imports
	}

	for _, provider := range providers {
		for _, property := range provider.Properties {
			qualifier := utils.ExtractPackageFromType(property.Type)
			if qualifier == "" || qualifier == pkg.PackageName {
				continue
			}
			dir, known := packageDirs[qualifier]
			if !known {
				continue
			}
			importPath, err := g.moduleResolver.BuildPackagePath(g.summary.ModuleName, dir)
			if err != nil {
				g.diagnostics.Verbose("import path for package %s not resolved: %v", qualifier, err)
				continue
			}
			imports.Add(importPath)
		}
	}
	return imports
}
