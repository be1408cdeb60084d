package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/weftdev/weft/internal/utils"
)

// ModuleResolver handles resolving Go module information
type ModuleResolver struct {
	gomod *utils.GoModParser
}

// NewModuleResolver creates a new module resolver
func NewModuleResolver() *ModuleResolver {
	return &ModuleResolver{
		gomod: utils.NewGoModParser(utils.NewFileReader()),
	}
}

// ResolveModuleName resolves the module name. A custom name wins; otherwise
// the nearest go.mod above the working directory is consulted.
func (r *ModuleResolver) ResolveModuleName(customModule string) (string, error) {
	if customModule != "" {
		return customModule, nil
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	goModPath, err := r.gomod.FindGoModFile(currentDir)
	if err != nil {
		return "", fmt.Errorf("failed to determine module name: %w (consider using --module flag)", err)
	}

	return r.gomod.ParseModuleName(goModPath)
}

// BuildPackagePath builds the import path for a package directory relative
// to the module root.
func (r *ModuleResolver) BuildPackagePath(moduleName, packageDir string) (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	goModPath, err := r.gomod.FindGoModFile(currentDir)
	if err != nil {
		return "", err
	}

	relative, err := filepath.Rel(filepath.Dir(goModPath), packageDir)
	if err != nil {
		return "", fmt.Errorf("failed to relativize package path %s: %w", packageDir, err)
	}
	if relative == "." {
		return moduleName, nil
	}
	return moduleName + "/" + filepath.ToSlash(relative), nil
}
