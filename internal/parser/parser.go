package parser

import (
	"fmt"
	"go/ast"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/weftdev/weft/internal/models"
	"github.com/weftdev/weft/internal/templates"
	"github.com/weftdev/weft/internal/utils"
)

// ComponentParser discovers weft::component annotated structs in Go
// packages and turns them into component metadata for the registry.
type ComponentParser struct {
	fileReader  *utils.FileReader
	annotations *AnnotationParser
}

// NewComponentParser creates a new component parser
func NewComponentParser() *ComponentParser {
	return &ComponentParser{
		fileReader:  utils.NewFileReader(),
		annotations: NewAnnotationParser(),
	}
}

// ParsePackage parses every Go file in a package directory. Generated and
// test files are skipped. Component order follows file name order, then
// declaration order within a file, so repeated runs see the same sequence.
func (p *ComponentParser) ParsePackage(dir string) (*models.PackageMetadata, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, utils.WrapParseError(fmt.Sprintf("package directory %s", dir), err)
	}

	var fileNames []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		if strings.HasSuffix(name, "_test.go") || name == templates.GeneratedFileName {
			continue
		}
		fileNames = append(fileNames, name)
	}
	sort.Strings(fileNames)

	var files []*ast.File
	var paths []string
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		file, err := p.fileReader.ParseGoFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
		paths = append(paths, path)
	}

	return p.parseFiles(dir, files, paths)
}

// ParseSource parses component metadata from in-memory source, used by tests
func (p *ComponentParser) ParseSource(filename, source string) (*models.PackageMetadata, error) {
	file, err := p.fileReader.ParseGoSource(filename, source)
	if err != nil {
		return nil, err
	}
	return p.parseFiles("", []*ast.File{file}, []string{filename})
}

func (p *ComponentParser) parseFiles(dir string, files []*ast.File, paths []string) (*models.PackageMetadata, error) {
	metadata := &models.PackageMetadata{PackagePath: dir}

	// Constructors may live in a different file than their component, so
	// collect them across the whole package first.
	constructors := make(map[string][]models.Property)
	for _, file := range files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || !strings.HasPrefix(fn.Name.Name, "New") {
				continue
			}
			constructors[strings.TrimPrefix(fn.Name.Name, "New")] = fieldProperties(fn.Type.Params)
		}
	}

	for i, file := range files {
		if metadata.PackageName == "" {
			metadata.PackageName = file.Name.Name
		}

		components, err := p.parseFile(file, paths[i], dir)
		if err != nil {
			return nil, err
		}
		for _, component := range components {
			component.Params = constructors[component.StructName]
			metadata.Components = append(metadata.Components, *component)
		}
	}

	return metadata, nil
}

func (p *ComponentParser) parseFile(file *ast.File, path, dir string) ([]*models.ComponentMetadata, error) {
	var components []*models.ComponentMetadata

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Doc == nil {
			continue
		}

		annotation, line, err := p.componentAnnotation(genDecl.Doc, path)
		if err != nil {
			return nil, err
		}
		if annotation == nil {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				return nil, &models.GeneratorError{
					Type:    models.ErrorTypeParsing,
					File:    path,
					Line:    line,
					Message: fmt.Sprintf("weft::component annotation on non-struct type %s", typeSpec.Name.Name),
				}
			}

			components = append(components, &models.ComponentMetadata{
				Name:         typeSpec.Name.Name,
				StructName:   typeSpec.Name.Name,
				PackageName:  file.Name.Name,
				PackagePath:  dir,
				Parent:       annotation.Params["parent"],
				IsRoot:       annotation.HasFlag("root"),
				PluginHost:   annotation.Params["plugin"],
				Dependencies: structProperties(structType),
				FileName:     filepath.Base(path),
				Line:         line,
			})
		}
	}

	return components, nil
}

// componentAnnotation finds and parses a weft::component annotation in a doc
// comment group. Returns nil when no weft annotation is present.
func (p *ComponentParser) componentAnnotation(doc *ast.CommentGroup, path string) (*ParsedAnnotation, int, error) {
	for _, comment := range doc.List {
		if !IsAnnotation(comment.Text) {
			continue
		}

		line := p.fileReader.FileSet().Position(comment.Pos()).Line
		annotation, err := p.annotations.Parse(comment.Text)
		if err != nil {
			return nil, 0, &models.GeneratorError{
				Type:    models.ErrorTypeParsing,
				File:    path,
				Line:    line,
				Message: err.Error(),
				Cause:   err,
			}
		}
		if annotation.Kind != "component" {
			return nil, 0, &models.GeneratorError{
				Type:    models.ErrorTypeParsing,
				File:    path,
				Line:    line,
				Message: fmt.Sprintf("unknown annotation kind %q", annotation.Kind),
			}
		}
		return annotation, line, nil
	}
	return nil, 0, nil
}

// structProperties extracts the dependency properties of a component:
// every named exported field, in declaration order. Embedded fields are the
// component's structural plumbing, not dependencies.
func structProperties(structType *ast.StructType) []models.Property {
	var props []models.Property
	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			continue
		}
		typeName := types.ExprString(field.Type)
		for _, name := range field.Names {
			if !name.IsExported() {
				continue
			}
			props = append(props, models.Property{Name: name.Name, Type: typeName})
		}
	}
	return props
}

// fieldProperties extracts (name, type) pairs from a parameter list
func fieldProperties(fields *ast.FieldList) []models.Property {
	if fields == nil {
		return nil
	}
	var props []models.Property
	for _, field := range fields.List {
		typeName := types.ExprString(field.Type)
		for _, name := range field.Names {
			props = append(props, models.Property{Name: name.Name, Type: typeName})
		}
	}
	return props
}
