package models

// ComponentMetadata represents a weft::component annotated struct discovered
// by the parser.
type ComponentMetadata struct {
	Name         string     // component name (the struct name)
	StructName   string     // name of the annotated struct
	PackageName  string     // package the struct is declared in
	PackagePath  string     // directory of the package
	Parent       string     // parent component name from -parent
	IsRoot       bool       // whether the component is a hierarchy root
	PluginHost   string     // host component name from -plugin, if any
	Dependencies []Property // exported non-embedded fields of the struct
	Params       []Property // parameters of the New<Struct> constructor, if present
	FileName     string     // file the annotation was found in
	Line         int        // line number of the annotation
}

// IsPlugin reports whether the component attaches to a host hierarchy
// instead of naming a parent directly.
func (c *ComponentMetadata) IsPlugin() bool {
	return c.PluginHost != ""
}

// PackageMetadata collects the components discovered in one package.
type PackageMetadata struct {
	PackageName string              // name of the package
	PackagePath string              // directory of the package
	Components  []ComponentMetadata // components in declaration order
}
