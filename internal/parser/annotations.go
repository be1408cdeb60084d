package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// AnnotationPrefix marks a comment as carrying a weft annotation
const AnnotationPrefix = "weft::"

// ParsedAnnotation is the structured form of one weft:: comment
type ParsedAnnotation struct {
	Kind   string            // annotation kind, e.g. "component"
	Params map[string]string // -key=value parameters
	Flags  []string          // bare -key flags
}

// HasFlag reports whether a bare flag was present
func (a *ParsedAnnotation) HasFlag(name string) bool {
	for _, flag := range a.Flags {
		if flag == name {
			return true
		}
	}
	return false
}

// annotationAST is the participle grammar root for a weft annotation,
// e.g. "// weft::component -parent=RootComponent -root"
type annotationAST struct {
	Kind string   `parser:"Comment Weft Separator @Ident"`
	Args []argAST `parser:"@@*"`
}

// argAST represents one "-key" or "-key=value" argument
type argAST struct {
	Name  string `parser:"Dash @Ident"`
	Value string `parser:"( Equals @Ident )?"`
}

// AnnotationParser parses weft:: annotations using alecthomas/participle
type AnnotationParser struct {
	parser *participle.Parser[annotationAST]
}

// NewAnnotationParser builds the annotation grammar
func NewAnnotationParser() *AnnotationParser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//`},
		{Name: "Weft", Pattern: `weft`},
		{Name: "Separator", Pattern: `::`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Equals", Pattern: `=`},
		{Name: "Dash", Pattern: `-`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	return &AnnotationParser{
		parser: participle.MustBuild[annotationAST](
			participle.Lexer(lex),
			participle.Elide("Whitespace"),
		),
	}
}

// IsAnnotation reports whether a comment line carries a weft annotation
func IsAnnotation(comment string) bool {
	return strings.Contains(comment, AnnotationPrefix)
}

// Parse parses a single annotation comment line
func (p *AnnotationParser) Parse(comment string) (*ParsedAnnotation, error) {
	comment = strings.TrimSpace(comment)
	if !IsAnnotation(comment) {
		return nil, fmt.Errorf("comment is not a weft annotation: %s", comment)
	}

	ast, err := p.parser.ParseString("", comment)
	if err != nil {
		return nil, fmt.Errorf("invalid annotation syntax: %w", err)
	}

	parsed := &ParsedAnnotation{
		Kind:   ast.Kind,
		Params: make(map[string]string),
	}
	for _, arg := range ast.Args {
		if arg.Value == "" {
			parsed.Flags = append(parsed.Flags, arg.Name)
			continue
		}
		parsed.Params[arg.Name] = arg.Value
	}

	return parsed, nil
}
