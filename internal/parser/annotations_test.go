package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotationParser_Parse(t *testing.T) {
	parser := NewAnnotationParser()

	tests := []struct {
		name        string
		comment     string
		expectError bool
		kind        string
		params      map[string]string
		flags       []string
	}{
		{
			name:    "bare component",
			comment: "// weft::component",
			kind:    "component",
			params:  map[string]string{},
		},
		{
			name:    "component with parent",
			comment: "// weft::component -parent=RootComponent",
			kind:    "component",
			params:  map[string]string{"parent": "RootComponent"},
		},
		{
			name:    "root flag",
			comment: "// weft::component -root",
			kind:    "component",
			params:  map[string]string{},
			flags:   []string{"root"},
		},
		{
			name:    "plugin component",
			comment: "// weft::component -plugin=HostComponent -parent=PluginRoot",
			kind:    "component",
			params:  map[string]string{"plugin": "HostComponent", "parent": "PluginRoot"},
		},
		{
			name:        "not an annotation",
			comment:     "// plain comment",
			expectError: true,
		},
		{
			name:        "malformed argument",
			comment:     "// weft::component -parent=",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parser.Parse(tt.comment)
			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.kind, parsed.Kind)
			assert.Equal(t, tt.params, parsed.Params)
			assert.Equal(t, tt.flags, parsed.Flags)
		})
	}
}

func TestIsAnnotation(t *testing.T) {
	assert.True(t, IsAnnotation("// weft::component"))
	assert.False(t, IsAnnotation("// just a comment"))
	assert.False(t, IsAnnotation("// weft without separator"))
}

func TestParsedAnnotation_HasFlag(t *testing.T) {
	annotation := &ParsedAnnotation{Flags: []string{"root"}}
	assert.True(t, annotation.HasFlag("root"))
	assert.False(t, annotation.HasFlag("plugin"))
}
