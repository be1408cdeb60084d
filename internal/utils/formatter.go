package utils

import (
	"fmt"
	"go/format"
	"os"

	"golang.org/x/tools/imports"
)

// FormatGoSource runs goimports-style processing on generated source:
// formatting plus adding and pruning import statements for the user packages
// the generated code references.
func FormatGoSource(filename string, source string) (string, error) {
	processed, err := imports.Process(filename, []byte(source), nil)
	if err != nil {
		// Fall back to plain formatting so the caller still gets valid
		// output when import resolution fails outside a module context.
		formatted, fmtErr := format.Source([]byte(source))
		if fmtErr != nil {
			return source, fmt.Errorf("generated source is not valid Go: %w", fmtErr)
		}
		return string(formatted), nil
	}
	return string(processed), nil
}

// FormatAndWriteGoFile formats generated code and writes it to a file
func FormatAndWriteGoFile(filename string, code string) error {
	formatted, err := FormatGoSource(filename, code)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filename, []byte(formatted), 0644); err != nil {
		return WrapWriteError(filename, err)
	}
	return nil
}
