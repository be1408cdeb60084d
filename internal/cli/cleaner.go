package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/weftdev/weft/internal/templates"
	"github.com/weftdev/weft/internal/utils"
)

// Cleaner removes generated provider files from the scanned directories
type Cleaner struct {
	scanner     *DirectoryScanner
	diagnostics *utils.DiagnosticSystem
}

// NewCleaner creates a new cleaner
func NewCleaner(diagnostics *utils.DiagnosticSystem) *Cleaner {
	return &Cleaner{
		scanner:     NewDirectoryScanner(),
		diagnostics: diagnostics,
	}
}

// Clean deletes every generated provider file under the given directories
// and returns the number of files removed.
func (c *Cleaner) Clean(directories []string) (int, error) {
	found, err := c.scanner.ScanDirectories(directories)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, dir := range found {
		path := filepath.Join(dir, templates.GeneratedFileName)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		c.diagnostics.Progress("removed %s", path)
		removed++
	}
	return removed, nil
}
