package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DirectoryScanner expands directory arguments into the list of Go package
// directories to process. Supports Go-style "./..." patterns for recursive
// scanning.
type DirectoryScanner struct{}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{}
}

// ScanDirectories resolves the given patterns into directories that contain
// Go source files, in sorted order.
func (s *DirectoryScanner) ScanDirectories(rootDirs []string) ([]string, error) {
	found := make(map[string]bool)

	for _, rootDir := range rootDirs {
		recursive := false
		if strings.HasSuffix(rootDir, "/...") {
			recursive = true
			rootDir = strings.TrimSuffix(rootDir, "/...")
			if rootDir == "" {
				rootDir = "."
			}
		}

		cleanPath, err := filepath.Abs(rootDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", rootDir, err)
		}

		if !recursive {
			ok, err := hasGoFiles(cleanPath)
			if err != nil {
				return nil, err
			}
			if ok {
				found[cleanPath] = true
			}
			continue
		}

		err = filepath.WalkDir(cleanPath, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.IsDir() {
				return nil
			}
			name := entry.Name()
			if path != cleanPath && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor" || name == "testdata") {
				return filepath.SkipDir
			}
			ok, err := hasGoFiles(path)
			if err != nil {
				return err
			}
			if ok {
				found[path] = true
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %s: %w", cleanPath, err)
		}
	}

	directories := make([]string, 0, len(found))
	for dir := range found {
		directories = append(directories, dir)
	}
	sort.Strings(directories)
	return directories, nil
}

// hasGoFiles reports whether a directory directly contains non-test Go
// source files.
func hasGoFiles(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		return true, nil
	}
	return false, nil
}
