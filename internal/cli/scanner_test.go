package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestScanDirectories_SingleDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main\n")

	scanner := NewDirectoryScanner()
	found, err := scanner.ScanDirectories([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{dir}, found)
}

func TestScanDirectories_SkipsDirectoriesWithoutGoFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "nothing\n")

	scanner := NewDirectoryScanner()
	found, err := scanner.ScanDirectories([]string{dir})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestScanDirectories_RecursivePattern(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app"), "app.go", "package app\n")
	writeFile(t, filepath.Join(root, "app", "services"), "service.go", "package services\n")
	writeFile(t, filepath.Join(root, "vendor", "dep"), "dep.go", "package dep\n")
	writeFile(t, filepath.Join(root, "testdata"), "fixture.go", "package fixture\n")
	writeFile(t, filepath.Join(root, "docs"), "readme.txt", "docs\n")

	scanner := NewDirectoryScanner()
	found, err := scanner.ScanDirectories([]string{root + "/..."})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "app"),
		filepath.Join(root, "app", "services"),
	}, found)
}

func TestScanDirectories_TestOnlyFilesDoNotCount(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main_test.go", "package main\n")

	scanner := NewDirectoryScanner()
	found, err := scanner.ScanDirectories([]string{dir})
	require.NoError(t, err)
	assert.Empty(t, found)
}
