package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// resolveFile returns path made absolute against baseDir, or an error when
// nothing readable is there.
func resolveFile(baseDir, path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("file %q not found: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%q is a directory", path)
	}
	return path, nil
}

// ResolvePaths rewrites the file references in the config relative to baseDir
func (c *PeriscopeConfig) ResolvePaths(baseDir string) error {
	if c.Mirrors.Extra.FromFile == "" {
		return nil
	}
	resolved, err := resolveFile(baseDir, c.Mirrors.Extra.FromFile)
	if err != nil {
		return fmt.Errorf("mirrors.extra.from_file: %w", err)
	}
	c.Mirrors.Extra.FromFile = resolved
	return nil
}
