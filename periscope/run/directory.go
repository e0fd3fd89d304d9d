package run

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jdginn/go-periscope/logger"
)

const LatestSymlink = "latest"

type Directory struct {
	Path      string    // Absolute path to the run directory
	ID        string    // Unique run identifier
	Timestamp time.Time // When the run was created
}

// CreateDirectory creates a new run directory under root and points the
// "latest" symlink at it. A symlink failure is logged, not returned.
func CreateDirectory(root string, log logger.Logger) (*Directory, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating runs directory: %w", err)
	}

	id := GenerateID()

	absPath, err := filepath.Abs(filepath.Join(root, id))
	if err != nil {
		return nil, fmt.Errorf("getting absolute path: %w", err)
	}

	if err := os.Mkdir(absPath, 0755); err != nil {
		return nil, fmt.Errorf("creating run directory: %w", err)
	}

	latestPath := filepath.Join(root, LatestSymlink)
	_ = os.Remove(latestPath)
	if err := os.Symlink(id, latestPath); err != nil {
		log.Warn("failed to create latest symlink", "path", latestPath, "err", err)
	}

	return &Directory{
		Path:      absPath,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}, nil
}

// GetFilePath returns the absolute path for a file in the run directory
func (d *Directory) GetFilePath(filename string) string {
	return filepath.Join(d.Path, filename)
}

// CopyFile copies srcPath into the run directory, keeping its base name
func (d *Directory) CopyFile(srcPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}

	if err := os.WriteFile(d.GetFilePath(filepath.Base(srcPath)), content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(srcPath), err)
	}

	return nil
}
