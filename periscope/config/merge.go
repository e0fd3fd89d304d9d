package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// MergeMirrors appends the mirrors listed in FromFile to the inline mirrors.
// A file mirror whose name is already used inline is skipped, so inline
// definitions take precedence.
func (e *Extra) MergeMirrors() error {
	if e.FromFile == "" {
		return nil
	}

	data, err := os.ReadFile(e.FromFile)
	if err != nil {
		return fmt.Errorf("reading mirrors file: %w", err)
	}

	var fileMirrors []Mirror
	if err := json.Unmarshal(data, &fileMirrors); err != nil {
		return fmt.Errorf("parsing mirrors file: %w", err)
	}

	for _, mirror := range fileMirrors {
		if mirror.Name != "" && e.HasMirror(mirror.Name) {
			continue
		}
		e.Inline = append(e.Inline, mirror)
	}

	return nil
}

// HasMirror reports whether an inline mirror has the given name
func (e *Extra) HasMirror(name string) bool {
	for _, m := range e.Inline {
		if m.Name == name {
			return true
		}
	}
	return false
}

// LoadAndMerge loads all external files and merges their contents
func (c *PeriscopeConfig) LoadAndMerge() error {
	if err := c.Mirrors.Extra.MergeMirrors(); err != nil {
		return fmt.Errorf("merging extra mirrors: %w", err)
	}
	return nil
}
