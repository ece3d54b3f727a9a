package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ListDatasets returns the names of the subdirectories of basePath that
// contain a meta.json, sorted by name
func ListDatasets(basePath string) ([]string, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(basePath, entry.Name(), metaFile)); err != nil {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}
