package level

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Loader reads level files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files, sorted by ID.
// Files that fail to parse are collected in skipped rather than aborting the walk.
func (l *Loader) LoadAll() (defs []Definition, skipped map[string]error, err error) {
	skipped = make(map[string]error)

	err = filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(FormatExtensions(), ext) {
			return nil
		}

		def, err := l.LoadFile(path)
		if err != nil {
			skipped[path] = err
			return nil
		}
		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs, skipped, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	def, err := ParseYAML(data)
	if err != nil {
		return Definition{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	def.Source = path
	return def, nil
}
