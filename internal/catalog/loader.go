package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osei-labs/adesua/internal/models"
)

// catalogFile is the YAML document shape for one catalog file.
type catalogFile struct {
	Key        string                     `yaml:"key"`
	Name       string                     `yaml:"name"`
	Intents    []*models.IntentDefinition `yaml:"intents"`
	Categories []Category                 `yaml:"categories"`
}

// LoadFile reads and validates a single catalog YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if file.Key == "" {
		// Fall back to the file name so a catalog file is usable without a key field.
		base := filepath.Base(path)
		file.Key = strings.TrimSuffix(base, filepath.Ext(base))
	}

	cat, err := New(file.Key, file.Name, file.Categories, file.Intents)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return cat, nil
}

// LoadDir loads every .yaml/.yml file in dir into a Registry, in lexical file
// order. Catalog keys must be unique across files. An empty directory yields
// an empty registry, which is valid (search over it returns no results).
func LoadDir(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsCatalogFile(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	registry := NewRegistry()
	for _, path := range paths {
		cat, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if _, exists := registry.Get(cat.Key()); exists {
			return nil, fmt.Errorf("duplicate catalog key %q in %s", cat.Key(), path)
		}
		registry.Put(cat)
	}
	return registry, nil
}

// IsCatalogFile reports whether name looks like a catalog YAML file.
func IsCatalogFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
