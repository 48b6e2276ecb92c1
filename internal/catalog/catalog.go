// Package catalog holds the static, read-only resource catalogs the engine searches over.
package catalog

import (
	"fmt"

	"github.com/osei-labs/adesua/internal/models"
)

// Category is a named group of resources within a catalog.
type Category struct {
	Name      string                   `json:"name" yaml:"name"`
	Resources []*models.ResourceRecord `json:"resources" yaml:"resources"`
}

// Catalog is the authoritative, immutable set of resources for one site page
// (e.g. Students Hub), plus its intent table. Built once, never mutated;
// a replacement catalog is swapped in whole on reload.
type Catalog struct {
	key        string
	name       string
	categories []Category
	resources  []*models.ResourceRecord
	byID       map[string]*models.ResourceRecord
	intents    []*models.IntentDefinition
}

// New builds and validates a catalog. Resource ids must be unique within the
// catalog, levels must be known, and every boosted category in the intent
// table must exist among the catalog's categories.
func New(key, name string, categories []Category, intents []*models.IntentDefinition) (*Catalog, error) {
	if key == "" {
		return nil, fmt.Errorf("catalog key is required")
	}
	c := &Catalog{
		key:        key,
		name:       name,
		categories: categories,
		intents:    intents,
		byID:       make(map[string]*models.ResourceRecord),
	}

	categoryNames := make(map[string]bool, len(categories))
	for _, cat := range categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("catalog %s: category name is required", key)
		}
		categoryNames[cat.Name] = true
		for _, res := range cat.Resources {
			if res.ID == "" {
				return nil, fmt.Errorf("catalog %s: resource in category %q has no id", key, cat.Name)
			}
			if _, dup := c.byID[res.ID]; dup {
				return nil, fmt.Errorf("catalog %s: duplicate resource id %q", key, res.ID)
			}
			if !res.Level.Valid() {
				return nil, fmt.Errorf("catalog %s: resource %s has unknown level %q", key, res.ID, res.Level)
			}
			if res.Category == "" {
				res.Category = cat.Name
			}
			c.byID[res.ID] = res
			c.resources = append(c.resources, res)
		}
	}

	intentKeys := make(map[string]bool, len(intents))
	for _, def := range intents {
		if def.Key == "" {
			return nil, fmt.Errorf("catalog %s: intent with no key", key)
		}
		if intentKeys[def.Key] {
			return nil, fmt.Errorf("catalog %s: duplicate intent key %q", key, def.Key)
		}
		intentKeys[def.Key] = true
		for _, boosted := range def.BoostedCategories {
			if !categoryNames[boosted] {
				return nil, fmt.Errorf("catalog %s: intent %s boosts unknown category %q", key, def.Key, boosted)
			}
		}
	}

	return c, nil
}

// Key returns the catalog's unique key.
func (c *Catalog) Key() string { return c.key }

// Name returns the catalog's display name.
func (c *Catalog) Name() string { return c.name }

// Len returns the number of resources in the catalog.
func (c *Catalog) Len() int { return len(c.resources) }

// AllResources returns the flattened resources across categories, in stable
// display order. The returned slice is a copy; records themselves are shared
// and must not be mutated.
func (c *Catalog) AllResources() []*models.ResourceRecord {
	return append([]*models.ResourceRecord(nil), c.resources...)
}

// Categories returns the catalog's categories in display order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// Resource returns the resource with the given id, if present.
func (c *Catalog) Resource(id string) (*models.ResourceRecord, bool) {
	res, ok := c.byID[id]
	return res, ok
}

// Intents returns the catalog's intent table in enumeration order.
func (c *Catalog) Intents() []*models.IntentDefinition {
	return append([]*models.IntentDefinition(nil), c.intents...)
}
