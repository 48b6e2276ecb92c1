package catalog

import "sync"

// Registry holds the live set of catalogs keyed by catalog key. Reads take a
// snapshot pointer, so a reload swapping a catalog never exposes a partially
// built one to an in-flight search.
type Registry struct {
	mu       sync.RWMutex
	catalogs map[string]*Catalog
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{catalogs: make(map[string]*Catalog)}
}

// Get returns the catalog for key, if present.
func (r *Registry) Get(key string) (*Catalog, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cat, ok := r.catalogs[key]
	return cat, ok
}

// Put inserts or replaces the catalog under its own key.
func (r *Registry) Put(cat *Catalog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.catalogs[cat.Key()]; !exists {
		r.order = append(r.order, cat.Key())
	}
	r.catalogs[cat.Key()] = cat
}

// Remove deletes the catalog for key, if present.
func (r *Registry) Remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.catalogs[key]; !exists {
		return
	}
	delete(r.catalogs, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Keys returns catalog keys in insertion order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Len returns the number of catalogs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.catalogs)
}
