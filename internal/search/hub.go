package search

import (
	"sync"

	"go.uber.org/zap"

	"github.com/osei-labs/adesua/internal/analytics"
	"github.com/osei-labs/adesua/internal/catalog"
	"github.com/osei-labs/adesua/internal/config"
)

// Hub holds one engine per catalog and supports atomic replacement when a
// catalog file is reloaded. Analytics and history survive a reload because
// they are keyed by catalog key on the shared backend.
type Hub struct {
	backend analytics.Backend
	cfg     *config.SearchConfig
	logger  *zap.Logger

	mu      sync.RWMutex
	engines map[string]*Engine
	order   []string
}

// NewHub builds a hub with an engine for every catalog in the registry.
func NewHub(registry *catalog.Registry, backend analytics.Backend, cfg *config.SearchConfig, logger *zap.Logger) *Hub {
	h := &Hub{
		backend: backend,
		cfg:     cfg,
		logger:  logger,
		engines: make(map[string]*Engine),
	}
	for _, key := range registry.Keys() {
		if cat, ok := registry.Get(key); ok {
			h.Reload(cat)
		}
	}
	return h
}

// Get returns the engine for a catalog key, if present.
func (h *Hub) Get(key string) (*Engine, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	engine, ok := h.engines[key]
	return engine, ok
}

// Reload builds a fresh engine for cat and swaps it in.
func (h *Hub) Reload(cat *catalog.Catalog) {
	engine := NewEngineForCatalog(cat, h.backend, h.cfg, h.logger)
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.engines[cat.Key()]; !exists {
		h.order = append(h.order, cat.Key())
	}
	h.engines[cat.Key()] = engine
}

// Remove drops the engine for a catalog key.
func (h *Hub) Remove(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.engines[key]; !exists {
		return
	}
	delete(h.engines, key)
	for i, k := range h.order {
		if k == key {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Keys returns catalog keys in insertion order.
func (h *Hub) Keys() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string(nil), h.order...)
}
