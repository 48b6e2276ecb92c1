// Package history maintains the bounded list of recent search queries.
package history

import (
	"encoding/json"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/osei-labs/adesua/internal/analytics"
)

// DefaultLimit is the number of recent queries retained.
const DefaultLimit = 10

// History is the persisted, most-recent-first list of distinct queries. A
// re-issued query moves to the front rather than appearing twice; comparison
// is case-insensitive. Persistence is best-effort, same policy as analytics.
type History struct {
	backend analytics.Backend
	key     string
	limit   int
	logger  *zap.Logger

	mu      sync.Mutex
	entries []string
}

// New creates a history persisting under key. Existing entries are loaded from
// the backend; a missing or corrupt value yields an empty history.
func New(backend analytics.Backend, key string, limit int, logger *zap.Logger) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &History{backend: backend, key: key, limit: limit, logger: logger}
	h.load()
	return h
}

func (h *History) load() {
	data, found, err := h.backend.Load(h.key)
	if err != nil {
		h.logger.Warn("history load failed, starting empty", zap.String("key", h.key), zap.Error(err))
		return
	}
	if !found {
		return
	}
	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		h.logger.Warn("history state corrupt, starting empty", zap.String("key", h.key), zap.Error(err))
		return
	}
	if len(entries) > h.limit {
		entries = entries[:h.limit]
	}
	h.entries = entries
}

// Record inserts query at the front, removing any existing case-insensitive
// duplicate, and trims to the limit. Blank queries are ignored.
func (h *History) Record(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	lower := strings.ToLower(query)
	for i, entry := range h.entries {
		if strings.ToLower(entry) == lower {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			break
		}
	}
	h.entries = append([]string{query}, h.entries...)
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
	h.flushLocked()
}

// Entries returns a copy of the history, most recent first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries...)
}

// Matching returns up to limit history entries containing partial as a
// case-insensitive substring, most recent first.
func (h *History) Matching(partial string, limit int) []string {
	partial = strings.ToLower(strings.TrimSpace(partial))
	if partial == "" || limit <= 0 {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	var matches []string
	for _, entry := range h.entries {
		if strings.Contains(strings.ToLower(entry), partial) {
			matches = append(matches, entry)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}

func (h *History) flushLocked() {
	data, err := json.Marshal(h.entries)
	if err != nil {
		h.logger.Warn("history marshal failed", zap.String("key", h.key), zap.Error(err))
		return
	}
	if err := h.backend.Persist(h.key, data); err != nil {
		h.logger.Warn("history persist failed", zap.String("key", h.key), zap.Error(err))
	}
}
