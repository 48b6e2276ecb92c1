package analytics

import "sync"

// MemoryBackend is an in-process Backend, used in tests and by the one-shot CLI
// commands that run without a database.
type MemoryBackend struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

// Persist stores a copy of value under key.
func (b *MemoryBackend) Persist(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[key] = append([]byte(nil), value...)
	return nil
}

// Load returns the value for key, if present.
func (b *MemoryBackend) Load(key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	value, ok := b.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// Close is a no-op.
func (b *MemoryBackend) Close() error { return nil }
