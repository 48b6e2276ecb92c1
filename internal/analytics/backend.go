package analytics

// Backend is the key-value durability layer behind analytics and search
// history. Values are opaque serialized records; keys are distinct per catalog
// and per feature (one analytics key and one history key per catalog).
type Backend interface {
	// Persist stores value under key, replacing any previous value.
	Persist(key string, value []byte) error
	// Load returns the value for key. The second return reports whether the
	// key was present.
	Load(key string) ([]byte, bool, error)
	Close() error
}
