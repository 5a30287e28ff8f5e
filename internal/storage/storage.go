// Package storage defines the key-value store the board persists into,
// plus memory, file and sqlite backed implementations.
package storage

// Fixed keys used by the persistence layer.
const (
	BoardKey = "boardkit:board"
	PrefsKey = "boardkit:prefs"
)

// KV is the minimal key-value surface the persistence adapter needs. It is
// injected rather than reached for globally so the board layers are
// testable without a real backend.
type KV interface {
	// Get returns the stored bytes, or ok=false when the key is absent.
	Get(key string) ([]byte, bool)
	// Set stores the bytes under key, overwriting any previous value.
	Set(key string, value []byte) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
	// Available reports whether the backend is usable at all.
	Available() bool
}
