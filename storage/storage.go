package storage

// Storage is a synchronous string key-value store. Implementations must be
// safe for concurrent use.
type Storage interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)
	// Set writes value under key, replacing any previous value.
	Set(key, value string)
	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key string)
}
