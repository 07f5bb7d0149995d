// Package kvstore provides the local persistent key-value store used for
// session credentials and device identity. Values are JSON-serialized
// transparently; callers work with plain Go values.
package kvstore

// Store is a string-keyed store with JSON-encoded values.
type Store interface {
	// Set serializes value and persists it under key, overwriting any
	// prior value.
	Set(key string, value any) error
	// SetMany persists all entries in a single write, so a group of
	// related keys is never observed half-written.
	SetMany(entries map[string]any) error
	// Get decodes the stored value into out and reports whether the key
	// was present. An absent or undecodable value reads as not found.
	Get(key string, out any) bool
	// Remove deletes the key. Removing an absent key is a no-op.
	Remove(key string) error
	// RemoveMany deletes all given keys in a single write.
	RemoveMany(keys ...string) error
	// Clear removes all keys.
	Clear() error
}

// GetString is a convenience for the common string-valued case.
func GetString(s Store, key string) string {
	var v string
	if !s.Get(key, &v) {
		return ""
	}
	return v
}
