package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists keys in a single JSON file. Writes go through a temp
// file and rename, so readers never see a partial group of keys. Calls are
// synchronous and the store is single-process; no locking is needed.
type FileStore struct {
	path string
}

// DefaultDir returns the state directory for the helpdesk CLI,
// ~/.local/state/helpdesk, creating it if necessary.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".local", "state", "helpdesk")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// NewFileStore creates a store backed by the given file. The file is created
// on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() map[string]json.RawMessage {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]json.RawMessage{}
	}
	entries := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &entries); err != nil {
		// A corrupt file reads as empty; the next write replaces it.
		return map[string]json.RawMessage{}
	}
	return entries
}

func (s *FileStore) save(entries map[string]json.RawMessage) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing store: %w", err)
	}
	return nil
}

func (s *FileStore) Set(key string, value any) error {
	return s.SetMany(map[string]any{key: value})
}

func (s *FileStore) SetMany(values map[string]any) error {
	entries := s.load()
	for key, value := range values {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding %q: %w", key, err)
		}
		entries[key] = data
	}
	return s.save(entries)
}

func (s *FileStore) Get(key string, out any) bool {
	entries := s.load()
	raw, ok := entries[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}
	return true
}

func (s *FileStore) Remove(key string) error {
	return s.RemoveMany(key)
}

func (s *FileStore) RemoveMany(keys ...string) error {
	entries := s.load()
	changed := false
	for _, key := range keys {
		if _, ok := entries[key]; ok {
			delete(entries, key)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.save(entries)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
