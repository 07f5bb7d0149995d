package kvstore

import "encoding/json"

// MemStore is an in-memory Store used in tests.
type MemStore struct {
	entries map[string]json.RawMessage
}

func NewMemStore() *MemStore {
	return &MemStore{entries: map[string]json.RawMessage{}}
}

func (s *MemStore) Set(key string, value any) error {
	return s.SetMany(map[string]any{key: value})
}

func (s *MemStore) SetMany(values map[string]any) error {
	for key, value := range values {
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		s.entries[key] = data
	}
	return nil
}

func (s *MemStore) Get(key string, out any) bool {
	raw, ok := s.entries[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (s *MemStore) Remove(key string) error {
	delete(s.entries, key)
	return nil
}

func (s *MemStore) RemoveMany(keys ...string) error {
	for _, key := range keys {
		delete(s.entries, key)
	}
	return nil
}

func (s *MemStore) Clear() error {
	s.entries = map[string]json.RawMessage{}
	return nil
}
