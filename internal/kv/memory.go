package kv

import "context"

// MemoryStore is a map-backed Store used by tests and as a scratch backend.
type MemoryStore struct {
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.data = make(map[string]string)
	return nil
}

func (s *MemoryStore) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		keys = append(keys, key)
	}
	return keys, nil
}
