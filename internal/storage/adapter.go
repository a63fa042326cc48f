// Package storage is the typed persistence layer: a JSON adapter over the
// kv backend plus the collection-level operations for the three domain keys.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/evanmoss/dailyq/internal/kv"
	"github.com/evanmoss/dailyq/internal/logger"
)

// Storage keys. Each domain collection lives whole under a single key.
const (
	KeyDiaryEntries = "diary_entries"
	KeyQuestions    = "questions"
	KeySettings     = "settings"
)

// Service wraps a kv.Store with JSON (de)serialization.
//
// Failure model: reads never fail — an absent key, a backend read error,
// and corrupted stored JSON all present as "no data" (the latter two are
// logged). Write failures propagate to the caller.
type Service struct {
	kv kv.Store
}

func New(store kv.Store) *Service {
	return &Service{kv: store}
}

// Get fetches and decodes the value under key. ok is false when the key is
// absent or the stored text cannot be decoded into T.
func Get[T any](ctx context.Context, s *Service, key string) (T, bool) {
	var value T
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		logger.Error("storage read failed, treating as absent", "key", key, "error", err)
		return value, false
	}
	if !ok {
		return value, false
	}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		logger.Error("corrupted value in storage, treating as absent", "key", key, "error", err)
		var zero T
		return zero, false
	}
	return value, true
}

// Set serializes value to JSON and writes it under key.
func (s *Service) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value for key %q: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to persist key %q: %w", key, err)
	}
	return nil
}

// Remove deletes the value under key.
func (s *Service) Remove(ctx context.Context, key string) error {
	return s.kv.Remove(ctx, key)
}

// Clear deletes every key.
func (s *Service) Clear(ctx context.Context) error {
	return s.kv.Clear(ctx)
}

// Exists reports whether key currently holds raw text.
func (s *Service) Exists(ctx context.Context, key string) bool {
	_, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		logger.Error("storage read failed during existence check", "key", key, "error", err)
		return false
	}
	return ok
}

// AllKeys returns every key in the backend.
func (s *Service) AllKeys(ctx context.Context) []string {
	keys, err := s.kv.Keys(ctx)
	if err != nil {
		logger.Error("failed to list storage keys", "error", err)
		return []string{}
	}
	return keys
}
