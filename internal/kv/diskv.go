package kv

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvStore keeps each key in its own file under a base directory.
type DiskvStore struct {
	d *diskv.Diskv
}

// NewDiskvStore creates a file-per-key store rooted at basePath.
func NewDiskvStore(basePath string) (*DiskvStore, error) {
	if err := os.MkdirAll(basePath, 0700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &DiskvStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func (s *DiskvStore) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return string(data), true, nil
}

func (s *DiskvStore) Set(ctx context.Context, key, value string) error {
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *DiskvStore) Remove(ctx context.Context, key string) error {
	if err := s.d.Erase(key); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}

func (s *DiskvStore) Clear(ctx context.Context) error {
	if err := s.d.EraseAll(); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return nil
}

func (s *DiskvStore) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	for key := range s.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	return keys, nil
}
