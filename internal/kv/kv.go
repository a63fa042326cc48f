// Package kv defines the persistent string-keyed store the storage adapter
// is built on, with interchangeable on-disk backends.
package kv

import "context"

// Store is the persistence contract: raw text values under string keys.
// Get reports absence via ok=false rather than an error; every other
// failure surfaces as an error the caller decides how to treat.
//
// Implementations are not required to be safe for concurrent writers;
// the app funnels all access through a single process.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Keys(ctx context.Context) ([]string, error)
}
