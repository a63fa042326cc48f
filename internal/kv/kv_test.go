package kv

import (
	"context"
	"path/filepath"
	"slices"
	"testing"
)

// exerciseStore runs the Store contract against any backend.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	// absent key
	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	// set and read back
	if err := s.Set(ctx, "alpha", "one"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get(ctx, "alpha")
	if err != nil || !ok || v != "one" {
		t.Fatalf("Get(alpha) = %q ok=%v err=%v", v, ok, err)
	}

	// overwrite
	if err := s.Set(ctx, "alpha", "two"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if v, _, _ := s.Get(ctx, "alpha"); v != "two" {
		t.Fatalf("Get after overwrite = %q", v)
	}

	// empty value is a present value, not absence
	if err := s.Set(ctx, "blank", ""); err != nil {
		t.Fatalf("Set blank: %v", err)
	}
	if v, ok, _ := s.Get(ctx, "blank"); !ok || v != "" {
		t.Fatalf("Get(blank) = %q ok=%v", v, ok)
	}

	// keys
	if err := s.Set(ctx, "beta", "three"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	keys, err := s.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	slices.Sort(keys)
	want := []string{"alpha", "beta", "blank"}
	if !slices.Equal(keys, want) {
		t.Fatalf("Keys = %v, want %v", keys, want)
	}

	// remove, then removing again is a no-op
	if err := s.Remove(ctx, "alpha"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "alpha"); ok {
		t.Fatal("alpha still present after Remove")
	}
	if err := s.Remove(ctx, "alpha"); err != nil {
		t.Fatalf("Remove of absent key: %v", err)
	}

	// clear
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	keys, err = s.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys after Clear: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("Keys after Clear = %v", keys)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestDiskvStore(t *testing.T) {
	s, err := NewDiskvStore(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("NewDiskvStore: %v", err)
	}
	exerciseStore(t, s)
}

func TestDiskvStore_PersistsAcrossOpens(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	ctx := context.Background()

	s, err := NewDiskvStore(dir)
	if err != nil {
		t.Fatalf("NewDiskvStore: %v", err)
	}
	if err := s.Set(ctx, "alpha", "one"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := NewDiskvStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if v, ok, err := reopened.Get(ctx, "alpha"); err != nil || !ok || v != "one" {
		t.Fatalf("Get after reopen = %q ok=%v err=%v", v, ok, err)
	}
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

func TestSQLiteStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	if err := s.Set(ctx, "alpha", "one"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if v, ok, err := reopened.Get(ctx, "alpha"); err != nil || !ok || v != "one" {
		t.Fatalf("Get after reopen = %q ok=%v err=%v", v, ok, err)
	}
}
