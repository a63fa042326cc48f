package store

import (
	"context"
	"errors"
	"testing"

	"github.com/evanmoss/dailyq/internal/kv"
	"github.com/evanmoss/dailyq/internal/storage"
)

// flakyKV wraps the in-memory backend with injectable write failures, so
// tests can drive the stores' error field without a real broken disk.
type flakyKV struct {
	*kv.MemoryStore
	setErr   error
	panicSet any
}

func (f *flakyKV) Set(ctx context.Context, key, value string) error {
	if f.panicSet != nil {
		panic(f.panicSet)
	}
	if f.setErr != nil {
		return f.setErr
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func newFlaky() (*storage.Service, *flakyKV) {
	backend := &flakyKV{MemoryStore: kv.NewMemoryStore()}
	return storage.New(backend), backend
}

func TestCapture_ErrorMessage(t *testing.T) {
	var msg string
	capture(&msg, func() error { return errors.New("disk full") })
	if msg != "disk full" {
		t.Errorf("msg = %q", msg)
	}
}

func TestCapture_Success(t *testing.T) {
	msg := "stale"
	capture(&msg, func() error { return nil })
	if msg != "stale" {
		t.Errorf("capture cleared the message: %q", msg)
	}
}

func TestCapture_PanicWithError(t *testing.T) {
	var msg string
	capture(&msg, func() error { panic(errors.New("backend exploded")) })
	if msg != "backend exploded" {
		t.Errorf("msg = %q", msg)
	}
}

func TestCapture_PanicWithNonError(t *testing.T) {
	for _, v := range []any{42, "boom", struct{}{}} {
		var msg string
		capture(&msg, func() error { panic(v) })
		if msg != UnknownError {
			t.Errorf("panic(%v): msg = %q, want %q", v, msg, UnknownError)
		}
	}
}
