// Package store holds the in-memory state containers that sit between the
// command layer and persistent storage. Each store owns a cache of one
// domain collection, a loading flag, and a last-error message.
//
// Actions never return errors: a failed action leaves its message in the
// store's error field, read with Err and dismissed with ClearError. The
// caches are write-through — an action persists first and only updates the
// cache when the write succeeded.
//
// Stores are not safe for concurrent use by multiple goroutines without
// external synchronization; the CLI drives them from a single goroutine.
package store

// UnknownError is the message recorded when a failure is not a recognizable
// error value. Callers match on this exact string.
const UnknownError = "Unknown error"

// capture runs fn, recording a returned error's message in *dst. A panic
// out of the persistence layer is recovered here too: an error value keeps
// its message, anything else is normalized to UnknownError.
func capture(dst *string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			*dst = recoveredMessage(r)
		}
	}()
	if err := fn(); err != nil {
		*dst = err.Error()
	}
}

func recoveredMessage(r any) string {
	if err, ok := r.(error); ok && err != nil {
		return err.Error()
	}
	return UnknownError
}
