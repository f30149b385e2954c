package memo

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Store keeps results of pure string transformations keyed by their input.
// Entries never go stale, so stores have no per-entry TTL semantics of their own.
type Store interface {
	// Get returns ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key.
	Set(ctx context.Context, key, value string) error

	// Clear removes all entries owned by the store.
	Clear(ctx context.Context) error

	// Close releases resources. Further writes return ErrClosed.
	Close() error
}

var group singleflight.Group

// Do returns the memoized result for key, computing it with fn on a miss.
//
// Concurrent misses for the same key share a single fn call. Any store
// failure (miss, closed store, unreachable backend) falls back to fn, so the
// result is always what fn would return. A nil store disables memoization.
func Do(ctx context.Context, s Store, key string, fn func() string) string {
	if s == nil {
		return fn()
	}

	if v, err := s.Get(ctx, key); err == nil {
		return v
	}

	v, _, _ := group.Do(key, func() (any, error) {
		return fn(), nil
	})
	out := v.(string)

	// Best-effort: a failed write only costs a recomputation later.
	_ = s.Set(ctx, key, out)

	return out
}
