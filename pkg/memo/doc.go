// Package memo memoizes pure string transformations.
//
// A Store keeps results keyed by input. Two implementations are provided:
// Memory, a bounded LRU for a single process, and Redis, for sharing results
// between processes. Do wraps a computation with lookup, singleflight
// deduplication of concurrent misses, and a best-effort write-back:
//
//	store := memo.NewMemory(1024)
//	defer store.Close()
//
//	out := memo.Do(ctx, store, "snake:1:_HelloWorld", func() string {
//		return expensive("HelloWorld")
//	})
//
// Memoization never changes results. If the store misses, is closed, or its
// backend is unreachable, Do simply calls the function again.
package memo
