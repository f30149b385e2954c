package memo

import "errors"

// Sentinel errors for memo stores.
var (
	// ErrNotFound is returned when a key is not memoized.
	ErrNotFound = errors.New("memo: entry not found")

	// ErrClosed is returned when writing to a closed store.
	ErrClosed = errors.New("memo: store closed")
)
