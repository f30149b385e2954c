package memo

import (
	"container/list"
	"context"
	"sync"
)

// DefaultMaxEntries bounds a Memory store created with a non-positive size.
const DefaultMaxEntries = 4096

type entry struct {
	key   string
	value string
}

// Memory is a bounded in-memory LRU store.
//
// A hash map gives O(1) lookups and a doubly-linked list keeps recency order:
// the front holds the most recently used entry, the back is evicted first.
type Memory struct {
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
	maxSize  int
	hits     uint64
	misses   uint64
	closed   bool
}

// NewMemory creates an LRU store holding at most maxEntries results.
// A non-positive maxEntries uses DefaultMaxEntries.
func NewMemory(maxEntries int) *Memory {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Memory{
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		maxSize:  maxEntries,
	}
}

// Get returns the value for key and marks it as recently used.
func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.items[key]
	if !ok {
		m.misses++
		return "", ErrNotFound
	}

	m.hits++
	m.eviction.MoveToFront(elem)
	return elem.Value.(*entry).value, nil
}

// Set stores value under key, evicting the least recently used entry at capacity.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if elem, ok := m.items[key]; ok {
		elem.Value.(*entry).value = value
		m.eviction.MoveToFront(elem)
		return nil
	}

	if len(m.items) >= m.maxSize {
		if oldest := m.eviction.Back(); oldest != nil {
			m.eviction.Remove(oldest)
			delete(m.items, oldest.Value.(*entry).key)
		}
	}

	m.items[key] = m.eviction.PushFront(&entry{key: key, value: value})
	return nil
}

// Clear removes all entries and resets statistics.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	m.items = make(map[string]*list.Element)
	m.eviction.Init()
	m.hits, m.misses = 0, 0
	return nil
}

// Close marks the store as closed. Close is idempotent.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

// Len returns the number of memoized entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Stats returns hit and miss counters since creation or the last Clear.
func (m *Memory) Stats() (hits, misses uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits, m.misses
}

var _ Store = (*Memory)(nil)
