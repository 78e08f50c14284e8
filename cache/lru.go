package cache

// LRUCache is a fixed-capacity in-memory key-value cache with
// least-recently-used eviction:
//
//   - Every Set and every successful Get marks the touched key as the
//     most recently used.
//   - When an insertion pushes the cache past its capacity, the single
//     least recently used entry is evicted. Keys never touched after
//     insertion age in insertion order, first inserted first out.
//
// The capacity is fixed at construction and never changes. Lookups are
// mutating reads: a successful Get reorders the recency sequence, so
// even read-only usage changes observable state.
//
// LRUCache is not safe for concurrent use. Callers that need concurrent
// access must guard every operation with a single exclusive lock, or
// shard by key; a read-write lock is not enough because Get mutates.
type LRUCache[K comparable, V any] struct {
	capacity int               // Maximum entry count, always >= 1
	items    map[K]*node[K, V] // Authoritative store: key -> recency node
	order    *list[K, V]       // Recency order: front = most recently used
	onEvict  func(K, V)        // Optional callback for removed entries

	// Lifetime counters. Plain integers: the cache is single-owner, so
	// there is nothing to synchronize.
	hits      uint64
	misses    uint64
	evictions uint64
}

// Compile-time check that LRUCache extends the shared contract.
var _ Cacher[string, int] = (*LRUCache[string, int])(nil)

// NewLRU creates and returns a new empty LRUCache holding at most
// capacity entries.
//
// It panics if capacity is less than 1: a non-positive capacity is a
// programming error, not a runtime condition, and is rejected before
// the cache can exist in an invalid state.
func NewLRU[K comparable, V any](capacity int) *LRUCache[K, V] {
	return NewLRUWithEvict[K, V](capacity, nil)
}

// NewLRUWithEvict is like NewLRU but additionally registers a callback
// invoked synchronously with the key and value of every entry removed
// by capacity eviction or by Del. Purge does not invoke it.
func NewLRUWithEvict[K comparable, V any](capacity int, onEvict func(key K, value V)) *LRUCache[K, V] {
	if capacity < 1 {
		panic("cache: LRU capacity must be greater than 0")
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		items:    make(map[K]*node[K, V], capacity+1),
		order:    newList[K, V](),
		onEvict:  onEvict,
	}
}

// Set stores a key-value pair in the cache and marks the key as most
// recently used.
// If the key already exists, its value is overwritten in place. If the
// insertion pushes the cache past its capacity, the least recently used
// entry is evicted; at most one entry is evicted per call.
func (c *LRUCache[K, V]) Set(key K, value V) {
	if n, ok := c.items[key]; ok {
		// Overwrite in place and promote
		n.value = value
		c.order.MoveToFront(n)
		return
	}

	c.items[key] = c.order.PushFront(key, value)

	// Capacity can only ever be exceeded by exactly one entry here
	if len(c.items) > c.capacity {
		c.evictOldest()
	}
}

// Get retrieves a value by key from the cache.
// Returns the value and true if the key exists, or the zero value and
// false if it does not. A hit marks the key as most recently used; a
// miss leaves the store and recency order untouched.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	n, ok := c.items[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}

	c.hits++
	c.order.MoveToFront(n)
	return n.value, true
}

// Peek retrieves a value by key without marking it used. The recency
// order and the hit/miss counters are left untouched.
func (c *LRUCache[K, V]) Peek(key K) (V, bool) {
	n, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Contains reports whether a key is present without marking it used.
func (c *LRUCache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Del removes a key-value pair from the cache.
// Returns true if the key was present, false otherwise. A removed entry
// is reported to the eviction callback but not counted as an eviction.
func (c *LRUCache[K, V]) Del(key K) bool {
	n, ok := c.items[key]
	if !ok {
		return false
	}

	c.order.Remove(n)
	delete(c.items, key)

	if c.onEvict != nil {
		c.onEvict(n.key, n.value)
	}
	return true
}

// Oldest returns the least recently used key and value without marking
// the entry used. This is the entry the next overflowing Set would
// evict. Returns zero values and false if the cache is empty.
func (c *LRUCache[K, V]) Oldest() (K, V, bool) {
	n := c.order.Back()
	if n == nil {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}
	return n.key, n.value, true
}

// Keys returns the stored keys ordered from least to most recently
// used: the first key is the current eviction candidate.
func (c *LRUCache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.items))
	for n := c.order.Back(); n != nil; n = n.prev {
		keys = append(keys, n.key)
	}
	return keys
}

// Len returns the number of entries currently stored. It never exceeds
// Cap.
func (c *LRUCache[K, V]) Len() int {
	return len(c.items)
}

// Cap returns the capacity the cache was constructed with.
func (c *LRUCache[K, V]) Cap() int {
	return c.capacity
}

// Purge removes all entries from the cache. The eviction callback is
// not invoked; purging is caller-requested teardown, not capacity
// pressure. Lifetime counters are preserved.
func (c *LRUCache[K, V]) Purge() {
	c.items = make(map[K]*node[K, V], c.capacity+1)
	c.order.Clear()
}

// Stats returns a point-in-time snapshot of the cache counters.
func (c *LRUCache[K, V]) Stats() Stats {
	s := Stats{
		Len:       len(c.items),
		Cap:       c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total)
	}
	return s
}

// evictOldest removes the least recently used entry from both the store
// and the recency order.
func (c *LRUCache[K, V]) evictOldest() {
	n := c.order.RemoveBack()
	if n == nil {
		return
	}

	delete(c.items, n.key)
	c.evictions++

	if c.onEvict != nil {
		c.onEvict(n.key, n.value)
	}
}

// Stats is a point-in-time snapshot of an LRUCache's size and lifetime
// counters.
type Stats struct {
	// Len is the number of entries currently stored.
	Len int
	// Cap is the fixed capacity.
	Cap int
	// Hits counts Get calls that found their key.
	Hits uint64
	// Misses counts Get calls that did not.
	Misses uint64
	// Evictions counts entries removed by capacity pressure.
	Evictions uint64
	// HitRate is Hits over total lookups, 0 to 1. Zero when no lookups
	// have happened.
	HitRate float64
}
