package cache

// Cacher is the contract shared by both cache variants. The unbounded
// Cache satisfies it with plain map semantics; LRUCache extends the same
// contract with a capacity bound and recency-based eviction.
type Cacher[K comparable, V any] interface {
	// Set stores a key-value pair, overwriting any existing value.
	Set(key K, value V)

	// Get retrieves a value by key. The second result reports whether
	// the key was present.
	Get(key K) (V, bool)

	// Del removes a key-value pair, reporting whether it was present.
	Del(key K) bool

	// Len returns the number of stored entries.
	Len() int

	// Purge removes all entries.
	Purge()
}

// Cache represents an unbounded in-memory key-value store. Entries stay
// until deleted or purged; nothing is ever evicted or expired, and a
// lookup has no side effect on any ordering.
//
// Cache is not safe for concurrent use. Callers sharing one across
// goroutines must guard it with their own synchronization.
type Cache[K comparable, V any] struct {
	data map[K]V // Main storage: key -> value mapping
}

// Compile-time check that Cache satisfies the shared contract.
var _ Cacher[string, int] = (*Cache[string, int])(nil)

// New creates and returns a new empty Cache instance.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		data: make(map[K]V),
	}
}

// Set stores a key-value pair in the cache.
// If the key already exists, its value is overwritten.
func (c *Cache[K, V]) Set(key K, value V) {
	c.data[key] = value
}

// Get retrieves a value by key from the cache.
// Returns the value and true if the key exists, or the zero value and
// false if it does not. A miss is a normal outcome, not an error.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	value, ok := c.data[key]
	return value, ok
}

// Del removes a key-value pair from the cache.
// Returns true if the key was present, false otherwise. Deleting an
// absent key is a no-op.
func (c *Cache[K, V]) Del(key K) bool {
	if _, ok := c.data[key]; !ok {
		return false
	}
	delete(c.data, key)
	return true
}

// Len returns the number of entries currently stored.
func (c *Cache[K, V]) Len() int {
	return len(c.data)
}

// Keys returns the stored keys in unspecified order.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.data))
	for key := range c.data {
		keys = append(keys, key)
	}
	return keys
}

// Purge removes all entries from the cache.
func (c *Cache[K, V]) Purge() {
	c.data = make(map[K]V)
}
