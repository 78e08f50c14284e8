// Package cache provides two generic in-memory key-value cache
// variants sharing one contract.
//
// # Cache[K, V]
//
// An unbounded map-backed store. Set inserts or overwrites and Get
// returns the value or absence; nothing is ever evicted:
//
//	c := cache.New[string, string]()
//	c.Set("greeting", "hello")
//	value, ok := c.Get("greeting")
//
// # LRUCache[K, V]
//
// A fixed-capacity store that tracks access recency and evicts the
// least recently used entry when an insertion overflows the capacity:
//
//	c := cache.NewLRU[string, int](128)
//	c.Set("a", 1)
//	value, ok := c.Get("a") // marks "a" most recently used
//
// Recency is maintained with a doubly-linked list threaded through the
// store's entries, so Set, Get, and Del are O(1). Note that Get is a
// mutating read: a hit promotes the key in the recency order. Peek and
// Contains are provided for side-effect-free inspection.
//
// # Concurrency
//
// Neither variant is safe for concurrent use. Precisely because reads
// mutate recency state, callers that share a cache across goroutines
// must guard every operation, including Get, with a single exclusive
// lock, or shard by key.
//
// # Observability
//
// LRUCache keeps lifetime hit/miss/eviction counters, exposed as a
// snapshot via Stats and as Prometheus metrics via Collector.
package cache
