// Package main walks through the two cache variants provided by the
// cache package: the unbounded map-backed Cache and the fixed-capacity
// LRUCache. It stores a few keys and reads some back, then shows an
// eviction happening once the LRU cache is full.
package main

import (
	"fmt"

	"mini-cache/cache"
)

func main() {
	// Unbounded cache: grows with every new key, nothing is ever
	// evicted.
	c := cache.New[string, string]()
	c.Set("key1", "value1")
	c.Set("key2", "value2")

	if value, ok := c.Get("key1"); ok {
		fmt.Println("Found value:", value)
	}
	if _, ok := c.Get("key3"); !ok {
		fmt.Println("Value not found")
	}

	// LRU cache with room for two entries. Reading key1 marks it as
	// recently used, so the later insert pushes out key2 instead.
	lru := cache.NewLRU[string, string](2)
	lru.Set("key1", "value1")
	lru.Set("key2", "value2")

	if value, ok := lru.Get("key1"); ok {
		fmt.Println("Retrieved:", value)
	}

	lru.Set("key3", "value3")

	if _, ok := lru.Get("key2"); !ok {
		fmt.Println("key2 was evicted")
	}
}
