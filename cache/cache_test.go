package cache

import (
	"sort"
	"strconv"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestCacheSetGet(t *testing.T) {
	c := New[string, string]()
	c.Set("key1", "value1")
	c.Set("key2", "value2")

	value, ok := c.Get("key1")
	assert.Assert(t, ok)
	assert.Check(t, is.Equal(value, "value1"))

	value, ok = c.Get("key2")
	assert.Assert(t, ok)
	assert.Check(t, is.Equal(value, "value2"))
}

func TestCacheGetMissing(t *testing.T) {
	c := New[string, int]()
	value, ok := c.Get("key3")
	assert.Check(t, !ok)
	assert.Check(t, is.Equal(value, 0))
}

func TestCacheOverwrite(t *testing.T) {
	c := New[string, string]()
	c.Set("key", "old")
	c.Set("key", "new")

	value, ok := c.Get("key")
	assert.Assert(t, ok)
	assert.Check(t, is.Equal(value, "new"))
	assert.Check(t, is.Equal(c.Len(), 1))
}

// A stored zero value is still a hit; only absent keys report false.
func TestCacheZeroValue(t *testing.T) {
	c := New[string, int]()
	c.Set("zero", 0)

	value, ok := c.Get("zero")
	assert.Assert(t, ok)
	assert.Check(t, is.Equal(value, 0))
}

func TestCacheDel(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1)

	assert.Check(t, c.Del("a"))
	_, ok := c.Get("a")
	assert.Check(t, !ok)
	assert.Check(t, !c.Del("a"), "second delete reports false")
	assert.Check(t, is.Equal(c.Len(), 0))
}

func TestCacheKeys(t *testing.T) {
	c := New[string, int]()
	assert.Check(t, is.Len(c.Keys(), 0))

	c.Set("b", 2)
	c.Set("a", 1)
	c.Set("c", 3)

	keys := c.Keys()
	sort.Strings(keys)
	assert.Check(t, is.DeepEqual(keys, []string{"a", "b", "c"}))
}

func TestCachePurge(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1)
	c.Set("b", 2)

	c.Purge()
	assert.Check(t, is.Equal(c.Len(), 0))
	_, ok := c.Get("a")
	assert.Check(t, !ok)

	c.Set("c", 3)
	assert.Check(t, is.Equal(c.Len(), 1))
}

// The unbounded cache holds every key ever written to it.
func TestCacheNeverEvicts(t *testing.T) {
	c := New[string, int]()
	const n = 10000
	for i := 0; i < n; i++ {
		c.Set(strconv.Itoa(i), i)
	}
	assert.Assert(t, is.Equal(c.Len(), n))
	for i := 0; i < n; i++ {
		value, ok := c.Get(strconv.Itoa(i))
		assert.Assert(t, ok, "key %d went missing", i)
		assert.Assert(t, value == i)
	}
}
