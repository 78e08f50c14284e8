package cache

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestCollector(t *testing.T) {
	c := NewLRU[string, string](2)
	c.Set("a", "1")
	c.Set("b", "2")
	_, _ = c.Get("a")
	_, _ = c.Get("a")
	_, _ = c.Get("x")
	c.Set("c", "3") // pushes out "b"

	collector := NewCollector("minicache", c)

	expected := `
# HELP minicache_cache_capacity_entries Maximum number of entries the cache can hold.
# TYPE minicache_cache_capacity_entries gauge
minicache_cache_capacity_entries 2
# HELP minicache_cache_entries Number of entries currently stored in the cache.
# TYPE minicache_cache_entries gauge
minicache_cache_entries 2
# HELP minicache_cache_evictions_total Total number of entries evicted by capacity pressure.
# TYPE minicache_cache_evictions_total counter
minicache_cache_evictions_total 1
# HELP minicache_cache_hits_total Total number of cache lookups that found their key.
# TYPE minicache_cache_hits_total counter
minicache_cache_hits_total 2
# HELP minicache_cache_misses_total Total number of cache lookups that missed.
# TYPE minicache_cache_misses_total counter
minicache_cache_misses_total 1
`
	assert.NilError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected)))
	assert.Check(t, is.Equal(testutil.CollectAndCount(collector), 5))
}

// The collector reads the cache at scrape time, so successive scrapes
// see successive states.
func TestCollectorTracksCache(t *testing.T) {
	c := NewLRU[string, int](8)
	collector := NewCollector("minicache", c)

	assert.Check(t, is.Equal(gatheredValue(t, collector, "minicache_cache_entries"), 0.0))

	c.Set("a", 1)
	c.Set("b", 2)
	_, _ = c.Get("a")
	assert.Check(t, is.Equal(gatheredValue(t, collector, "minicache_cache_entries"), 2.0))
	assert.Check(t, is.Equal(gatheredValue(t, collector, "minicache_cache_hits_total"), 1.0))
}

// gatheredValue collects one metric family from the collector via a
// throwaway registry and returns its sample value.
func gatheredValue(t *testing.T, collector prometheus.Collector, name string) float64 {
	t.Helper()
	registry := prometheus.NewRegistry()
	assert.NilError(t, registry.Register(collector))
	families, err := registry.Gather()
	assert.NilError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		m := mf.GetMetric()[0]
		if m.GetGauge() != nil {
			return m.GetGauge().GetValue()
		}
		return m.GetCounter().GetValue()
	}
	t.Fatalf("metric family %q not gathered", name)
	return 0
}

func TestCollectorRegisters(t *testing.T) {
	registry := prometheus.NewRegistry()
	assert.NilError(t, registry.Register(NewCollector("minicache", NewLRU[string, int](4))))

	families, err := registry.Gather()
	assert.NilError(t, err)

	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Check(t, is.DeepEqual(names, []string{
		"minicache_cache_capacity_entries",
		"minicache_cache_entries",
		"minicache_cache_evictions_total",
		"minicache_cache_hits_total",
		"minicache_cache_misses_total",
	}))
}
