package cache

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StatsSource yields cache statistics snapshots for metrics collection.
// *LRUCache satisfies it.
type StatsSource interface {
	Stats() Stats
}

// Collector exposes a cache's Stats as Prometheus metrics. Register it
// with a prometheus.Registerer and every scrape reports the current
// snapshot:
//
//	minicache_cache_entries            current number of entries (gauge)
//	minicache_cache_capacity_entries   fixed capacity (gauge)
//	minicache_cache_hits_total         lifetime hits (counter)
//	minicache_cache_misses_total       lifetime misses (counter)
//	minicache_cache_evictions_total    lifetime evictions (counter)
//
// with "minicache" replaced by the namespace given to NewCollector.
//
// Collect calls Stats on the source. The cache's single-owner rule
// extends to scraping: do not gather while another goroutine operates
// on the cache.
type Collector struct {
	src StatsSource

	entries   *prometheus.Desc
	capacity  *prometheus.Desc
	hits      *prometheus.Desc
	misses    *prometheus.Desc
	evictions *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a Collector reporting src's statistics under the
// given metric namespace.
func NewCollector(namespace string, src StatsSource) *Collector {
	return &Collector{
		src: src,
		entries: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "entries"),
			"Number of entries currently stored in the cache.",
			nil, nil,
		),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "capacity_entries"),
			"Maximum number of entries the cache can hold.",
			nil, nil,
		),
		hits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "hits_total"),
			"Total number of cache lookups that found their key.",
			nil, nil,
		),
		misses: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "misses_total"),
			"Total number of cache lookups that missed.",
			nil, nil,
		),
		evictions: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "evictions_total"),
			"Total number of entries evicted by capacity pressure.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.capacity
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(s.Len))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Cap))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(s.Evictions))
}
