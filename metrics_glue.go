package kvcache

import "github.com/kvcachelib/kvcache/metrics"

// These thin wrappers gate every counter increment behind
// Config.EnableMetrics, so a cache built with metrics disabled pays no
// atomic-increment cost on its hot path.

func (c *Cache) incHits() {
	if c.metricsEnabled {
		c.met.IncrementHits()
	}
}

func (c *Cache) incMisses() {
	if c.metricsEnabled {
		c.met.IncrementMisses()
	}
}

func (c *Cache) incExpiredHits() {
	if c.metricsEnabled {
		c.met.IncrementExpiredHits()
	}
}

func (c *Cache) incSets() {
	if c.metricsEnabled {
		c.met.IncrementSets()
	}
}

func (c *Cache) incAdds() {
	if c.metricsEnabled {
		c.met.IncrementAdds()
	}
}

func (c *Cache) incUpdates() {
	if c.metricsEnabled {
		c.met.IncrementUpdates()
	}
}

func (c *Cache) incDeletes() {
	if c.metricsEnabled {
		c.met.IncrementDeletes()
	}
}

func (c *Cache) incEvictions() {
	if c.metricsEnabled {
		c.met.IncrementEvictions()
	}
}

func (c *Cache) incCleanupRuns() {
	if c.metricsEnabled {
		c.met.IncrementCleanupRuns()
	}
}

func (c *Cache) addCleanupRemoved(n uint64) {
	if c.metricsEnabled && n > 0 {
		c.met.AddCleanupRemoved(n)
	}
}

// MetricsSnapshot returns an immutable snapshot of the cache's counters.
func (c *Cache) MetricsSnapshot() metrics.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.met.Snapshot()
}

// ResetMetrics zeroes every counter and resets the creation timestamp.
func (c *Cache) ResetMetrics() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.met.Reset()
}

// PrometheusCollector exposes the cache's counters as a prometheus.Collector
// under the given namespace; see metrics.NewPrometheusCollector.
func (c *Cache) PrometheusCollector(namespace string) *metrics.PrometheusCollector {
	return metrics.NewPrometheusCollector(c.met, namespace)
}
