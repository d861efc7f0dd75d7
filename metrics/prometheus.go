package metrics

import "github.com/prometheus/client_golang/prometheus"

// PrometheusCollector adapts a Metrics snapshot into a prometheus.Collector
// so a host service can fold the cache's counters into its own /metrics
// endpoint without the cache package taking an opinion on how that endpoint
// is served.
type PrometheusCollector struct {
	metrics   *Metrics
	namespace string
}

// NewPrometheusCollector wraps m, prefixing every exported metric with
// namespace (e.g. "myservice_cache").
func NewPrometheusCollector(m *Metrics, namespace string) *PrometheusCollector {
	return &PrometheusCollector{metrics: m, namespace: namespace}
}

func (c *PrometheusCollector) desc(name, help string) *prometheus.Desc {
	return prometheus.NewDesc(c.namespace+"_"+name, help, nil, nil)
}

// Describe implements prometheus.Collector.
func (c *PrometheusCollector) Describe(ch chan<- *prometheus.Desc) {
	for name, help := range c.descriptions() {
		ch <- c.desc(name, help)
	}
}

// Collect implements prometheus.Collector.
func (c *PrometheusCollector) Collect(ch chan<- prometheus.Metric) {
	snap := c.metrics.Snapshot()
	counters := map[string]uint64{
		"hits":            snap.Hits,
		"misses":          snap.Misses,
		"expired_hits":    snap.ExpiredHits,
		"sets":            snap.Sets,
		"adds":            snap.Adds,
		"updates":         snap.Updates,
		"deletes":         snap.Deletes,
		"evictions":       snap.Evictions,
		"cleanup_runs":    snap.CleanupRuns,
		"cleanup_removed": snap.CleanupRemoved,
	}
	descs := c.descriptions()
	for name, value := range counters {
		ch <- prometheus.MustNewConstMetric(c.desc(name, descs[name]), prometheus.CounterValue, float64(value))
	}
	ch <- prometheus.MustNewConstMetric(c.desc("hit_ratio", descs["hit_ratio"]), prometheus.GaugeValue, snap.HitRate())
}

func (c *PrometheusCollector) descriptions() map[string]string {
	return map[string]string{
		"hits":            "successful key lookups",
		"misses":          "lookups of an absent key",
		"expired_hits":    "lookups that found an expired entry",
		"sets":            "set operations that inserted a new key",
		"adds":            "add operations that inserted a new key",
		"updates":         "set or update operations that replaced an existing key's value",
		"deletes":         "explicit delete operations",
		"evictions":       "entries removed to satisfy the capacity bound",
		"cleanup_runs":    "background/explicit cleanup passes",
		"cleanup_removed": "expired entries removed by cleanup passes",
		"hit_ratio":       "hits / (hits + misses + expired_hits)",
	}
}
