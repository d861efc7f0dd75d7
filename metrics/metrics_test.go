package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotDerivedRates(t *testing.T) {
	m := New()
	m.IncrementHits()
	m.IncrementHits()
	m.IncrementMisses()
	m.IncrementExpiredHits()

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap.Hits)
	assert.Equal(t, uint64(1), snap.Misses)
	assert.Equal(t, uint64(1), snap.ExpiredHits)
	assert.Equal(t, uint64(4), snap.TotalGets())
	assert.InDelta(t, 0.5, snap.HitRate(), 0.0001)
	assert.InDelta(t, 0.5, snap.MissRate(), 0.0001)
}

func TestSnapshotRatesZeroWithNoTraffic(t *testing.T) {
	snap := New().Snapshot()
	assert.Zero(t, snap.HitRate())
	assert.Zero(t, snap.MissRate())
}

func TestResetZeroesCounters(t *testing.T) {
	m := New()
	m.IncrementHits()
	m.IncrementEvictions()
	m.Reset()

	snap := m.Snapshot()
	assert.Zero(t, snap.Hits)
	assert.Zero(t, snap.Evictions)
}

func TestPrometheusCollectorExportsCounters(t *testing.T) {
	m := New()
	m.IncrementHits()
	m.IncrementMisses()

	collector := NewPrometheusCollector(m, "testcache")
	count := testutil.CollectAndCount(collector)
	assert.Equal(t, 11, count)
}
