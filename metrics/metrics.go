// Package metrics implements the cache's counters and derived ratios:
// atomic counters captured per operation, producing an immutable Snapshot
// on demand.
package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics holds the cache's operation counters. Every field is updated with
// sync/atomic so increments never need the store's lock, even though in
// practice every increment happens while that lock is already held.
type Metrics struct {
	hits           atomic.Uint64
	misses         atomic.Uint64
	expiredHits    atomic.Uint64
	sets           atomic.Uint64
	adds           atomic.Uint64
	updates        atomic.Uint64
	deletes        atomic.Uint64
	evictions      atomic.Uint64
	cleanupRuns    atomic.Uint64
	cleanupRemoved atomic.Uint64

	createdAt atomic.Int64 // UnixNano
}

// New constructs a Metrics instance with its creation timestamp set to now.
func New() *Metrics {
	m := &Metrics{}
	m.createdAt.Store(time.Now().UnixNano())
	return m
}

func (m *Metrics) IncrementHits()           { m.hits.Add(1) }
func (m *Metrics) IncrementMisses()         { m.misses.Add(1) }
func (m *Metrics) IncrementExpiredHits()    { m.expiredHits.Add(1) }
func (m *Metrics) IncrementSets()           { m.sets.Add(1) }
func (m *Metrics) IncrementAdds()           { m.adds.Add(1) }
func (m *Metrics) IncrementUpdates()        { m.updates.Add(1) }
func (m *Metrics) IncrementDeletes()        { m.deletes.Add(1) }
func (m *Metrics) IncrementEvictions()      { m.evictions.Add(1) }
func (m *Metrics) IncrementCleanupRuns()    { m.cleanupRuns.Add(1) }
func (m *Metrics) AddCleanupRemoved(n uint64) {
	m.cleanupRemoved.Add(n)
}

// Snapshot captures an immutable point-in-time view of every counter plus
// the derived hit/miss ratios.
type Snapshot struct {
	Hits           uint64
	Misses         uint64
	ExpiredHits    uint64
	Sets           uint64
	Adds           uint64
	Updates        uint64
	Deletes        uint64
	Evictions      uint64
	CleanupRuns    uint64
	CleanupRemoved uint64
	CreatedAt      time.Time
}

// Snapshot returns the current counters and derived fields.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Hits:           m.hits.Load(),
		Misses:         m.misses.Load(),
		ExpiredHits:    m.expiredHits.Load(),
		Sets:           m.sets.Load(),
		Adds:           m.adds.Load(),
		Updates:        m.updates.Load(),
		Deletes:        m.deletes.Load(),
		Evictions:      m.evictions.Load(),
		CleanupRuns:    m.cleanupRuns.Load(),
		CleanupRemoved: m.cleanupRemoved.Load(),
		CreatedAt:      time.Unix(0, m.createdAt.Load()),
	}
}

// TotalGets is the denominator hit-rate and miss-rate are computed against:
// hits + misses + expired_hits, i.e. the total number of Get calls.
func (s Snapshot) TotalGets() uint64 {
	return s.Hits + s.Misses + s.ExpiredHits
}

// HitRate is hits / (hits + misses + expired_hits), or 0 when nothing has
// been read yet.
func (s Snapshot) HitRate() float64 {
	total := s.TotalGets()
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// MissRate is (misses + expired_hits) / (hits + misses + expired_hits), or 0
// when nothing has been read yet.
func (s Snapshot) MissRate() float64 {
	total := s.TotalGets()
	if total == 0 {
		return 0
	}
	return float64(s.Misses+s.ExpiredHits) / float64(total)
}

// TotalOperations sums every counter, read and write alike, except
// CleanupRemoved, which is not included.
func (s Snapshot) TotalOperations() uint64 {
	return s.Hits + s.Misses + s.ExpiredHits + s.Sets + s.Adds + s.Updates +
		s.Deletes + s.Evictions + s.CleanupRuns
}

// Reset zeroes every counter and resets the creation timestamp to now.
func (m *Metrics) Reset() {
	m.hits.Store(0)
	m.misses.Store(0)
	m.expiredHits.Store(0)
	m.sets.Store(0)
	m.adds.Store(0)
	m.updates.Store(0)
	m.deletes.Store(0)
	m.evictions.Store(0)
	m.cleanupRuns.Store(0)
	m.cleanupRemoved.Store(0)
	m.createdAt.Store(time.Now().UnixNano())
}
