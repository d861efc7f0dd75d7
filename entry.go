package kvcache

import "time"

// CacheEntry is one stored record: a value plus the metadata the store,
// eviction policy, and persistence layer all need.
//
// Invariants: CreatedAt <= LastAccess; if ExpiresAt is set it is strictly
// after CreatedAt as of creation; AccessCount >= 1 once the entry exists.
type CacheEntry struct {
	Value       any
	CreatedAt   time.Time
	ExpiresAt   time.Time // zero value means "never expires"
	AccessCount uint64
	LastAccess  time.Time
}

// HasExpiry reports whether the entry carries a finite expiration.
func (e *CacheEntry) HasExpiry() bool {
	return !e.ExpiresAt.IsZero()
}

// Expired reports whether the entry had already lapsed at instant at.
func (e *CacheEntry) Expired(at time.Time) bool {
	return e.HasExpiry() && !at.Before(e.ExpiresAt)
}
