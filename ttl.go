package kvcache

import "time"

// TTL is a tri-state per-call TTL argument: an explicit positive duration,
// "fall back to the cache's configured default TTL", or "never expires".
// Go has no optional/None, so the two sentinels below occupy the
// non-positive range a real duration can never take on.
type TTL time.Duration

const (
	// DefaultTTL defers to the cache's configured Config.DefaultTTL.
	DefaultTTL TTL = -1
	// NoExpiry marks the entry as never expiring, regardless of any
	// configured default.
	NoExpiry TTL = -2
)

// resolveExpiry turns a TTL plus the cache's default into an absolute
// expires-at instant, or the zero Time for "never expires". An explicit
// non-positive TTL outside the two sentinels is invalid.
func resolveExpiry(ttl TTL, defaultTTL time.Duration, now time.Time) (time.Time, error) {
	switch ttl {
	case DefaultTTL:
		if defaultTTL <= 0 {
			return time.Time{}, nil
		}
		return now.Add(defaultTTL), nil
	case NoExpiry:
		return time.Time{}, nil
	default:
		if ttl <= 0 {
			return time.Time{}, ErrInvalidTTL
		}
		return now.Add(time.Duration(ttl)), nil
	}
}
