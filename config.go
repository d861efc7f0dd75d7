package kvcache

import (
	"time"

	"github.com/kvcachelib/kvcache/policy"
	"github.com/kvcachelib/kvcache/serializer"
)

// Config is the cache's configuration object. Callers only need to set the
// fields they care about; New applies documented defaults to everything
// else.
type Config struct {
	// MaxSize is the positive upper bound on entry count. Required.
	MaxSize int

	// DefaultTTL is applied when Set/Add/Update is called with TTL
	// DefaultTTL and no per-call override. Zero means entries never
	// expire by default.
	DefaultTTL time.Duration

	// CleanupInterval is how often the background janitor sweeps expired
	// entries. Zero means "use the default" (10s). Lazy expiration on Get
	// applies regardless of this field; set it to DisableCleanup to run
	// with no background worker at all. Default 10s.
	CleanupInterval time.Duration

	// EvictionPolicy names a policy registered in package policy.
	// Default "lru".
	EvictionPolicy policy.Name

	// Serializer names a serializer registered in package serializer, used
	// for whole-cache snapshots. Default "json".
	Serializer serializer.Name

	// StorageDir is where whole-cache snapshots are written. Default ".".
	StorageDir string
	// Filename is the snapshot's base filename, before timestamp and
	// extension. Default "cache".
	Filename string
	// CacheTimestamps, when true, embeds a save timestamp in the snapshot
	// filename.
	CacheTimestamps bool

	// EnableMetrics toggles counter tracking. Default true. A *bool is
	// needed (rather than bool) so withDefaults can tell "caller left
	// this unset" apart from "caller explicitly disabled metrics" — Go's
	// zero value for bool can't carry that distinction.
	EnableMetrics *bool
	// MetricsSerializer names the serializer used for metrics snapshots.
	// Default "json".
	MetricsSerializer serializer.Name
	// MetricsStorageDir is where metrics snapshots are written. Defaults
	// to StorageDir.
	MetricsStorageDir string
	// MetricsFilename is the metrics snapshot's base filename. Default
	// "cache_metrics".
	MetricsFilename string
	// CacheMetricsTimestamps mirrors CacheTimestamps for metrics snapshots.
	CacheMetricsTimestamps bool
}

const (
	defaultCleanupInterval = 10 * time.Second
	defaultStorageDir      = "."
	defaultFilename        = "cache"
	defaultMetricsFilename = "cache_metrics"
)

// DisableCleanup, set as Config.CleanupInterval, suppresses the background
// cleanup worker entirely — Get still drops an expired entry lazily on
// access, only the periodic sweep is skipped. A real duration's zero value
// is already claimed by "use the default interval", so disabling needs its
// own sentinel, the same tri-state trick TTL's DefaultTTL/NoExpiry use.
const DisableCleanup time.Duration = -1

// withDefaults returns a copy of cfg with every unset field filled in, and
// validates the fields that must hold for the cache to be constructible.
func (cfg Config) withDefaults() (Config, error) {
	if cfg.MaxSize <= 0 {
		return Config{}, wrapErr("New", ErrConfiguration, errMaxSizeMustBePositive)
	}

	out := cfg

	switch {
	case out.CleanupInterval == 0:
		out.CleanupInterval = defaultCleanupInterval
	case out.CleanupInterval == DisableCleanup:
		// leave as-is; New checks for CleanupInterval > 0 before starting
		// the janitor, so the sentinel's negative value skips it.
	case out.CleanupInterval < 0:
		return Config{}, wrapErr("New", ErrConfiguration, errInvalidCleanupInterval)
	}

	if out.EnableMetrics == nil {
		out.EnableMetrics = boolPtr(true)
	}

	if out.EvictionPolicy == "" {
		out.EvictionPolicy = policy.LRU
	}
	if out.Serializer == "" {
		out.Serializer = serializer.JSON
	}
	if out.StorageDir == "" {
		out.StorageDir = defaultStorageDir
	}
	if out.Filename == "" {
		out.Filename = defaultFilename
	}

	if out.MetricsSerializer == "" {
		out.MetricsSerializer = serializer.JSON
	}
	if out.MetricsStorageDir == "" {
		out.MetricsStorageDir = out.StorageDir
	}
	if out.MetricsFilename == "" {
		out.MetricsFilename = defaultMetricsFilename
	}

	return out, nil
}

var (
	errMaxSizeMustBePositive  = plainError("max_size must be a positive integer")
	errInvalidCleanupInterval = plainError(
		"cleanup_interval must be positive, zero for the default, or DisableCleanup")
)

type plainError string

func (e plainError) Error() string { return string(e) }

func boolPtr(b bool) *bool { return &b }

// NewConfig returns a Config with EnableMetrics explicitly set to true.
// Plain Config{MaxSize: n} literals get the same default from withDefaults
// once New is called; this constructor exists for callers who want the
// default spelled out up front.
func NewConfig(maxSize int) Config {
	return Config{
		MaxSize:       maxSize,
		EnableMetrics: boolPtr(true),
	}
}
