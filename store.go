// Package kvcache implements an in-process, thread-safe key-value cache
// with bounded capacity, per-entry TTL, pluggable eviction, pluggable
// serialization, optional metrics, and optional disk persistence.
package kvcache

import (
	"container/list"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/kvcachelib/kvcache/metrics"
	"github.com/kvcachelib/kvcache/persistence"
	"github.com/kvcachelib/kvcache/policy"
	"github.com/kvcachelib/kvcache/serializer"
)

// entryNode is what a list.Element.Value holds: the key alongside its
// entry, so the list itself can answer insertion-order questions (size,
// cleanup scans, deterministic save/load) without a second lookup.
type entryNode struct {
	key   string
	entry CacheEntry
}

// Cache is the store: the insertion-ordered mapping from key to entry, the
// background cleanup worker, and the single lock every other capability is
// called under.
//
// All public methods acquire mu once; methods that need to call another
// public operation's logic (SaveToDisk calling Cleanup, for instance) call
// the unexported *Locked variant directly instead of re-entering the lock,
// since sync.Mutex is not reentrant.
type Cache struct {
	mu    sync.Mutex
	order *list.List
	index map[string]*list.Element

	cfg Config

	// metricsEnabled is cfg.EnableMetrics resolved to a plain bool once in
	// New, so the hot path in metrics_glue.go never dereferences a pointer.
	metricsEnabled bool

	evictionPolicy policy.Policy
	met            *metrics.Metrics

	fileManager        *persistence.FileManager
	metricsFileManager *persistence.FileManager

	logger zerolog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New constructs a Cache from cfg, applying documented defaults and
// starting the background cleanup worker unless CleanupInterval is
// DisableCleanup.
func New(cfg Config) (*Cache, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	evictionPolicy, err := policy.New(cfg.EvictionPolicy)
	if err != nil {
		return nil, wrapErr("New", ErrRegistry, err)
	}

	snapshotSerializer, err := serializer.New(cfg.Serializer)
	if err != nil {
		return nil, wrapErr("New", ErrConfiguration, err)
	}

	metricsSerializer, err := serializer.New(cfg.MetricsSerializer)
	if err != nil {
		return nil, wrapErr("New", ErrConfiguration, err)
	}

	c := &Cache{
		order:          list.New(),
		index:          make(map[string]*list.Element),
		cfg:            cfg,
		metricsEnabled: *cfg.EnableMetrics,
		evictionPolicy: evictionPolicy,
		met:            metrics.New(),
		fileManager: &persistence.FileManager{
			StorageDir:   cfg.StorageDir,
			Filename:     cfg.Filename,
			UseTimestamp: cfg.CacheTimestamps,
			Serializer:   snapshotSerializer,
		},
		metricsFileManager: &persistence.FileManager{
			StorageDir:   cfg.MetricsStorageDir,
			Filename:     cfg.MetricsFilename,
			UseTimestamp: cfg.CacheMetricsTimestamps,
			Serializer:   metricsSerializer,
		},
		logger: newLogger(),
		stopCh: make(chan struct{}),
	}

	if cfg.CleanupInterval > 0 {
		c.startJanitor(cfg.CleanupInterval)
	}

	return c, nil
}

// storeView is the policy.View projection backed by the store's own index.
// Callers must already hold mu.
type storeView struct {
	c *Cache
}

func (v storeView) Contains(key string) bool {
	_, ok := v.c.index[key]
	return ok
}

func (v storeView) Len() int {
	return len(v.c.index)
}

func (c *Cache) view() storeView {
	return storeView{c: c}
}

// Get looks up key: a hit notifies the eviction policy and refreshes
// access metadata, a miss or expiry updates metrics and on expiry the
// entry is dropped.
func (c *Cache) Get(key string) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(key)
}

func (c *Cache) getLocked(key string) (any, error) {
	if key == "" {
		return nil, opErr("Get", key, ErrInvalidKey)
	}

	elem, ok := c.index[key]
	if !ok {
		c.incMisses()
		return nil, opErr("Get", key, ErrKeyNotFound)
	}

	node := elem.Value.(*entryNode)
	now := time.Now()

	if node.entry.Expired(now) {
		c.removeElementLocked(elem)
		c.incExpiredHits()
		return nil, opErr("Get", key, ErrKeyExpired)
	}

	node.entry.AccessCount++
	node.entry.LastAccess = now
	c.evictionPolicy.OnAccess(c.view(), key)
	c.incHits()

	return node.entry.Value, nil
}

// Set upserts key: TTL resolution picks the expiry, and on overflow the
// insert-then-evict ordering guarantees the new key is never its own
// eviction victim.
func (c *Cache) Set(key string, value any, ttl TTL) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setLocked(key, value, ttl)
}

// SetDefault sets key using the cache's configured default TTL.
func (c *Cache) SetDefault(key string, value any) error {
	return c.Set(key, value, DefaultTTL)
}

func (c *Cache) setLocked(key string, value any, ttl TTL) error {
	if key == "" {
		return opErr("Set", key, ErrInvalidKey)
	}

	now := time.Now()
	expiresAt, err := resolveExpiry(ttl, c.cfg.DefaultTTL, now)
	if err != nil {
		return opErr("Set", key, err)
	}

	if elem, ok := c.index[key]; ok {
		node := elem.Value.(*entryNode)
		node.entry.Value = value
		node.entry.CreatedAt = now
		node.entry.ExpiresAt = expiresAt
		node.entry.AccessCount++
		node.entry.LastAccess = now
		c.evictionPolicy.OnUpdate(c.view(), key)
		c.incUpdates()
		return nil
	}

	c.insertLocked(key, value, now, expiresAt)
	c.evictIfOverCapacityLocked()
	c.evictionPolicy.OnAdd(c.view(), key)
	c.incSets()
	return nil
}

// Add inserts key only if absent: fails if a live key is already present;
// a stale expired key is dropped silently and treated as absent.
func (c *Cache) Add(key string, value any, ttl TTL) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if key == "" {
		return opErr("Add", key, ErrInvalidKey)
	}

	now := time.Now()
	if elem, ok := c.index[key]; ok {
		node := elem.Value.(*entryNode)
		if !node.entry.Expired(now) {
			return opErr("Add", key, ErrKeyAlreadyExists)
		}
		// Stale expired entry: drop silently, no metric, then fall through
		// to the insertion path below.
		c.removeElementLocked(elem)
	}

	expiresAt, err := resolveExpiry(ttl, c.cfg.DefaultTTL, now)
	if err != nil {
		return opErr("Add", key, err)
	}

	c.insertLocked(key, value, now, expiresAt)
	c.evictIfOverCapacityLocked()
	c.evictionPolicy.OnAdd(c.view(), key)
	c.incAdds()
	return nil
}

// Update replaces key's value only if it already exists: fails with
// KeyNotFound if the key is absent or expired (expired is treated as
// absent from the caller's viewpoint).
func (c *Cache) Update(key string, value any, ttl TTL) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if key == "" {
		return opErr("Update", key, ErrInvalidKey)
	}

	now := time.Now()
	elem, ok := c.index[key]
	if !ok {
		return opErr("Update", key, ErrKeyNotFound)
	}

	node := elem.Value.(*entryNode)
	if node.entry.Expired(now) {
		c.removeElementLocked(elem)
		return opErr("Update", key, ErrKeyNotFound)
	}

	expiresAt, err := resolveExpiry(ttl, c.cfg.DefaultTTL, now)
	if err != nil {
		return opErr("Update", key, err)
	}

	node.entry.Value = value
	node.entry.CreatedAt = now
	node.entry.ExpiresAt = expiresAt
	node.entry.AccessCount++
	node.entry.LastAccess = now
	c.evictionPolicy.OnUpdate(c.view(), key)
	c.incUpdates()
	return nil
}

// Delete removes key, failing with KeyNotFound if it is absent.
func (c *Cache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleteLocked(key)
}

func (c *Cache) deleteLocked(key string) error {
	if key == "" {
		return opErr("Delete", key, ErrInvalidKey)
	}

	elem, ok := c.index[key]
	if !ok {
		return opErr("Delete", key, ErrKeyNotFound)
	}
	c.removeElementLocked(elem)
	c.incDeletes()
	return nil
}

// Size returns the number of entries currently stored, including entries
// that have expired but have not yet been swept.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// ValidSize returns the number of entries that have not expired as of now.
func (c *Cache) ValidSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	count := 0
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		if !elem.Value.(*entryNode).entry.Expired(now) {
			count++
		}
	}
	return count
}

// Clear empties the store and resets the eviction policy's bookkeeping.
// Metrics describe the cache's lifetime operational history rather than
// its current contents, so they are deliberately left untouched; callers
// who want a clean slate call ResetMetrics separately.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
}

func (c *Cache) clearLocked() {
	c.order.Init()
	c.index = make(map[string]*list.Element)
	c.evictionPolicy.Reset()
}

// Cleanup scans all entries, removes every expired one, and returns the
// number removed.
func (c *Cache) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cleanupLocked()
}

func (c *Cache) cleanupLocked() int {
	now := time.Now()
	removed := 0

	for elem := c.order.Front(); elem != nil; {
		next := elem.Next()
		if elem.Value.(*entryNode).entry.Expired(now) {
			c.removeElementLocked(elem)
			removed++
		}
		elem = next
	}

	c.incCleanupRuns()
	c.addCleanupRemoved(uint64(removed))
	return removed
}

// insertLocked adds a brand-new key; it does not check capacity or notify
// the policy — callers are responsible for both, in that order, so the
// newly inserted key can never be the policy's own choice of victim.
func (c *Cache) insertLocked(key string, value any, now time.Time, expiresAt time.Time) {
	node := &entryNode{
		key: key,
		entry: CacheEntry{
			Value:       value,
			CreatedAt:   now,
			ExpiresAt:   expiresAt,
			AccessCount: 1,
			LastAccess:  now,
		},
	}
	elem := c.order.PushBack(node)
	c.index[key] = elem
}

// evictIfOverCapacityLocked evicts exactly one key, chosen by the eviction
// policy, if the store is over capacity. It runs before the just-inserted
// key is announced to the policy via OnAdd, so the new key can never be
// the policy's own choice of victim.
func (c *Cache) evictIfOverCapacityLocked() {
	if c.order.Len() <= c.cfg.MaxSize {
		return
	}

	victim, ok := c.evictionPolicy.SelectEvictionKey(c.view())
	if !ok {
		return
	}

	if elem, found := c.index[victim]; found {
		c.removeElementLocked(elem)
		c.incEvictions()
	}
}

// removeElementLocked is the single path that removes a key from the store
// and notifies the policy, used by expiry, eviction, delete, and cleanup.
func (c *Cache) removeElementLocked(elem *list.Element) {
	node := elem.Value.(*entryNode)
	c.evictionPolicy.OnDelete(c.view(), node.key)
	c.order.Remove(elem)
	delete(c.index, node.key)
}

// Stop signals the background cleanup worker to terminate and waits for it
// to exit. Idempotent: calling Stop more than once is safe.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
	c.wg.Wait()
}
