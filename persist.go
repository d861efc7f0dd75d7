package kvcache

import (
	"errors"
	"time"

	"github.com/kvcachelib/kvcache/persistence"
)

// classifyPersistErr maps a persistence.FileManager failure onto this
// package's taxonomy: a Serializer-level encode/decode failure becomes
// ErrSerialization, anything else (missing file, unwritable directory,
// failed rename) becomes ErrPersistence.
func classifyPersistErr(op string, err error) error {
	if errors.Is(err, persistence.ErrSerialization) {
		return wrapErr(op, ErrSerialization, err)
	}
	return wrapErr(op, ErrPersistence, err)
}

// SaveToDisk writes a whole-cache snapshot: acquire the lock, run a cleanup
// pass, materialize the document, and atomically replace any existing file
// at the resolved path. A partial write never reaches the target —
// FileManager.Save writes to a temp file and renames over it.
func (c *Cache) SaveToDisk(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cleanupLocked()

	doc := persistence.CacheDocument{
		Version:    persistence.DocumentVersion,
		SavedAt:    time.Now(),
		DefaultTTL: c.cfg.DefaultTTL,
		Entries:    make([]persistence.EntryDocument, 0, c.order.Len()),
	}

	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		node := elem.Value.(*entryNode)
		doc.Entries = append(doc.Entries, persistence.EntryDocument{
			Key:         node.key,
			Value:       node.entry.Value,
			CreatedAt:   node.entry.CreatedAt,
			ExpiresAt:   node.entry.ExpiresAt,
			AccessCount: node.entry.AccessCount,
			LastAccess:  node.entry.LastAccess,
		})
	}

	resolved := c.fileManager.ResolvePath(path)
	if err := c.fileManager.Save(resolved, doc); err != nil {
		return classifyPersistErr("SaveToDisk", err)
	}

	c.logger.Info().Str("path", resolved).Int("entries", len(doc.Entries)).Msg("kvcache: saved snapshot")
	return nil
}

// LoadFromDisk reads a whole-cache snapshot back: reads the document,
// drops entries already expired as of now, clears the current store, and
// reinserts the rest preserving their original CreatedAt, ExpiresAt,
// AccessCount, and LastAccess, notifying the policy OnAdd in original
// insertion order. A document describing more live entries than the
// cache's capacity fails loudly with ErrPersistence and leaves the
// in-memory cache untouched.
func (c *Cache) LoadFromDisk(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	resolved := c.fileManager.ResolvePath(path)

	var doc persistence.CacheDocument
	if err := c.fileManager.Load(resolved, &doc); err != nil {
		return classifyPersistErr("LoadFromDisk", err)
	}

	now := time.Now()
	live := make([]persistence.EntryDocument, 0, len(doc.Entries))
	for _, entry := range doc.Entries {
		if !entry.Expired(now) {
			live = append(live, entry)
		}
	}

	if len(live) > c.cfg.MaxSize {
		return wrapErr("LoadFromDisk", ErrPersistence, plainError(
			"snapshot describes more entries than the cache's capacity"))
	}

	c.clearLocked()

	for _, entry := range live {
		c.insertRawLocked(entry.Key, CacheEntry{
			Value:       entry.Value,
			CreatedAt:   entry.CreatedAt,
			ExpiresAt:   entry.ExpiresAt,
			AccessCount: entry.AccessCount,
			LastAccess:  entry.LastAccess,
		})
		c.evictionPolicy.OnAdd(c.view(), entry.Key)
	}

	c.logger.Info().Str("path", resolved).Int("entries", len(live)).Msg("kvcache: loaded snapshot")
	return nil
}

// insertRawLocked inserts an entry with caller-supplied metadata intact
// (used by LoadFromDisk, which must preserve the original timestamps and
// access count rather than stamping fresh ones).
func (c *Cache) insertRawLocked(key string, entry CacheEntry) {
	node := &entryNode{key: key, entry: entry}
	elem := c.order.PushBack(node)
	c.index[key] = elem
}

// SaveMetricsToDisk writes the current metrics snapshot via the metrics
// serializer.
func (c *Cache) SaveMetricsToDisk(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.met.Snapshot()
	resolved := c.metricsFileManager.ResolvePath(path)
	if err := c.metricsFileManager.Save(resolved, snap); err != nil {
		return classifyPersistErr("SaveMetricsToDisk", err)
	}
	return nil
}
