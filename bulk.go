package kvcache

// SetMany upserts every key in values, acquiring the lock once. A per-key
// failure (an empty key, or an invalid TTL, which fails on the first key
// since every key shares it) is fatal to the whole batch: it aborts
// immediately and returns that error, but entries already written by
// earlier keys in the batch are kept, not rolled back.
func (c *Cache) SetMany(values map[string]any, ttl TTL) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, value := range values {
		if err := c.setLocked(key, value, ttl); err != nil {
			return err
		}
	}
	return nil
}

// GetMany returns every key in keys that is present and not expired,
// silently omitting the rest. Callers distinguish a full hit from a
// partial one by comparing len(result) against len(keys).
func (c *Cache) GetMany(keys []string) map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make(map[string]any, len(keys))
	for _, key := range keys {
		value, err := c.getLocked(key)
		if err == nil {
			result[key] = value
		}
	}
	return result
}

// DeleteMany removes every key in keys that is present, silently skipping
// any that are absent.
func (c *Cache) DeleteMany(keys []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		_ = c.deleteLocked(key)
	}
}
