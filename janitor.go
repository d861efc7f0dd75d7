package kvcache

import (
	"time"

	"github.com/dustin/go-humanize"
)

// startJanitor launches the background cleanup worker: it wakes every
// interval, attempts the lock with a bounded wait, skips the tick on
// contention, and otherwise runs a cleanup pass. It is a daemon relative to
// the cache's own lifetime — Stop() is what actually joins it, nothing
// about process shutdown depends on this goroutine exiting first.
func (c *Cache) startJanitor(interval time.Duration) {
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-c.stopCh:
				return
			case <-ticker.C:
				c.runJanitorTick()
			}
		}
	}()
}

// runJanitorTick performs one bounded-wait cleanup attempt. Worker
// exceptions are logged and swallowed, never crashing the host process — a
// cleanup pass can't actually panic here, but the recover keeps that
// contract even if a future policy implementation misbehaves.
func (c *Cache) runJanitorTick() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().Interface("panic", r).Msg("janitor: recovered from panic during cleanup")
		}
	}()

	if !c.mu.TryLock() {
		c.logger.Debug().Msg("janitor: skipped tick, lock contended")
		return
	}
	defer c.mu.Unlock()

	removed := c.cleanupLocked()
	if removed > 0 {
		c.logger.Debug().
			Str("removed", humanize.Comma(int64(removed))).
			Str("remaining", humanize.Comma(int64(c.order.Len()))).
			Msg("janitor: cleanup pass removed expired entries")
	}
}
