package kvcache

import (
	"fmt"
	"testing"
	"time"

	"github.com/kvcachelib/kvcache/policy"
)

func newBenchCache(b *testing.B, policyName policy.Name, maxSize int) *Cache {
	b.Helper()
	c, err := New(Config{
		MaxSize:         maxSize,
		EvictionPolicy:  policyName,
		DefaultTTL:      60 * time.Second,
		CleanupInterval: time.Hour,
	})
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(c.Stop)
	return c
}

func BenchmarkCacheSet(b *testing.B) {
	c := newBenchCache(b, policy.LRU, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := fmt.Sprintf("key-%d", i)
		_ = c.Set(key, "value", DefaultTTL)
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := newBenchCache(b, policy.LRU, 10000)
	_ = c.Set("existing-key", "value", DefaultTTL)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Get("existing-key")
	}
}

func BenchmarkCacheDelete(b *testing.B) {
	c := newBenchCache(b, policy.LRU, 10000)
	_ = c.Set("delete-key", "value", DefaultTTL)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Delete("delete-key")
		_ = c.Set("delete-key", "value", DefaultTTL)
	}
}

func BenchmarkFIFOEviction(b *testing.B) {
	c := newBenchCache(b, policy.FIFO, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := fmt.Sprintf("key-%d", i)
		_ = c.Set(key, "value", DefaultTTL)
	}
}

func BenchmarkLRUEviction(b *testing.B) {
	c := newBenchCache(b, policy.LRU, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := fmt.Sprintf("key-%d", i)
		_ = c.Set(key, "value", DefaultTTL)
		if i%10 == 0 {
			_, _ = c.Get(key)
		}
	}
}

func BenchmarkLFUEviction(b *testing.B) {
	c := newBenchCache(b, policy.LFU, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := fmt.Sprintf("key-%d", i)
		_ = c.Set(key, "value", DefaultTTL)
		if i%5 == 0 {
			_, _ = c.Get(key)
			_, _ = c.Get(key)
		}
	}
}
