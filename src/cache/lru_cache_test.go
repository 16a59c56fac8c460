package cache

import (
	"testing"
	"time"
)

func TestLRUCacheGetSet(t *testing.T) {
	c := NewLRUCache(4, time.Minute)
	c.Set("a", "1")

	if got, ok := c.Get("a"); !ok || got != "1" {
		t.Fatalf("Get(a) = %q, %v", got, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatalf("missing key must not be found")
	}
}

func TestLRUCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRUCache(2, time.Minute)
	c.Set("a", "1")
	c.Set("b", "2")
	c.Get("a") // refresh a, making b the eviction victim
	c.Set("c", "3")

	if _, ok := c.Get("b"); ok {
		t.Fatalf("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("a should survive eviction")
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
}

func TestLRUCacheExpiresEntries(t *testing.T) {
	c := NewLRUCache(4, 10*time.Millisecond)
	c.Set("a", "1")
	time.Sleep(25 * time.Millisecond)

	if _, ok := c.Get("a"); ok {
		t.Fatalf("expired entry must not be returned")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry should be dropped on access, Len() = %d", c.Len())
	}
}

func TestLRUCacheClear(t *testing.T) {
	c := NewLRUCache(4, time.Minute)
	c.Set("a", "1")
	c.Set("b", "2")
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("Len() after Clear = %d", c.Len())
	}
}

func TestLRUCacheDumpRestore(t *testing.T) {
	c := NewLRUCache(4, time.Minute)
	c.Set("a", "1")
	c.Set("b", "2")

	dump := c.Dump()
	if len(dump) != 2 {
		t.Fatalf("Dump() has %d entries, want 2", len(dump))
	}

	fresh := NewLRUCache(4, time.Minute)
	fresh.Restore(dump)
	if got, ok := fresh.Get("a"); !ok || got != "1" {
		t.Fatalf("restored Get(a) = %q, %v", got, ok)
	}
	if got, ok := fresh.Get("b"); !ok || got != "2" {
		t.Fatalf("restored Get(b) = %q, %v", got, ok)
	}
}

func TestLRUCacheRestoreSkipsExpired(t *testing.T) {
	dump := map[string]Entry{
		"stale": {Value: "x", ExpiresAt: time.Now().Add(-time.Minute)},
		"fresh": {Value: "y", ExpiresAt: time.Now().Add(time.Minute)},
	}
	c := NewLRUCache(4, time.Minute)
	c.Restore(dump)

	if _, ok := c.Get("stale"); ok {
		t.Fatalf("stale entry must be skipped on restore")
	}
	if got, ok := c.Get("fresh"); !ok || got != "y" {
		t.Fatalf("fresh entry missing after restore: %q, %v", got, ok)
	}
}

func TestHashKeyStableAndDistinct(t *testing.T) {
	if HashKey("prompt") != HashKey("prompt") {
		t.Fatalf("identical prompts must hash identically")
	}
	if HashKey("prompt") == HashKey("prompt2") {
		t.Fatalf("distinct prompts must hash differently")
	}
	if len(HashKey("")) != 64 {
		t.Fatalf("expected hex sha256 key, got %q", HashKey(""))
	}
}
