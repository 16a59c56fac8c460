// Package cache provides the TTL'd LRU used to memoize language-model
// completions.
package cache

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Entry holds a cached completion with its expiration.
type Entry struct {
	Value     string
	ExpiresAt time.Time
}

// LRUCache is a thread-safe LRU cache with TTL support.
type LRUCache struct {
	mu       sync.RWMutex
	capacity int
	ttl      time.Duration
	items    map[string]*list.Element
	lru      *list.List
}

type node struct {
	key   string
	entry Entry
}

// NewLRUCache creates a cache with the given capacity and TTL.
func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*list.Element, capacity),
		lru:      list.New(),
	}
}

// Get retrieves a value, dropping it if expired.
func (c *LRUCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return "", false
	}

	ent := elem.Value.(*node)
	if time.Now().After(ent.entry.ExpiresAt) {
		c.lru.Remove(elem)
		delete(c.items, key)
		return "", false
	}

	c.lru.MoveToFront(elem)
	return ent.entry.Value, true
}

// Set adds or updates a value, evicting the least recently used entry when
// over capacity.
func (c *LRUCache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(c.ttl)

	if elem, ok := c.items[key]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*node).entry = Entry{Value: value, ExpiresAt: expiresAt}
		return
	}

	elem := c.lru.PushFront(&node{key: key, entry: Entry{Value: value, ExpiresAt: expiresAt}})
	c.items[key] = elem

	if c.lru.Len() > c.capacity {
		if oldest := c.lru.Back(); oldest != nil {
			c.lru.Remove(oldest)
			delete(c.items, oldest.Value.(*node).key)
		}
	}
}

// Len returns the number of cached entries.
func (c *LRUCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lru.Len()
}

// Clear removes all entries.
func (c *LRUCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element, c.capacity)
	c.lru.Init()
}

// Dump snapshots the cache for persistence.
func (c *LRUCache) Dump() map[string]Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]Entry, c.lru.Len())
	for elem := c.lru.Front(); elem != nil; elem = elem.Next() {
		ent := elem.Value.(*node)
		out[ent.key] = ent.entry
	}
	return out
}

// Restore loads a previously dumped snapshot, skipping expired entries.
func (c *LRUCache) Restore(dump map[string]Entry) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range dump {
		if now.After(entry.ExpiresAt) {
			continue
		}
		if _, exists := c.items[key]; exists {
			continue
		}
		elem := c.lru.PushFront(&node{key: key, entry: entry})
		c.items[key] = elem
		if c.lru.Len() > c.capacity {
			if oldest := c.lru.Back(); oldest != nil {
				c.lru.Remove(oldest)
				delete(c.items, oldest.Value.(*node).key)
			}
		}
	}
}

// HashKey derives a cache key from a prompt string.
func HashKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
