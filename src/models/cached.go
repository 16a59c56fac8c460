package models

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/limbor-ai/limbor/src/cache"
)

// CachedLLM wraps an Agent and memoizes Generate calls so identical prompts
// are not billed twice. An optional file path persists the cache across runs.
type CachedLLM struct {
	Agent    Agent
	Cache    *cache.LRUCache
	FilePath string
}

// NewCachedLLM creates a caching wrapper around agent.
func NewCachedLLM(agent Agent, size int, ttl time.Duration, filePath string) *CachedLLM {
	c := &CachedLLM{
		Agent:    agent,
		Cache:    cache.NewLRUCache(size, ttl),
		FilePath: filePath,
	}
	if filePath != "" {
		c.load()
	}
	return c
}

func (c *CachedLLM) load() {
	f, err := os.Open(c.FilePath)
	if err != nil {
		return // missing file is fine
	}
	defer f.Close()

	var dump map[string]cache.Entry
	if err := json.NewDecoder(f).Decode(&dump); err == nil {
		c.Cache.Restore(dump)
	}
}

func (c *CachedLLM) save() {
	if c.FilePath == "" {
		return
	}
	dump := c.Cache.Dump()

	// Atomic write: temp file then rename.
	tmp := c.FilePath + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return
	}
	if err := json.NewEncoder(f).Encode(dump); err != nil {
		f.Close()
		os.Remove(tmp)
		return
	}
	f.Close()
	os.Rename(tmp, c.FilePath)
}

// Generate checks the cache before calling the underlying agent.
func (c *CachedLLM) Generate(ctx context.Context, prompt string) (string, error) {
	key := cache.HashKey(prompt)
	if val, ok := c.Cache.Get(key); ok {
		return val, nil
	}

	res, err := c.Agent.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	c.Cache.Set(key, res)
	c.save()
	return res, nil
}

// TryCreateCachedLLM wraps agent with a cache when LIMBOR_LLM_CACHE_SIZE is
// set. LIMBOR_LLM_CACHE_TTL (seconds, default 300) and LIMBOR_LLM_CACHE_PATH
// (default .limbor_cache.json) tune it.
func TryCreateCachedLLM(agent Agent) Agent {
	sizeStr := os.Getenv("LIMBOR_LLM_CACHE_SIZE")
	if sizeStr == "" {
		return agent
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size <= 0 {
		return agent
	}

	ttl := 300 * time.Second
	if ttlStr := os.Getenv("LIMBOR_LLM_CACHE_TTL"); ttlStr != "" {
		if sec, err := strconv.Atoi(ttlStr); err == nil && sec > 0 {
			ttl = time.Duration(sec) * time.Second
		}
	}

	path := os.Getenv("LIMBOR_LLM_CACHE_PATH")
	if path == "" {
		path = ".limbor_cache.json"
	}

	return NewCachedLLM(agent, size, ttl, path)
}

var _ Agent = (*CachedLLM)(nil)
