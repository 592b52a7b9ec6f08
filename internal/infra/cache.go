// Package infra provides shared infrastructure components for the fourteeners
// MCP server. Currently that is a read-through cache for static text assets.
package infra

import (
	"sync"
	"time"
)

// Loader produces the text for a cache key on miss.
type Loader func(name string) (string, error)

// entry holds cached text with its load time.
type entry struct {
	text     string
	loadedAt time.Time
}

// TextCache is a lazily-populated, explicitly invalidatable cache for static
// text assets. Entries never expire unless a TTL is configured; an
// always-reload policy bypasses the cache entirely on every read (dev mode).
type TextCache struct {
	mu           sync.RWMutex
	entries      map[string]entry
	loader       Loader
	ttl          time.Duration // 0 means no expiry
	alwaysReload bool

	hits   func()
	misses func()
}

// CacheOption configures a TextCache.
type CacheOption func(*TextCache)

// WithTTL sets a time-to-live after which entries are reloaded on access.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *TextCache) {
		c.ttl = ttl
	}
}

// WithAlwaysReload makes every Get invoke the loader, refreshing the cached
// copy. Intended for development so asset edits are picked up per read.
func WithAlwaysReload(reload bool) CacheOption {
	return func(c *TextCache) {
		c.alwaysReload = reload
	}
}

// WithStatsHooks registers callbacks invoked on cache hits and misses.
func WithStatsHooks(onHit, onMiss func()) CacheOption {
	return func(c *TextCache) {
		c.hits = onHit
		c.misses = onMiss
	}
}

// NewTextCache creates a cache that populates entries through loader.
func NewTextCache(loader Loader, opts ...CacheOption) *TextCache {
	c := &TextCache{
		entries: make(map[string]entry),
		loader:  loader,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached text for name, loading it on first access, after
// expiry, or on every access when the always-reload policy is enabled.
func (c *TextCache) Get(name string) (string, error) {
	if !c.alwaysReload {
		c.mu.RLock()
		e, ok := c.entries[name]
		c.mu.RUnlock()
		if ok && !c.expired(e) {
			if c.hits != nil {
				c.hits()
			}
			return e.text, nil
		}
	}

	if c.misses != nil {
		c.misses()
	}

	text, err := c.loader(name)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.entries[name] = entry{text: text, loadedAt: time.Now()}
	c.mu.Unlock()

	return text, nil
}

// Invalidate drops the cached entry for name, forcing a reload on next Get.
func (c *TextCache) Invalidate(name string) {
	c.mu.Lock()
	delete(c.entries, name)
	c.mu.Unlock()
}

// Reset drops all cached entries.
func (c *TextCache) Reset() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

// Size returns the number of cached entries.
func (c *TextCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *TextCache) expired(e entry) bool {
	if c.ttl <= 0 {
		return false
	}
	return time.Since(e.loadedAt) > c.ttl
}
