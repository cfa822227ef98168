// Package cache provides an in-memory TTL cache for rendered API bodies with
// ETag support.
package cache

import (
	"crypto/md5"
	"fmt"
	"sync"
	"time"
)

// Entry is one cached response body.
type Entry struct {
	Data        []byte
	ContentType string
	ETag        string
	ExpiresAt   time.Time
}

// Cache is a thread-safe in-memory TTL cache.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	enabled bool
	now     func() time.Time
}

// New creates a new cache. Pass enabled=false to create a no-op cache.
func New(enabled bool) *Cache {
	return &Cache{
		entries: make(map[string]Entry),
		enabled: enabled,
		now:     time.Now,
	}
}

// Get retrieves a live entry.
func (c *Cache) Get(key string) (Entry, bool) {
	if !c.enabled {
		return Entry{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, exists := c.entries[key]
	if !exists || c.now().After(e.ExpiresAt) {
		return Entry{}, false
	}
	return e, true
}

// Set stores data with a TTL and returns the stored entry. A disabled cache
// still computes the ETag so callers can send it.
func (c *Cache) Set(key string, data []byte, contentType string, ttl time.Duration) Entry {
	e := Entry{
		Data:        data,
		ContentType: contentType,
		ETag:        ComputeETag(data),
		ExpiresAt:   c.now().Add(ttl),
	}
	if !c.enabled {
		return e
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = e
	return e
}

// Stats returns cache statistics.
func (c *Cache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	active := 0
	now := c.now()
	for _, e := range c.entries {
		if now.Before(e.ExpiresAt) {
			active++
		}
	}
	return map[string]interface{}{
		"enabled":      c.enabled,
		"total_keys":   len(c.entries),
		"active_keys":  active,
		"expired_keys": len(c.entries) - active,
	}
}

// Evict removes expired entries and returns how many were dropped.
func (c *Cache) Evict() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	n := 0
	for key, e := range c.entries {
		if now.After(e.ExpiresAt) {
			delete(c.entries, key)
			n++
		}
	}
	return n
}

// ComputeETag generates a weak ETag from response data using MD5.
func ComputeETag(data []byte) string {
	hash := md5.Sum(data)
	return fmt.Sprintf(`W/"%x"`, hash[:8])
}

// CheckETagMatch checks if If-None-Match header matches the current ETag.
func CheckETagMatch(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	if ifNoneMatch == "*" {
		return true
	}
	return ifNoneMatch == etag
}
