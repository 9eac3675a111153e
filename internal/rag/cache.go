package rag

import (
	"container/list"
	"crypto/md5"
	"encoding/hex"
	"sync"
)

// DefaultCacheCapacity bounds how many resume pipelines a server keeps warm.
const DefaultCacheCapacity = 16

// SessionCache holds built pipelines keyed by resume content hash, so
// follow-up questions against the same resume skip corpus embedding. The
// cache is an explicit value owned by the server, created at startup and
// purged at shutdown. Eviction is LRU.
type SessionCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List
}

type cacheEntry struct {
	key      string
	pipeline *Pipeline
}

// NewSessionCache creates a cache with the given capacity; non-positive
// capacities fall back to the default.
func NewSessionCache(capacity int) *SessionCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &SessionCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Key derives the cache key for resume content.
func Key(rawText string) string {
	sum := md5.Sum([]byte(rawText))
	return hex.EncodeToString(sum[:])
}

// Get returns the pipeline for a key and marks it recently used.
func (c *SessionCache) Get(key string) (*Pipeline, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).pipeline, true
}

// Put stores a pipeline, evicting the least recently used entry when full.
func (c *SessionCache) Put(key string, pipeline *Pipeline) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		elem.Value.(*cacheEntry).pipeline = pipeline
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}
	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, pipeline: pipeline})
}

// Len reports the number of cached pipelines.
func (c *SessionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Purge drops every cached pipeline.
func (c *SessionCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.order.Init()
}
