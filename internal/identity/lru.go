package identity

import (
	"container/list"
	"sync"
	"time"
)

// lruCache is a thread-safe LRU of names with a per-entry expiry.
type lruCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	nowFn    func() time.Time
	entries  map[string]*list.Element
	order    *list.List
}

type lruEntry struct {
	key       string
	name      string
	expiresAt time.Time
}

func newLRUCache(capacity int, ttl time.Duration) *lruCache {
	return &lruCache{
		capacity: capacity,
		ttl:      ttl,
		nowFn:    time.Now,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

// get returns the cached name; expired entries are dropped and reported as misses.
func (c *lruCache) get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.entries[key]
	if !exists {
		return "", false
	}

	entry := elem.Value.(*lruEntry)
	if !c.nowFn().Before(entry.expiresAt) {
		delete(c.entries, key)
		c.order.Remove(elem)
		return "", false
	}

	// Move to front (most recently used)
	c.order.MoveToFront(elem)
	return entry.name, true
}

// put adds or refreshes key, evicting the least recently used entry if full.
func (c *lruCache) put(key, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.nowFn().Add(c.ttl)

	if elem, exists := c.entries[key]; exists {
		c.order.MoveToFront(elem)
		entry := elem.Value.(*lruEntry)
		entry.name = name
		entry.expiresAt = expiresAt
		return
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			delete(c.entries, oldest.Value.(*lruEntry).key)
			c.order.Remove(oldest)
		}
	}

	c.entries[key] = c.order.PushFront(&lruEntry{key: key, name: name, expiresAt: expiresAt})
}

func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
