package cache

import (
	"sync"
	"time"
)

// Item is a cached value with an expiration deadline.
type Item struct {
	Value      interface{}
	Expiration int64
}

// Cache is a small in-memory TTL cache. The pipeline uses it to keep the
// latest run's result hot for the HTTP layer between refreshes.
type Cache struct {
	items map[string]Item
	mu    sync.RWMutex
}

// New creates a cache and starts a background sweep of expired items.
func New() *Cache {
	cache := &Cache{
		items: make(map[string]Item),
	}

	go func() {
		for {
			time.Sleep(time.Minute)
			cache.DeleteExpired()
		}
	}()

	return cache
}

// Set stores a value with the given TTL.
func (c *Cache) Set(key string, value interface{}, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = Item{
		Value:      value,
		Expiration: time.Now().Add(duration).UnixNano(),
	}
}

// Get returns a value and whether it was present and unexpired.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found {
		return nil, false
	}
	if time.Now().UnixNano() > item.Expiration {
		return nil, false
	}
	return item.Value, true
}

// Delete removes a key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// DeleteExpired drops all expired items.
func (c *Cache) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for k, v := range c.items {
		if now > v.Expiration {
			delete(c.items, k)
		}
	}
}
