// ABOUTME: In-memory cache with TTL-based expiration
// ABOUTME: Typed, thread-safe cache with single-flight loading and background cleanup

package cache

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	data      V
	expiresAt time.Time
}

// Cache holds values of one type for a fixed TTL. A zero TTL disables caching.
type Cache[V any] struct {
	mu    sync.RWMutex
	items map[string]entry[V]
	ttl   time.Duration
	group singleflight.Group
	now   func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a cache and starts its cleanup loop. Call Close to stop it.
func New[V any](ttl time.Duration) *Cache[V] {
	c := &Cache[V]{
		items: make(map[string]entry[V]),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	go c.startCleanup(time.Minute)
	return c
}

// TTL returns the configured lifetime
func (c *Cache[V]) TTL() time.Duration {
	return c.ttl
}

func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		slog.Debug("Cache miss", "key", key)
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		c.removeExpired(key)
		slog.Debug("Cache expired", "key", key)
		return zero, false
	}

	slog.Debug("Cache hit", "key", key)
	return e.data, true
}

func (c *Cache[V]) Set(key string, value V) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.items[key] = entry[V]{data: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	slog.Debug("Cache set", "key", key, "ttl", c.ttl)
}

// removeExpired deletes key only if the stored entry is still expired.
// A Set that lands between Get's read and this write lock is kept.
func (c *Cache[V]) removeExpired(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.items[key]; ok && c.now().After(e.expiresAt) {
		delete(c.items, key)
	}
}

// Len returns the number of stored entries, expired or not
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// GetOrLoad returns the cached value for key or calls load once for all
// concurrent callers. hit reports whether the value came from the cache.
func (c *Cache[V]) GetOrLoad(key string, load func() (V, error)) (value V, hit bool, err error) {
	if v, ok := c.Get(key); ok {
		return v, true, nil
	}

	res, err, _ := c.group.Do(key, func() (any, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := load()
		if err != nil {
			return v, err
		}
		c.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}
	return res.(V), false, nil
}

// Close stops the cleanup loop
func (c *Cache[V]) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Closed reports whether Close has been called
func (c *Cache[V]) Closed() bool {
	select {
	case <-c.stop:
		return true
	default:
		return false
	}
}

func (c *Cache[V]) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.evictExpired()
		}
	}
}

func (c *Cache[V]) evictExpired() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.items {
		if now.After(e.expiresAt) {
			delete(c.items, key)
		}
	}
}
