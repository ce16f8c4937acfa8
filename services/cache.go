package services

import (
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// ReferenceTreeKey memoizes the full standards tree for the picker UI.
const ReferenceTreeKey = "references:tree"

// ReferenceTreeTTL bounds staleness if an invalidation is ever missed.
const ReferenceTreeTTL = 5 * time.Minute

// Cache is an injectable read-path cache. Handlers receive it explicitly
// instead of reaching for a package-level singleton, and admin writes call
// Invalidate so the reference picker never serves stale data for longer
// than one in-flight request.
type Cache struct {
	inner *ttlcache.Cache[string, any]
}

func NewCache() *Cache {
	// Expiry is absolute from write time; reads must not extend it.
	inner := ttlcache.New(
		ttlcache.WithDisableTouchOnHit[string, any](),
	)
	go inner.Start()
	return &Cache{inner: inner}
}

func (c *Cache) Get(key string) (any, bool) {
	item := c.inner.Get(key)
	if item == nil {
		return nil, false
	}
	return item.Value(), true
}

func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.inner.Set(key, value, ttl)
}

func (c *Cache) Invalidate(key string) {
	c.inner.Delete(key)
}

func (c *Cache) InvalidateByPrefix(prefix string) {
	for _, key := range c.inner.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.inner.Delete(key)
		}
	}
}

func (c *Cache) Stop() {
	c.inner.Stop()
}
