package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache()
	defer c.Stop()

	_, ok := c.Get("missing")
	require.False(t, ok)

	c.Set("k", "v", time.Minute)
	v, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", v)
}

func TestCacheTTLExpiry(t *testing.T) {
	c := NewCache()
	defer c.Stop()

	c.Set("k", 42, 20*time.Millisecond)

	_, ok := c.Get("k")
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)

	_, ok = c.Get("k")
	require.False(t, ok)
}

func TestCacheReadsDoNotExtendTTL(t *testing.T) {
	c := NewCache()
	defer c.Stop()

	c.Set("k", "v", 100*time.Millisecond)

	// Keep reading across the TTL window; the entry must still expire
	// at the absolute deadline set at write time.
	deadline := time.Now().Add(200 * time.Millisecond)
	for time.Now().Before(deadline) {
		c.Get("k")
		time.Sleep(20 * time.Millisecond)
	}

	_, ok := c.Get("k")
	require.False(t, ok)
}

func TestCacheInvalidate(t *testing.T) {
	c := NewCache()
	defer c.Stop()

	c.Set("k", "v", time.Minute)
	c.Invalidate("k")

	_, ok := c.Get("k")
	require.False(t, ok)
}

func TestCacheInvalidateByPrefix(t *testing.T) {
	c := NewCache()
	defer c.Stop()

	c.Set("references:tree", 1, time.Minute)
	c.Set("references:flat", 2, time.Minute)
	c.Set("other", 3, time.Minute)

	c.InvalidateByPrefix("references:")

	_, ok := c.Get("references:tree")
	require.False(t, ok)
	_, ok = c.Get("references:flat")
	require.False(t, ok)

	v, ok := c.Get("other")
	require.True(t, ok)
	require.Equal(t, 3, v)
}
