package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCache(capacity int, ttl time.Duration) (*LRUCache[string], *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRUCache[string](capacity, ttl)
	c.now = clock.now
	return c, clock
}

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *LRUCache[string], clock *fakeClock)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[string], _ *fakeClock) {
				c.Set("a", "1")
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "1", v)
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache[string], clock *fakeClock) {
				c.Set("a", "1")
				clock.advance(60 * time.Millisecond)
				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
		{
			name:     "evict least recently used when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[string], _ *fakeClock) {
				c.Set("a", "1")
				c.Set("b", "2")
				c.Get("a")
				c.Set("c", "3")

				_, ok := c.Get("b")
				assert.False(t, ok, "b should be evicted")
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "1", v)
				v, ok = c.Get("c")
				assert.True(t, ok)
				assert.Equal(t, "3", v)
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache[string], clock *fakeClock) {
				c.Set("a", "1")
				clock.advance(30 * time.Millisecond)
				c.Set("a", "2")
				clock.advance(30 * time.Millisecond)
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "2", v)
			},
		},
		{
			name:     "delete removes key",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[string], _ *fakeClock) {
				c.Set("a", "1")
				c.Delete("a")
				c.Delete("missing")
				_, ok := c.Get("a")
				assert.False(t, ok)
			},
		},
		{
			name:     "cleanup removes expired only",
			capacity: 3,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache[string], clock *fakeClock) {
				c.Set("a", "1")
				clock.advance(40 * time.Millisecond)
				c.Set("b", "2")
				clock.advance(20 * time.Millisecond)

				c.cleanup()

				assert.Equal(t, 1, c.Size())
				_, ok := c.Get("b")
				assert.True(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clock := newTestCache(tt.capacity, tt.ttl)
			tt.actions(t, c, clock)
		})
	}
}
