package jobs

import (
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache keeps recent search results keyed by skill and progress. A zero
// TTL disables it, which is the default: every search goes to the
// generator.
type Cache struct {
	c *gocache.Cache
}

func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		return &Cache{}
	}
	return &Cache{c: gocache.New(ttl, 2*ttl)}
}

func (c *Cache) Enabled() bool { return c != nil && c.c != nil }

func (c *Cache) Get(skill string, progress int) ([]Listing, bool) {
	if !c.Enabled() {
		return nil, false
	}
	v, ok := c.c.Get(cacheKey(skill, progress))
	if !ok {
		return nil, false
	}
	return append([]Listing(nil), v.([]Listing)...), true
}

func (c *Cache) Put(skill string, progress int, listings []Listing) {
	if !c.Enabled() {
		return
	}
	c.c.SetDefault(cacheKey(skill, progress), append([]Listing(nil), listings...))
}

func cacheKey(skill string, progress int) string {
	return fmt.Sprintf("%s|%d", strings.ToLower(strings.TrimSpace(skill)), progress)
}
