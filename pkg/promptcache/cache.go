package promptcache

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/dmitrymomot/promptkit/pkg/plan"
)

// entry is one cached enhancement response with its expiry.
type entry struct {
	key       string
	response  string
	expiresAt time.Time
}

// Cache is a thread-safe LRU cache for enhancement responses keyed by a
// hash of the source prompt. When the cache reaches capacity the least
// recently used response is evicted; entries also expire after the TTL.
//
// A zero-capacity cache is a no-op: Get always misses and Put discards.
// That is the behavior tiers with no cache entitlement get.
type Cache struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	items    map[string]*list.Element
	eviction *list.List
}

// tierProfile maps a cache tier to its capacity and TTL.
func tierProfile(tier plan.CacheTier) (capacity int, ttl time.Duration) {
	switch tier {
	case plan.CacheTierStandard:
		return 64, 15 * time.Minute
	case plan.CacheTierPriority:
		return 512, 4 * time.Hour
	}
	return 0, 0
}

// NewForTier creates a cache sized for the given cache tier.
// Tiers without a cache entitlement get a disabled no-op cache, so callers
// never need to special-case them.
func NewForTier(tier plan.CacheTier) *Cache {
	capacity, ttl := tierProfile(tier)
	return &Cache{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

// Key derives the cache key for a prompt.
func Key(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached response for a prompt and marks it as recently
// used. Expired entries are dropped on access.
func (c *Cache) Get(prompt string) (string, bool) {
	if c.capacity == 0 {
		return "", false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[Key(prompt)]
	if !ok {
		return "", false
	}

	e := elem.Value.(*entry)
	if c.now().After(e.expiresAt) {
		c.removeElement(elem)
		return "", false
	}

	c.eviction.MoveToFront(elem)
	return e.response, true
}

// Put stores an enhancement response for a prompt, evicting the least
// recently used entry when at capacity.
func (c *Cache) Put(prompt, response string) {
	if c.capacity == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := Key(prompt)
	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		e := elem.Value.(*entry)
		e.response = response
		e.expiresAt = c.now().Add(c.ttl)
		return
	}

	elem := c.eviction.PushFront(&entry{
		key:       key,
		response:  response,
		expiresAt: c.now().Add(c.ttl),
	})
	c.items[key] = elem

	if c.eviction.Len() > c.capacity {
		if oldest := c.eviction.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
}

// Len returns the number of cached responses, including not yet collected
// expired ones.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Clear removes all cached responses.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.eviction.Init()
}

// Must be called with lock held.
func (c *Cache) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	delete(c.items, elem.Value.(*entry).key)
}
