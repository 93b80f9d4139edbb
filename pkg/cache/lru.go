package cache

import (
	"container/list"
	"fmt"
	"strings"
	"sync"
)

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// LRU is a thread-safe least-recently-used cache. When the cache
// reaches its capacity the entry that has not been touched the longest
// is evicted. The cache tracks its hit ratio: every Get counts as a
// request, every successful Get as a hit.
type LRU[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	eviction *list.List
	mu       sync.Mutex
	onEvict  func(key K, value V)

	requests int64
	hits     int64
}

// NewLRU creates an LRU cache with the supplied capacity. The capacity
// must be positive, otherwise it panics.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity < 1 {
		panic("cache: LRU capacity must be positive")
	}
	return &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		eviction: list.New(),
	}
}

// SetEvictCallback sets a callback that is called for every evicted or
// removed entry, useful for cleanup such as closing resources.
func (c *LRU[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Get retrieves a value and marks it as recently used. The lookup is
// counted in the cache statistics.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests++
	if elem, ok := c.items[key]; ok {
		c.hits++
		c.eviction.MoveToFront(elem)
		return elem.Value.(*lruEntry[K, V]).value, true
	}

	var zero V
	return zero, false
}

// Contains reports whether the key is cached without marking it as
// recently used and without touching the statistics.
func (c *LRU[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.items[key]
	return ok
}

// Put adds or updates a value, marking it as recently used. When the
// cache is at capacity the least recently used entry is evicted. It
// returns the previous value for the key, if any.
func (c *LRU[K, V]) Put(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		entry := elem.Value.(*lruEntry[K, V])
		oldValue := entry.value
		entry.value = value
		return oldValue, true
	}

	elem := c.eviction.PushFront(&lruEntry[K, V]{key: key, value: value})
	c.items[key] = elem

	if c.eviction.Len() > c.capacity {
		if oldest := c.eviction.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	var zero V
	return zero, false
}

// Remove removes an entry. It returns the removed value and whether the
// key was present.
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
		return elem.Value.(*lruEntry[K, V]).value, true
	}

	var zero V
	return zero, false
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Keys returns the cached keys ordered from least to most recently
// used.
func (c *LRU[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.eviction.Len())
	for elem := c.eviction.Back(); elem != nil; elem = elem.Prev() {
		keys = append(keys, elem.Value.(*lruEntry[K, V]).key)
	}
	return keys
}

// Clear removes all entries and resets the statistics. When an evict
// callback is set it is called for every entry.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.onEvict != nil {
		for _, elem := range c.items {
			entry := elem.Value.(*lruEntry[K, V])
			c.onEvict(entry.key, entry.value)
		}
	}

	c.items = make(map[K]*list.Element)
	c.eviction.Init()
	c.requests = 0
	c.hits = 0
}

// HitRatio returns the percentage of Get calls that found their key, or
// 0 before the first Get.
func (c *LRU[K, V]) HitRatio() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.requests == 0 {
		return 0
	}
	return 100 * float64(c.hits) / float64(c.requests)
}

// Stats returns a one line summary of capacity, size and hit ratio,
// meant for logs. Before the first Get the hit ratio reads "n/a".
func (c *LRU[K, V]) Stats() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "capacity=%d size=%d hit ratio=", c.capacity, c.eviction.Len())
	if c.requests == 0 {
		b.WriteString("n/a")
	} else {
		fmt.Fprintf(&b, "%d%%", int(100*float64(c.hits)/float64(c.requests)))
	}
	return b.String()
}

// removeElement must be called with the lock held.
func (c *LRU[K, V]) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	entry := elem.Value.(*lruEntry[K, V])
	delete(c.items, entry.key)

	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value)
	}
}
