package strcase

import "sync"

// Cache memoizes ToConstantsCase by input string.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// ToConstantsCase returns the cached conversion of s, computing it on first use.
// Concurrent first uses may both compute the value; they store the same result.
func (c *Cache) ToConstantsCase(s string) string {
	c.mu.RLock()
	key, ok := c.entries[s]
	c.mu.RUnlock()
	if ok {
		return key
	}

	key = ToConstantsCase(s)

	c.mu.Lock()
	c.entries[s] = key
	c.mu.Unlock()

	return key
}

// Len returns the number of memoized conversions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset drops every memoized conversion.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string)
}
