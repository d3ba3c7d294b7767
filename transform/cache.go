package transform

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	lru "github.com/hashicorp/golang-lru/v2"

	"storycaster/ir"
)

// Cache is a bounded store for whole-tree transformation results, keyed by
// a content hash of the input. It belongs to a Session; there is no shared
// package-level cache.
type Cache struct {
	entries *lru.Cache[string, any]
}

// NewCache builds a cache bounded to size entries.
func NewCache(size int) *Cache {
	entries, err := lru.New[string, any](size)
	if err != nil {
		// lru only errors on a non-positive size.
		panic(err)
	}

	return &Cache{entries: entries}
}

// CacheKey hashes the full canonical JSON serialization of the layout plus
// an option fingerprint. Hashing the whole serialization, not a prefix,
// rules out false hits between large trees sharing a common head.
func CacheKey(layout *ir.Layout, fingerprint string) string {
	h := sha256.New()

	if data, err := json.Marshal(layout); err == nil {
		h.Write(data)
	}
	h.Write([]byte{0})
	h.Write([]byte(fingerprint))

	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached value for a key.
func (c *Cache) Get(key string) (any, bool) {
	return c.entries.Get(key)
}

// Put stores a value under a key.
func (c *Cache) Put(key string, value any) {
	c.entries.Add(key, value)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.entries.Purge()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.entries.Len()
}
