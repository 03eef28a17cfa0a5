/*
cache.go - Content-keyed load cache

PURPOSE:
  Re-parsing a workbook on every filter change is wasteful, but hiding a
  process-wide memo inside the loader makes state invisible. The cache is
  explicit instead: parsed tables are memoized under the sha256 of the source
  bytes, so a re-upload of identical content hits and any edit misses.
  Invalidation is explicit too. Correctness never depends on the cache;
  callers may bypass it entirely.
*/
package ingest

import (
	"bytes"
	"crypto/sha256"
	"sync"

	"github.com/nwb/visit-engine/tabular"
)

// Cache memoizes parsed tables by source content identity.
type Cache struct {
	mu     sync.RWMutex
	tables map[[sha256.Size]byte]tabular.Table
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{tables: make(map[[sha256.Size]byte]tabular.Table)}
}

// Load parses the source bytes under the given name, memoized by content
// hash. A hit returns a clone so callers cannot mutate the cached copy.
func (c *Cache) Load(data []byte, name string) (tabular.Table, error) {
	key := sha256.Sum256(data)

	c.mu.RLock()
	cached, ok := c.tables[key]
	c.mu.RUnlock()
	if ok {
		return cached.Clone(), nil
	}

	t, err := Load(bytes.NewReader(data), name)
	if err != nil {
		return tabular.Table{}, err
	}

	c.mu.Lock()
	c.tables[key] = t.Clone()
	c.mu.Unlock()
	return t, nil
}

// Invalidate drops every cached table. Called on new upload sessions.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.tables = make(map[[sha256.Size]byte]tabular.Table)
	c.mu.Unlock()
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tables)
}
