package bplus

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/ristretto/v2"
)

// CachedTree puts a ristretto cache of lookup results in front of a BPlusTree
// and serializes access to it: lookups share a read lock, inserts and deletes
// take the write lock for their whole rebalancing cascade.
type CachedTree struct {
	mu    sync.RWMutex
	tree  *BPlusTree
	cache *ristretto.Cache[int, string]
}

// CacheStats is a point-in-time view of a CachedTree.
type CacheStats struct {
	Hits     uint64
	Misses   uint64
	Entries  int
	Height   int
	Capacity int
}

// NewCachedTree wraps tree with a cache holding up to maxEntries lookup
// results. The CachedTree owns tree from here on.
func NewCachedTree(tree *BPlusTree, maxEntries int64) (*CachedTree, error) {
	if tree == nil {
		return nil, errors.New("bplus: nil tree")
	}
	if maxEntries <= 0 {
		return nil, errors.Newf("bplus: cache size must be positive, got %d", maxEntries)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[int, string]{
		NumCounters:        maxEntries * 10,
		MaxCost:            maxEntries,
		BufferItems:        64,
		Metrics:            true,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create lookup cache")
	}
	return &CachedTree{tree: tree, cache: cache}, nil
}

// Lookup serves key from the cache when possible and fills the cache from the
// tree otherwise. Absent keys are not cached.
func (c *CachedTree) Lookup(key int) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if v, ok := c.cache.Get(key); ok {
		return v, true
	}
	v, ok := c.tree.Lookup(key)
	if ok {
		c.cache.Set(key, v, 1)
	}
	return v, ok
}

// Insert stores value under key and drops any cached value for it.
func (c *CachedTree) Insert(key int, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tree.Insert(key, value)
	c.invalidate(key)
}

// Delete removes key from the tree and the cache.
func (c *CachedTree) Delete(key int) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.tree.Delete(key)
	if ok {
		c.invalidate(key)
	}
	return v, ok
}

// invalidate must run under the write lock. Wait drains the set buffer so a
// fill queued by an earlier Lookup cannot land after the delete.
func (c *CachedTree) invalidate(key int) {
	c.cache.Del(key)
	c.cache.Wait()
}

// View runs fn with shared access to the underlying tree. fn must not mutate it.
func (c *CachedTree) View(fn func(t *BPlusTree) error) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return fn(c.tree)
}

// Stats returns cache counters and the current tree shape.
func (c *CachedTree) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheStats{
		Hits:     c.cache.Metrics.Hits(),
		Misses:   c.cache.Metrics.Misses(),
		Entries:  c.tree.Len(),
		Height:   c.tree.Height(),
		Capacity: c.tree.Capacity(),
	}
}

// Close releases the cache goroutines. The tree stays usable on its own.
func (c *CachedTree) Close() {
	c.cache.Close()
}
