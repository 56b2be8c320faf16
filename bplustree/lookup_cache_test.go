package bplus

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCachedTree(t *testing.T, capacity int, entries int64) *CachedTree {
	t.Helper()
	c, err := NewCachedTree(newTestTree(t, capacity), entries)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestNewCachedTreeValidatesArguments(t *testing.T) {
	_, err := NewCachedTree(nil, 10)
	assert.Error(t, err)

	_, err = NewCachedTree(newTestTree(t, 4), 0)
	assert.Error(t, err)
}

func TestCachedTreeServesRepeatedLookupsFromCache(t *testing.T) {
	c := newTestCachedTree(t, 4, 128)
	for k := 0; k < 32; k++ {
		c.Insert(k, val(k))
	}

	v, ok := c.Lookup(5)
	require.True(t, ok)
	assert.Equal(t, "v5", v)
	c.cache.Wait()

	v, ok = c.Lookup(5)
	require.True(t, ok)
	assert.Equal(t, "v5", v)

	stats := c.Stats()
	assert.GreaterOrEqual(t, stats.Hits, uint64(1))
	assert.GreaterOrEqual(t, stats.Misses, uint64(1))
	assert.Equal(t, 32, stats.Entries)
	assert.Equal(t, 4, stats.Capacity)
	assert.Greater(t, stats.Height, 1)
}

func TestCachedTreeInvalidatesOnWrite(t *testing.T) {
	c := newTestCachedTree(t, 4, 128)
	c.Insert(1, "one")

	_, ok := c.Lookup(1)
	require.True(t, ok)
	c.cache.Wait()

	c.Insert(1, "uno")
	v, ok := c.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "uno", v)
	c.cache.Wait()

	removed, ok := c.Delete(1)
	require.True(t, ok)
	assert.Equal(t, "uno", removed)

	_, ok = c.Lookup(1)
	assert.False(t, ok)
	_, ok = c.Delete(1)
	assert.False(t, ok)
}

func TestCachedTreeConcurrentReadersAndWriter(t *testing.T) {
	c := newTestCachedTree(t, 6, 64)
	for k := 0; k < 200; k++ {
		c.Insert(k, val(k))
	}

	var wg sync.WaitGroup
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				k := (i*7 + offset) % 100 // readers stay clear of the writer's keys
				v, ok := c.Lookup(k)
				if !ok || v != val(k) {
					t.Errorf("lookup %d = %q, %v", k, v, ok)
					return
				}
			}
		}(r)
	}
	for k := 100; k < 200; k++ {
		c.Delete(k)
		c.Insert(k+1000, fmt.Sprintf("late-%d", k))
	}
	wg.Wait()

	require.NoError(t, c.View(func(tree *BPlusTree) error { return tree.CheckInvariants() }))
	assert.Equal(t, 200, c.Stats().Entries)
}
