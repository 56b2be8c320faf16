package bplus

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func val(k int) string { return fmt.Sprintf("v%d", k) }

func newTestTree(t *testing.T, capacity int) *BPlusTree {
	t.Helper()
	tree, err := NewBPlusTree(capacity)
	require.NoError(t, err)
	return tree
}

func requireValid(t *testing.T, tree *BPlusTree) {
	t.Helper()
	require.NoError(t, tree.CheckInvariants(), "tree: %s", tree)
}

func TestNewBPlusTreeRejectsInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{-2, 0, 1, 3, 7} {
		t.Run(fmt.Sprintf("capacity=%d", capacity), func(t *testing.T) {
			tree, err := NewBPlusTree(capacity)
			require.ErrorIs(t, err, ErrInvalidCapacity)
			assert.Nil(t, tree)
			assert.Panics(t, func() { MustNewBPlusTree(capacity) })
		})
	}
}

func TestNewBPlusTreeStartsWithEmptyLeafRoot(t *testing.T) {
	tree := newTestTree(t, 4)

	root := tree.Root()
	require.NotNil(t, root)
	assert.True(t, root.IsLeaf())
	assert.Equal(t, 0, root.NumKeys())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 1, tree.Height())
	assert.Equal(t, 4, tree.Capacity())

	_, ok := tree.Lookup(42)
	assert.False(t, ok)
	_, ok = tree.Delete(42)
	assert.False(t, ok)
	requireValid(t, tree)
}

func TestInsertLookupDeleteScenario(t *testing.T) {
	tree := newTestTree(t, 4)
	keys := []int{10, 20, 5, 6, 12, 30, 7, 17}
	for _, k := range keys {
		tree.Insert(k, val(k))
		requireValid(t, tree)
	}
	assert.Greater(t, tree.Height(), 1, "eight keys in capacity-4 nodes must split")
	assert.Equal(t, len(keys), tree.Len())

	v, ok := tree.Lookup(6)
	require.True(t, ok)
	assert.Equal(t, "v6", v)

	removed, ok := tree.Delete(6)
	require.True(t, ok)
	assert.Equal(t, "v6", removed)
	requireValid(t, tree)

	_, ok = tree.Lookup(6)
	assert.False(t, ok)

	for _, k := range keys {
		if k == 6 {
			continue
		}
		v, ok := tree.Lookup(k)
		require.True(t, ok, "key %d", k)
		assert.Equal(t, val(k), v)
	}
	assert.Equal(t, 7, tree.Len())
}

func TestLeafSplitCopiesSeparatorUp(t *testing.T) {
	tree := newTestTree(t, 4)
	for k := 1; k <= 5; k++ {
		tree.Insert(k, val(k))
	}

	assert.Equal(t, "{[3] [1:v1 2:v2] [3:v3 4:v4 5:v5]}", tree.String())
	requireValid(t, tree)
}

func TestInternalSplitPromotesSeparator(t *testing.T) {
	tree := newTestTree(t, 2)
	for k := 1; k <= 4; k++ {
		tree.Insert(k, val(k))
	}
	// leaves [1] [2] [3 4] under root [2 3]; inserting 5 splits [3 4 5] and
	// overflows the root to [2 3 4], which promotes 3
	tree.Insert(5, val(5))

	root := tree.Root()
	require.False(t, root.IsLeaf())
	assert.Equal(t, []int{3}, root.Keys())
	children := root.Children()
	require.Len(t, children, 2)
	assert.Equal(t, []int{2}, children[0].Keys())
	assert.Equal(t, []int{4}, children[1].Keys())
	assert.Equal(t, 3, tree.Height())
	requireValid(t, tree)
}

func TestDeleteDownToEmptyRoot(t *testing.T) {
	tree := newTestTree(t, 4)
	keys := []int{1, 2, 3, 4, 5}
	for _, k := range keys {
		tree.Insert(k, val(k))
	}
	require.Equal(t, 2, tree.Height())

	for i, k := range keys {
		v, ok := tree.Delete(k)
		require.True(t, ok, "key %d", k)
		assert.Equal(t, val(k), v)
		requireValid(t, tree)

		for _, rest := range keys[i+1:] {
			_, ok := tree.Lookup(rest)
			assert.True(t, ok, "key %d lost after deleting %d", rest, k)
		}
	}

	root := tree.Root()
	assert.True(t, root.IsLeaf())
	assert.Equal(t, 0, root.NumKeys())
	assert.Equal(t, 0, tree.Len())
}

func TestDeleteBorrowsThenMerges(t *testing.T) {
	tree := newTestTree(t, 4)
	for k := 1; k <= 5; k++ {
		tree.Insert(k, val(k))
	}

	// [1] underflows and takes 3 from its right sibling
	tree.Delete(1)
	assert.Equal(t, "{[4] [2:v2 3:v3] [4:v4 5:v5]}", tree.String())
	requireValid(t, tree)

	// [5] underflows, no sibling can lend, merge collapses the root
	tree.Delete(4)
	assert.Equal(t, "[2:v2 3:v3 5:v5]", tree.String())
	assert.Equal(t, 1, tree.Height())
	requireValid(t, tree)
}

func TestInsertDescendingKeys(t *testing.T) {
	for _, capacity := range []int{2, 4, 6} {
		t.Run(fmt.Sprintf("capacity=%d", capacity), func(t *testing.T) {
			tree := newTestTree(t, capacity)
			for k := 300; k > 0; k-- {
				tree.Insert(k, val(k))
			}
			requireValid(t, tree)
			assert.Equal(t, 300, tree.Len())
			for k := 1; k <= 300; k++ {
				v, ok := tree.Lookup(k)
				require.True(t, ok, "key %d", k)
				assert.Equal(t, val(k), v)
			}
		})
	}
}

func TestInsertExistingKeyReplacesValue(t *testing.T) {
	tree := newTestTree(t, 4)
	for k := 0; k < 20; k++ {
		tree.Insert(k, val(k))
	}
	tree.Insert(7, "seven")

	v, ok := tree.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, "seven", v)
	assert.Equal(t, 20, tree.Len())
	requireValid(t, tree)
}

func TestDeleteAbsentKeyLeavesTreeUnchanged(t *testing.T) {
	tree := newTestTree(t, 4)
	for k := 0; k < 50; k += 2 {
		tree.Insert(k, val(k))
	}
	before := tree.String()
	sum := tree.Checksum()

	for _, k := range []int{-1, 1, 13, 49, 1000} {
		_, ok := tree.Delete(k)
		assert.False(t, ok, "key %d", k)
	}
	assert.Equal(t, before, tree.String())
	assert.Equal(t, 25, tree.Len())

	_, ok := tree.Delete(10)
	require.True(t, ok)
	_, ok = tree.Delete(10)
	assert.False(t, ok, "second delete of the same key")

	tree.Insert(10, val(10))
	assert.Equal(t, sum, tree.Checksum())
	requireValid(t, tree)
}

func TestNegativeAndExtremeKeys(t *testing.T) {
	tree := newTestTree(t, 4)
	keys := []int{0, -1, -100, 1 << 40, -(1 << 40), int(^uint(0) >> 1), -int(^uint(0)>>1) - 1}
	for _, k := range keys {
		tree.Insert(k, val(k))
	}
	requireValid(t, tree)
	for _, k := range keys {
		v, ok := tree.Lookup(k)
		require.True(t, ok, "key %d", k)
		assert.Equal(t, val(k), v)
	}
	for _, k := range keys {
		_, ok := tree.Delete(k)
		require.True(t, ok, "key %d", k)
		requireValid(t, tree)
	}
	assert.Equal(t, 0, tree.Len())
}

func TestRandomOperationsMatchReferenceMap(t *testing.T) {
	for _, capacity := range []int{2, 4, 6, 8} {
		t.Run(fmt.Sprintf("capacity=%d", capacity), func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(capacity) * 7919))
			tree := newTestTree(t, capacity)
			ref := make(map[int]string)

			for i := 0; i < 3000; i++ {
				k := rng.Intn(400)
				if rng.Intn(3) == 0 {
					v, ok := tree.Delete(k)
					want, present := ref[k]
					require.Equal(t, present, ok, "delete %d", k)
					require.Equal(t, want, v, "delete %d", k)
					delete(ref, k)
				} else {
					v := fmt.Sprintf("%d-%d", k, i)
					tree.Insert(k, v)
					ref[k] = v
				}
				requireValid(t, tree)
				require.Equal(t, len(ref), tree.Len())
			}

			for k := 0; k < 400; k++ {
				v, ok := tree.Lookup(k)
				want, present := ref[k]
				require.Equal(t, present, ok, "lookup %d", k)
				require.Equal(t, want, v, "lookup %d", k)
			}
		})
	}
}

func TestDeleteEverythingInRandomOrder(t *testing.T) {
	tree := newTestTree(t, 4)
	const n = 500
	for k := 0; k < n; k++ {
		tree.Insert(k, val(k))
	}
	require.Greater(t, tree.Height(), 3)

	order := rand.New(rand.NewSource(42)).Perm(n)
	remaining := make(map[int]bool, n)
	for k := 0; k < n; k++ {
		remaining[k] = true
	}
	for i, k := range order {
		v, ok := tree.Delete(k)
		require.True(t, ok, "key %d", k)
		require.Equal(t, val(k), v)
		delete(remaining, k)
		requireValid(t, tree)

		if i%50 == 0 {
			for r := range remaining {
				_, ok := tree.Lookup(r)
				require.True(t, ok, "key %d lost after deleting %d", r, k)
			}
		}
	}
	assert.Equal(t, 1, tree.Height())
	assert.True(t, tree.Root().IsLeaf())
	assert.Equal(t, 0, tree.Root().NumKeys())
}

func TestChecksumIgnoresShape(t *testing.T) {
	keys := rand.New(rand.NewSource(1)).Perm(200)

	small := newTestTree(t, 2)
	large := newTestTree(t, 16)
	for _, k := range keys {
		small.Insert(k, val(k))
	}
	sorted := append([]int(nil), keys...)
	sort.Ints(sorted)
	for _, k := range sorted {
		large.Insert(k, val(k))
	}

	assert.NotEqual(t, small.Height(), large.Height())
	assert.Equal(t, small.Checksum(), large.Checksum())

	large.Insert(0, "changed")
	assert.NotEqual(t, small.Checksum(), large.Checksum())
}
