package bplus

import "go.uber.org/zap"

// Insert stores value under key. An existing key has its value replaced.
func (t *BPlusTree) Insert(key int, value string) {
	path := make([]*Node, 0, t.Height())
	leaf := t.findLeaf(key, &path)

	i := lowerBound(leaf.key, key)
	if i < len(leaf.key) && leaf.key[i] == key {
		leaf.vals[i] = value
		return
	}

	leaf.key = insertAt(leaf.key, i, key)
	leaf.vals = insertAt(leaf.vals, i, value)
	t.size++

	// a leaf that was already full now carries capacity+1 entries
	if len(leaf.key) > t.capacity {
		t.logger.Debug("leaf overflow", zap.Int("key", key), zap.Int("entries", len(leaf.key)))
		t.splitLeaf(leaf, path)
	}
}
