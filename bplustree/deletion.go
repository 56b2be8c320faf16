package bplus

import "go.uber.org/zap"

// Delete removes key and returns the value it held. The boolean is false (and
// the tree untouched) when the key is absent.
func (t *BPlusTree) Delete(key int) (string, bool) {
	path := make([]*Node, 0, t.Height())
	leaf := t.findLeaf(key, &path)

	idx := binarySearch(leaf.key, key)
	if idx == -1 {
		return "", false
	}
	value := leaf.vals[idx]

	leaf.key = removeAt(leaf.key, idx)
	leaf.vals = removeAt(leaf.vals, idx)
	t.size--

	if len(path) == 0 {
		// the root leaf may shrink down to zero keys
		return value, true
	}

	if len(leaf.key) < t.minKeys() {
		t.logger.Debug("leaf underflow", zap.Int("key", key), zap.Int("entries", len(leaf.key)))
		t.handleUnderflow(leaf, path)
	}

	if idx == 0 {
		t.refreshSeparator(key)
	}
	return value, true
}

// refreshSeparator replaces the separator that still mirrors a removed key
// with the current minimum of its right subtree. Separators are unique, so at
// most one inner node on the search path for key holds it.
func (t *BPlusTree) refreshSeparator(key int) {
	n := t.root
	for n.nodeType == NodeInternal {
		i := upperBound(n.key, key)
		if i > 0 && n.key[i-1] == key {
			n.key[i-1] = minKey(n.children[i])
			t.logger.Debug("refresh separator", zap.Int("old", key), zap.Int("new", n.key[i-1]))
			return
		}
		n = n.children[i]
	}
}
