package bplus

import "go.uber.org/zap"

// splitLeaf splits an overflowing leaf (capacity+1 entries). The left half
// stays in leaf, the right half moves to a new sibling whose first key is
// copied (not moved) up to the parent.
func (t *BPlusTree) splitLeaf(leaf *Node, path []*Node) {
	mid := (t.capacity + 1) / 2

	right := newLeaf(t.capacity)
	right.key = append(right.key, leaf.key[mid:]...)
	right.vals = append(right.vals, leaf.vals[mid:]...)

	clear(leaf.vals[mid:])
	leaf.key = leaf.key[:mid]
	leaf.vals = leaf.vals[:mid]

	sepKey := right.key[0]
	t.logger.Debug("split leaf",
		zap.Int("separator", sepKey),
		zap.Int("left", len(leaf.key)),
		zap.Int("right", len(right.key)))

	if len(path) == 0 {
		t.createNewRoot(leaf, sepKey, right)
		return
	}
	parent := path[len(path)-1]
	t.insertIntoParent(parent, leaf, sepKey, right, path[:len(path)-1])
}
