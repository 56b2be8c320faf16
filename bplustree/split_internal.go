package bplus

import "go.uber.org/zap"

// splitInternal splits an overflowing internal node (capacity+1 keys) and
// promotes the middle key. Unlike a leaf split the promoted key is removed
// from both halves.
func (t *BPlusTree) splitInternal(node *Node, path []*Node) {
	// mid is the index of the key to promote
	mid := (t.capacity + 1) / 2
	promote := node.key[mid]

	// keys: left keeps [0:mid), promote key[mid], right gets (mid, end]
	// children: left keeps [0:mid], right gets [mid+1:]
	right := newInner(t.capacity)
	right.key = append(right.key, node.key[mid+1:]...)
	right.children = append(right.children, node.children[mid+1:]...)

	clear(node.children[mid+1:])
	node.key = node.key[:mid]
	node.children = node.children[:mid+1]

	t.logger.Debug("split internal",
		zap.Int("promoted", promote),
		zap.Int("left", len(node.key)),
		zap.Int("right", len(right.key)))

	if len(path) == 0 {
		t.createNewRoot(node, promote, right)
		return
	}
	parent := path[len(path)-1]
	t.insertIntoParent(parent, node, promote, right, path[:len(path)-1])
}
