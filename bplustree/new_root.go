package bplus

import "go.uber.org/zap"

// createNewRoot creates a new root internal node with left and right as its
// two children, separated by promoteKey. The tree grows by one level.
func (t *BPlusTree) createNewRoot(left *Node, promoteKey int, right *Node) {
	root := newInner(t.capacity)
	root.key = append(root.key, promoteKey)
	root.children = append(root.children, left, right)

	t.root = root
	t.logger.Debug("new root", zap.Int("separator", promoteKey), zap.Int("height", t.Height()))
}
