package bplus

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// handleUnderflow restores the minimum occupancy of node, which holds fewer
// than capacity/2 keys. path holds node's ancestors, nearest last. A sibling
// with spare keys lends one; otherwise node merges with a sibling and the
// parent, having lost a key, may underflow in turn.
func (t *BPlusTree) handleUnderflow(node *Node, path []*Node) {
	if len(path) == 0 {
		panic(errors.AssertionFailedf("underflow on a %s node without parent", node.nodeType))
	}
	parent := path[len(path)-1]
	path = path[:len(path)-1]

	idx := childIndex(parent, node)
	if idx == -1 {
		panic(errors.AssertionFailedf("node not found among %d children of its parent", len(parent.children)))
	}

	var left, right *Node
	if idx > 0 {
		left = parent.children[idx-1]
	}
	if idx < len(parent.children)-1 {
		right = parent.children[idx+1]
	}

	switch {
	case left != nil && len(left.key) > t.minKeys():
		t.borrowFromLeft(parent, idx, node, left)
		return
	case right != nil && len(right.key) > t.minKeys():
		t.borrowFromRight(parent, idx, node, right)
		return
	case left != nil:
		t.mergeNodes(parent, idx-1, left, node)
	case right != nil:
		t.mergeNodes(parent, idx, node, right)
	default:
		panic(errors.AssertionFailedf("%s node at child %d has no sibling to borrow from or merge with", node.nodeType, idx))
	}

	if len(path) == 0 {
		if len(parent.key) == 0 {
			t.collapseRoot(parent)
		}
		return
	}
	if len(parent.key) < t.minKeys() {
		t.logger.Debug("internal underflow", zap.Int("keys", len(parent.key)), zap.Int("depth", len(path)))
		t.handleUnderflow(parent, path)
	}
}

func childIndex(parent *Node, child *Node) int {
	for i, c := range parent.children {
		if c == child {
			return i
		}
	}
	return -1
}

// borrowFromLeft moves the last entry of left to the front of node, which sits
// at children[idx] of parent.
func (t *BPlusTree) borrowFromLeft(parent *Node, idx int, node, left *Node) {
	last := len(left.key) - 1
	if node.nodeType == NodeLeaf {
		node.key = insertAt(node.key, 0, left.key[last])
		node.vals = insertAt(node.vals, 0, left.vals[last])
		left.key = removeAt(left.key, last)
		left.vals = removeAt(left.vals, last)
		parent.key[idx-1] = node.key[0]
	} else {
		moved := left.children[last+1]
		left.key = removeAt(left.key, last)
		left.children = removeAt(left.children, last+1)
		// the old first child now needs a separator in front of it
		node.key = insertAt(node.key, 0, minKey(node.children[0]))
		node.children = insertAt(node.children, 0, moved)
		parent.key[idx-1] = minKey(moved)
	}
	t.logger.Debug("borrow from left", zap.Stringer("type", node.nodeType), zap.Int("separator", parent.key[idx-1]))
}

// borrowFromRight moves the first entry of right to the end of node, which
// sits at children[idx] of parent.
func (t *BPlusTree) borrowFromRight(parent *Node, idx int, node, right *Node) {
	if node.nodeType == NodeLeaf {
		node.key = append(node.key, right.key[0])
		node.vals = append(node.vals, right.vals[0])
		right.key = removeAt(right.key, 0)
		right.vals = removeAt(right.vals, 0)
		parent.key[idx] = right.key[0]
	} else {
		moved := right.children[0]
		node.key = append(node.key, minKey(moved))
		node.children = append(node.children, moved)
		right.key = removeAt(right.key, 0)
		right.children = removeAt(right.children, 0)
		parent.key[idx] = minKey(right)
	}
	// an emptied node takes its minimum from right, so its own separator moves too
	if idx > 0 {
		parent.key[idx-1] = minKey(node)
	}
	t.logger.Debug("borrow from right", zap.Stringer("type", node.nodeType), zap.Int("separator", parent.key[idx]))
}

// mergeNodes folds right into left. They are parent.children[sepIdx] and
// parent.children[sepIdx+1]; the separator between them and the right child
// slot are removed from parent.
func (t *BPlusTree) mergeNodes(parent *Node, sepIdx int, left, right *Node) {
	if left.nodeType == NodeLeaf {
		left.key = append(left.key, right.key...)
		left.vals = append(left.vals, right.vals...)
	} else {
		left.key = append(left.key, minKey(right))
		left.key = append(left.key, right.key...)
		left.children = append(left.children, right.children...)
	}

	parent.key = removeAt(parent.key, sepIdx)
	parent.children = removeAt(parent.children, sepIdx+1)

	t.logger.Debug("merge",
		zap.Stringer("type", left.nodeType),
		zap.Int("keys", len(left.key)),
		zap.Int("parentKeys", len(parent.key)))

	right.key, right.vals, right.children = nil, nil, nil
}

// collapseRoot replaces an inner root that has run out of keys with its only
// child. The tree shrinks by one level.
func (t *BPlusTree) collapseRoot(root *Node) {
	if len(root.children) != 1 {
		panic(errors.AssertionFailedf("collapsing root with %d children", len(root.children)))
	}
	t.root = root.children[0]
	root.children = nil
	t.logger.Debug("collapse root", zap.Int("height", t.Height()))
}
