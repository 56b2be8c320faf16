package bplus

import "github.com/cockroachdb/errors"

// insertIntoParent inserts sepKey and right into parent, directly after left.
// path holds the ancestors of parent. If the parent overflows, it splits and
// propagates upward.
func (t *BPlusTree) insertIntoParent(parent *Node, left *Node, sepKey int, right *Node, path []*Node) {
	// keys: insert sepKey at idx; children: left stays at idx, right lands at idx+1
	idx := upperBound(parent.key, sepKey)
	if parent.children[idx] != left {
		panic(errors.AssertionFailedf("separator %d routes to child %d which is not the split node", sepKey, idx))
	}

	parent.key = insertAt(parent.key, idx, sepKey)
	parent.children = insertAt(parent.children, idx+1, right)

	if len(parent.key) > t.capacity {
		t.splitInternal(parent, path)
	}
}
