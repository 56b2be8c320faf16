package bplus

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// NewBPlusTree returns an empty tree whose nodes hold at most capacity keys.
// capacity must be even and at least 2 since every split and merge assumes an
// exact half.
func NewBPlusTree(capacity int, opts ...Option) (*BPlusTree, error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	t := &BPlusTree{
		root:     newLeaf(capacity),
		capacity: capacity,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// MustNewBPlusTree is like NewBPlusTree but panics on an invalid capacity.
func MustNewBPlusTree(capacity int, opts ...Option) *BPlusTree {
	t, err := NewBPlusTree(capacity, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// NewBPlusTreeFromRoot adopts a prebuilt node hierarchy (see NewLeafNode and
// NewInnerNode). The hierarchy must already satisfy every tree invariant for
// the given capacity; the tree takes ownership of root.
func NewBPlusTreeFromRoot(root *Node, capacity int, opts ...Option) (*BPlusTree, error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.Wrap(ErrMalformedNode, "nil root")
	}
	t := &BPlusTree{
		root:     root,
		capacity: capacity,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.size = countEntries(root)
	if err := t.CheckInvariants(); err != nil {
		return nil, err
	}
	return t, nil
}

func countEntries(n *Node) int {
	if n.nodeType == NodeLeaf {
		return len(n.key)
	}
	total := 0
	for _, c := range n.children {
		total += countEntries(c)
	}
	return total
}
