package bplus

import "github.com/cockroachdb/errors"

// newLeaf and newInner reserve one slot past capacity so an overflowing node
// can hold the extra entry until it is split.
func newLeaf(capacity int) *Node {
	return &Node{
		nodeType: NodeLeaf,
		key:      make([]int, 0, capacity+1),
		vals:     make([]string, 0, capacity+1),
	}
}

func newInner(capacity int) *Node {
	return &Node{
		nodeType: NodeInternal,
		key:      make([]int, 0, capacity+1),
		children: make([]*Node, 0, capacity+2),
	}
}

// NewLeafNode builds a detached leaf from index-aligned keys and values.
func NewLeafNode(keys []int, values []string) (*Node, error) {
	if len(keys) != len(values) {
		return nil, errors.Wrapf(ErrMalformedNode, "leaf has %d keys but %d values", len(keys), len(values))
	}
	n := &Node{nodeType: NodeLeaf}
	n.key = append(make([]int, 0, len(keys)+1), keys...)
	n.vals = append(make([]string, 0, len(values)+1), values...)
	return n, nil
}

// NewInnerNode builds a detached inner node. children must hold exactly one
// more entry than keys and none of them may be nil.
func NewInnerNode(keys []int, children []*Node) (*Node, error) {
	if len(children) != len(keys)+1 {
		return nil, errors.Wrapf(ErrMalformedNode, "inner node has %d keys but %d children", len(keys), len(children))
	}
	for i, c := range children {
		if c == nil {
			return nil, errors.Wrapf(ErrMalformedNode, "inner node child %d is nil", i)
		}
	}
	n := &Node{nodeType: NodeInternal}
	n.key = append(make([]int, 0, len(keys)+1), keys...)
	n.children = append(make([]*Node, 0, len(children)+1), children...)
	return n, nil
}

func (n *Node) Type() NodeType { return n.nodeType }

func (n *Node) IsLeaf() bool { return n.nodeType == NodeLeaf }

func (n *Node) NumKeys() int { return len(n.key) }

// Keys returns a copy of the occupied keys.
func (n *Node) Keys() []int {
	return append([]int(nil), n.key...)
}

// Values returns a copy of a leaf's values, nil for inner nodes.
func (n *Node) Values() []string {
	if n.nodeType != NodeLeaf {
		return nil
	}
	return append([]string(nil), n.vals...)
}

// Children returns a copy of an inner node's child list, nil for leaves.
func (n *Node) Children() []*Node {
	if n.nodeType != NodeInternal {
		return nil
	}
	return append([]*Node(nil), n.children...)
}
