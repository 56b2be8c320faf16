package bplus

// findLeaf descends from the root to the leaf that holds (or would hold) key.
// When path is non-nil every inner node visited is pushed onto it, so the
// nearest ancestor ends up last.
func (t *BPlusTree) findLeaf(key int, path *[]*Node) *Node {
	n := t.root
	for n.nodeType == NodeInternal {
		if path != nil {
			*path = append(*path, n)
		}
		n = n.children[upperBound(n.key, key)]
	}
	return n
}

// minKey returns the smallest key stored under n. n must not be an empty leaf.
func minKey(n *Node) int {
	for n.nodeType == NodeInternal {
		n = n.children[0]
	}
	return n.key[0]
}
