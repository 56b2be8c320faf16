package bplus

// Lookup returns the value stored under key. The boolean is false when the
// key is absent.
func (t *BPlusTree) Lookup(key int) (string, bool) {
	leaf := t.findLeaf(key, nil)
	idx := binarySearch(leaf.key, key)
	if idx == -1 {
		return "", false
	}
	return leaf.vals[idx], true
}

// Len returns the number of stored key/value pairs.
func (t *BPlusTree) Len() int { return t.size }

// Capacity returns the maximum number of keys per node.
func (t *BPlusTree) Capacity() int { return t.capacity }

// Root exposes the root node for diagnostics. Callers must not mutate it.
func (t *BPlusTree) Root() *Node { return t.root }

// Height returns the number of levels, 1 for a tree that is a single leaf.
func (t *BPlusTree) Height() int {
	h := 1
	for n := t.root; n.nodeType == NodeInternal; n = n.children[0] {
		h++
	}
	return h
}

func (t *BPlusTree) minKeys() int { return t.capacity / 2 }
