package bplus

import "github.com/cockroachdb/errors"

// CheckInvariants walks the whole tree and reports the first broken
// structural property: key ordering and bounds, node occupancy, key/payload
// alignment, separators mirroring subtree minimums, uniform leaf depth and
// the cached entry count. The returned error wraps ErrInvariantViolation.
func (t *BPlusTree) CheckInvariants() error {
	if t.root == nil {
		return errors.Wrap(ErrInvariantViolation, "nil root")
	}
	c := &invariantChecker{tree: t, leafDepth: -1}
	if err := c.check(t.root, 0, nil, nil, true); err != nil {
		return err
	}
	if c.entries != t.size {
		return errors.Wrapf(ErrInvariantViolation, "tree reports %d entries but leaves hold %d", t.size, c.entries)
	}
	return nil
}

type invariantChecker struct {
	tree      *BPlusTree
	leafDepth int
	entries   int
}

// check validates the subtree under n, whose keys must lie in [lo, hi). A nil
// bound is open.
func (c *invariantChecker) check(n *Node, depth int, lo, hi *int, isRoot bool) error {
	if n == nil {
		return errors.Wrapf(ErrInvariantViolation, "nil node at depth %d", depth)
	}
	capacity := c.tree.capacity
	nkeys := len(n.key)

	if nkeys > capacity {
		return errors.Wrapf(ErrInvariantViolation, "%s node at depth %d holds %d keys, capacity is %d", n.nodeType, depth, nkeys, capacity)
	}
	if !isRoot && nkeys < capacity/2 {
		return errors.Wrapf(ErrInvariantViolation, "%s node at depth %d holds %d keys, minimum is %d", n.nodeType, depth, nkeys, capacity/2)
	}
	for i := 0; i < nkeys; i++ {
		if i > 0 && n.key[i-1] >= n.key[i] {
			return errors.Wrapf(ErrInvariantViolation, "keys not strictly increasing at depth %d: %v", depth, n.key)
		}
		if (lo != nil && n.key[i] < *lo) || (hi != nil && n.key[i] >= *hi) {
			return errors.Wrapf(ErrInvariantViolation, "key %d at depth %d outside its parent's separator bounds", n.key[i], depth)
		}
	}

	switch n.nodeType {
	case NodeLeaf:
		if len(n.vals) != nkeys {
			return errors.Wrapf(ErrInvariantViolation, "leaf at depth %d has %d keys but %d values", depth, nkeys, len(n.vals))
		}
		if n.children != nil {
			return errors.Wrapf(ErrInvariantViolation, "leaf at depth %d has children", depth)
		}
		if nkeys == 0 && !isRoot {
			return errors.Wrapf(ErrInvariantViolation, "empty leaf at depth %d", depth)
		}
		if c.leafDepth == -1 {
			c.leafDepth = depth
		} else if c.leafDepth != depth {
			return errors.Wrapf(ErrInvariantViolation, "leaf at depth %d, expected every leaf at depth %d", depth, c.leafDepth)
		}
		c.entries += nkeys
		return nil

	case NodeInternal:
		if nkeys == 0 {
			return errors.Wrapf(ErrInvariantViolation, "internal node at depth %d has no keys", depth)
		}
		if len(n.children) != nkeys+1 {
			return errors.Wrapf(ErrInvariantViolation, "internal node at depth %d has %d keys but %d children", depth, nkeys, len(n.children))
		}
		for i, child := range n.children {
			childLo, childHi := lo, hi
			if i > 0 {
				childLo = &n.key[i-1]
			}
			if i < nkeys {
				childHi = &n.key[i]
			}
			if err := c.check(child, depth+1, childLo, childHi, false); err != nil {
				return err
			}
			if i > 0 {
				if m := minKey(child); m != n.key[i-1] {
					return errors.Wrapf(ErrInvariantViolation, "separator %d at depth %d does not mirror subtree minimum %d", n.key[i-1], depth, m)
				}
			}
		}
		return nil

	default:
		return errors.Wrapf(ErrInvariantViolation, "unknown node type %d at depth %d", int(n.nodeType), depth)
	}
}
