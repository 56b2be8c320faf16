// Structure of B+ Tree
/*
Tree
 ├── Internal Node (keys + child pointers)
 │      └── Child Internal Nodes ...
 │             └── Leaf Nodes (keys + values)


- keys: sorted ascending order, no gaps (occupied count == len(key))
- internal nodes: children length == len(keys)+1
- internal nodes: key[i] == smallest key stored under children[i+1]
- leaf nodes: values length == len(keys)
- non-root nodes hold between capacity/2 and capacity keys
- all leaf nodes at same depth

*/
package bplus

import (
	"go.uber.org/zap"
)

type NodeType int

const (
	NodeInternal NodeType = iota
	NodeLeaf
)

func (nt NodeType) String() string {
	switch nt {
	case NodeInternal:
		return "INTERNAL"
	case NodeLeaf:
		return "LEAF"
	default:
		return "UNKNOWN"
	}
}

const (
	MinCapacity     = 2
	DefaultCapacity = 4
)

type Node struct {
	nodeType NodeType
	key      []int    // keys in the node (sorted keys)
	children []*Node  // only for internal node
	vals     []string // only for leaf node
}

// BPlusTree is not safe for concurrent use. Wrap it in a CachedTree (or guard
// it with a single lock) when several goroutines share it.
type BPlusTree struct {
	root     *Node
	capacity int // max keys per node, even
	size     int // number of stored key/value pairs
	logger   *zap.Logger
}

// Option configures a BPlusTree at construction time.
type Option func(*BPlusTree)

// WithLogger routes split/merge/borrow debug events to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(t *BPlusTree) {
		if logger != nil {
			t.logger = logger
		}
	}
}
