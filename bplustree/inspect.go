// Package bplus: tree inspection for debugging.
// Use Dump(w) to print a human-readable, level by level view of the tree.

package bplus

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fatih/color"
)

var (
	internalLabel = color.New(color.FgCyan, color.Bold)
	leafLabel     = color.New(color.FgGreen, color.Bold)
	valueColor    = color.New(color.FgYellow)
)

// Print writes the Dump of t to stdout.
func (t *BPlusTree) Print() error {
	return t.Dump(os.Stdout)
}

// Dump writes a human-readable view of the tree to w: one block per level,
// internal nodes with their separators, leaves with key -> value lines.
// Colors follow color.NoColor, so output to a non-terminal stays plain.
func (t *BPlusTree) Dump(w io.Writer) error {
	var werr error
	p := func(format string, args ...interface{}) {
		if werr == nil {
			_, werr = fmt.Fprintf(w, format, args...)
		}
	}

	p("B+ tree: capacity=%d entries=%d height=%d\n", t.capacity, t.size, t.Height())
	if t.size == 0 {
		p("  (empty tree)\n")
		return werr
	}

	p("\n  Nodes (BFS):\n")
	p("  ---\n")

	queue := []*Node{t.root}
	level := 0
	for len(queue) > 0 {
		size := len(queue)
		p("  Level %d:\n", level)
		for i := 0; i < size; i++ {
			node := queue[i]
			if node.nodeType == NodeInternal {
				p("    [%d] %s keys=%v children=%d\n", i, internalLabel.Sprint(node.nodeType), node.key, len(node.children))
				queue = append(queue, node.children...)
				continue
			}
			p("    [%d] %s numKeys=%d\n", i, leafLabel.Sprint(node.nodeType), len(node.key))
			for j, k := range node.key {
				p("      %d -> %s\n", k, valueColor.Sprintf("%q", node.vals[j]))
			}
		}
		p("  ---\n")
		queue = queue[size:]
		level++
	}
	return werr
}

// String renders the tree on one line: inner nodes as {keys children...},
// leaves as [key:value ...].
func (t *BPlusTree) String() string {
	var sb strings.Builder
	writeNode(&sb, t.root)
	return sb.String()
}

func writeNode(sb *strings.Builder, n *Node) {
	if n.nodeType == NodeLeaf {
		sb.WriteByte('[')
		for i, k := range n.key {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(sb, "%d:%s", k, n.vals[i])
		}
		sb.WriteByte(']')
		return
	}
	sb.WriteByte('{')
	fmt.Fprintf(sb, "%v", n.key)
	for _, c := range n.children {
		sb.WriteByte(' ')
		writeNode(sb, c)
	}
	sb.WriteByte('}')
}

// ascend visits every entry in key order until fn returns false.
func (t *BPlusTree) ascend(fn func(key int, value string) bool) {
	ascendNode(t.root, fn)
}

func ascendNode(n *Node, fn func(key int, value string) bool) bool {
	if n.nodeType == NodeLeaf {
		for i, k := range n.key {
			if !fn(k, n.vals[i]) {
				return false
			}
		}
		return true
	}
	for _, c := range n.children {
		if !ascendNode(c, fn) {
			return false
		}
	}
	return true
}

// Checksum hashes the ordered sequence of entries. Two trees holding the same
// pairs share a checksum whatever their shape or capacity.
func (t *BPlusTree) Checksum() uint64 {
	h := xxhash.New()
	var buf [8]byte
	t.ascend(func(key int, value string) bool {
		binary.LittleEndian.PutUint64(buf[:], uint64(key))
		h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(len(value)))
		h.Write(buf[:])
		h.WriteString(value)
		return true
	})
	return h.Sum64()
}
