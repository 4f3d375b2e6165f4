package hctree

import (
	"github.com/chronos-tachyon/assert"
)

// nodeID addresses a node in Tree.nodes.  IDs are 1-based so that the zero
// value means "no node" for children, parents, the root, and the leaf index.
type nodeID uint16

const noNode nodeID = 0

// node is one vertex of the tree.  A node owns its children; parent is a
// lookup link used only to walk from a leaf up to the root.
//
// Fields are assigned once, while the tree is being built or read, and never
// change afterward.
type node struct {
	symbol Symbol
	freq   uint64
	child  [2]nodeID
	parent nodeID
}

func (n *node) isLeaf() bool {
	return n.child[0] == noNode
}

func (t *Tree) node(id nodeID) *node {
	return &t.nodes[id-1]
}

// newLeaf appends a leaf for symbol and registers it in the leaf index.
func (t *Tree) newLeaf(symbol Symbol, freq uint64) nodeID {
	t.nodes = append(t.nodes, node{symbol: symbol, freq: freq})
	id := nodeID(len(t.nodes))
	t.leaves[symbol] = id
	return id
}

// newInternal appends an internal node adopting c0 and c1 as its "0" and "1"
// children.  The internal node takes the symbol of c0.
func (t *Tree) newInternal(c0 nodeID, c1 nodeID, freq uint64) nodeID {
	assert.Assertf(c0 != c1, "node %d cannot be both children of one parent", c0)
	assert.Assertf(t.node(c0).parent == noNode, "node %d already has parent %d", c0, t.node(c0).parent)
	assert.Assertf(t.node(c1).parent == noNode, "node %d already has parent %d", c1, t.node(c1).parent)

	t.nodes = append(t.nodes, node{
		symbol: t.node(c0).symbol,
		freq:   freq,
		child:  [2]nodeID{c0, c1},
	})
	id := nodeID(len(t.nodes))
	t.node(c0).parent = id
	t.node(c1).parent = id
	return id
}
