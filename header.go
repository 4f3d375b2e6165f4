package hctree

import (
	"fmt"
)

// WriteHeader writes the shape of this Tree to w, so that a peer can rebuild
// an identical Tree with ReadHeader.  Frequencies are not written.
//
// Nodes are written in preorder.  A leaf is a 1 bit followed by its 8-bit
// symbol; an internal node is a 0 bit followed by its "0" subtree and then
// its "1" subtree.  The header is exactly HeaderSize() bits long.
//
func (t *Tree) WriteHeader(w BitWriter) error {
	if t.root == noNode {
		return ErrEmptyTree
	}
	return t.writeNode(w, t.root)
}

func (t *Tree) writeNode(w BitWriter, id nodeID) error {
	n := t.node(id)
	if n.isLeaf() {
		if err := w.WriteBool(true); err != nil {
			return err
		}
		return w.WriteByte(byte(n.symbol))
	}
	if err := w.WriteBool(false); err != nil {
		return err
	}
	if err := t.writeNode(w, n.child[0]); err != nil {
		return err
	}
	return t.writeNode(w, n.child[1])
}

// ReadHeader replaces the contents of this Tree with the shape read from r,
// as written by WriteHeader.  Rebuilt nodes have a frequency of 0.
//
// Errors from r are returned unchanged.  A header that repeats a symbol or
// nests deeper than any real Huffman tree can fails with ErrCorruptHeader.
// On any error the Tree is left empty.
//
func (t *Tree) ReadHeader(r BitReader) error {
	*t = Tree{nodes: make([]node, 0, 2*NumSymbols-1)}
	root, err := t.readNode(r, 0)
	if err != nil {
		*t = Tree{}
		return err
	}
	t.root = root
	return nil
}

func (t *Tree) readNode(r BitReader, depth int) (nodeID, error) {
	isLeaf, err := r.ReadBool()
	if err != nil {
		return noNode, err
	}

	if isLeaf {
		b, err := r.ReadByte()
		if err != nil {
			return noNode, err
		}
		symbol := Symbol(b)
		if t.leaves[symbol] != noNode {
			return noNode, fmt.Errorf("%w: symbol %d appears twice", ErrCorruptHeader, symbol)
		}
		return t.newLeaf(symbol, 0), nil
	}

	// An internal node at depth maxCodeSize would put its leaves past the
	// longest code word a 256-symbol alphabet can produce.
	if depth >= maxCodeSize {
		return noNode, fmt.Errorf("%w: tree deeper than %d bits", ErrCorruptHeader, maxCodeSize)
	}

	c0, err := t.readNode(r, depth+1)
	if err != nil {
		return noNode, err
	}
	c1, err := t.readNode(r, depth+1)
	if err != nil {
		return noNode, err
	}
	return t.newInternal(c0, c1, 0), nil
}

// HeaderSize returns the length in bits of the header written by
// WriteHeader: 9 bits per leaf plus 1 bit per internal node.
func (t *Tree) HeaderSize() int {
	if t.root == noNode {
		return 0
	}
	numLeaves := t.Leaves()
	return 9*numLeaves + (numLeaves - 1)
}
