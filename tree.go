package hctree

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Tree implements a Huffman coding tree over the byte alphabet.
//
// The zero value is an empty Tree.  A Tree is populated by Init or by
// ReadHeader and is read-only afterward, so one Tree may serve several
// goroutines as long as each uses its own bit stream.
type Tree struct {
	nodes  []node
	root   nodeID
	leaves [NumSymbols]nodeID
}

// Init builds this Tree from a frequency table.  The argument lists the
// frequency (i.e. number of occurrences) for each Symbol, indexed by symbol
// value; any Symbol not represented in the list is assumed to have a
// frequency of 0.  Symbols with a frequency of 0 are left out of the Tree.
//
// Nodes are merged in order of ascending frequency, with ties broken by
// ascending symbol value, so equal tables always yield identical codes.
//
func (t *Tree) Init(frequencies []uint64) {
	assert.Assertf(len(frequencies) <= NumSymbols, "len(frequencies) %d > NumSymbols %d", len(frequencies), NumSymbols)

	*t = Tree{nodes: make([]node, 0, 2*NumSymbols-1)}

	h := freqHeap{make([]symbolAndFreq, 0, len(frequencies))}
	for index, freq := range frequencies {
		if freq == 0 {
			continue
		}
		symbol := Symbol(index)
		id := t.newLeaf(symbol, freq)
		h.list = append(h.list, symbolAndFreq{id, symbol, freq})
	}

	if h.Len() == 0 {
		return
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(symbolAndFreq)
		b := heap.Pop(&h).(symbolAndFreq)

		// Compute freqSum using saturating addition
		freqSum := a.freq + b.freq
		if freqSum < a.freq {
			freqSum = math.MaxUint64
		}

		// The merged node stands in for a.symbol from now on.  a has
		// left the heap, so every symbol in the heap stays unique and
		// the ordering stays total.
		id := t.newInternal(a.id, b.id, freqSum)
		heap.Push(&h, symbolAndFreq{id, a.symbol, freqSum})
	}

	t.root = heap.Pop(&h).(symbolAndFreq).id
}

// IsEmpty returns true iff this Tree has no symbols.
func (t *Tree) IsEmpty() bool {
	return t.root == noNode
}

// Leaves returns the number of symbols in this Tree.
func (t *Tree) Leaves() int {
	var count int
	for _, id := range t.leaves {
		if id != noNode {
			count++
		}
	}
	return count
}

// Contains returns true iff symbol has a leaf in this Tree.
func (t *Tree) Contains(symbol Symbol) bool {
	return t.leaves[symbol] != noNode
}

// Code returns the code word for symbol.
func (t *Tree) Code(symbol Symbol) (Code, error) {
	var buf [maxCodeSize]byte
	path, err := t.pathToRoot(buf[:0], symbol)
	if err != nil {
		return Code{}, err
	}
	return makeCodeFromPath(path), nil
}

// Encode writes the code word for symbol to w, bit nearest the root first.
//
// If the Tree holds a single symbol, its code word is empty and nothing is
// written.
//
func (t *Tree) Encode(symbol Symbol, w BitWriter) error {
	var buf [maxCodeSize]byte
	path, err := t.pathToRoot(buf[:0], symbol)
	if err != nil {
		return err
	}
	for i := len(path) - 1; i >= 0; i-- {
		if err := w.WriteBool(path[i] != 0); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads exactly one code word from r and returns its symbol.  Errors
// from r are returned unchanged.
//
// If the Tree holds a single symbol, no bits are read.
//
func (t *Tree) Decode(r BitReader) (Symbol, error) {
	if t.root == noNode {
		return 0, ErrEmptyTree
	}
	n := t.node(t.root)
	for !n.isLeaf() {
		bit, err := r.ReadBool()
		if err != nil {
			return 0, err
		}
		if bit {
			n = t.node(n.child[1])
		} else {
			n = t.node(n.child[0])
		}
	}
	return n.symbol, nil
}

// MinSize is the bit length of the shortest code word.
func (t *Tree) MinSize() byte {
	minSize, _ := t.sizes()
	return minSize
}

// MaxSize is the bit length of the longest code word.
func (t *Tree) MaxSize() byte {
	_, maxSize := t.sizes()
	return maxSize
}

// SameShape returns true iff both Trees have the same branching pattern and
// the same symbol at each leaf position.  Frequencies are ignored.
func (t *Tree) SameShape(other *Tree) bool {
	if t.root == noNode || other.root == noNode {
		return t.root == other.root
	}

	type pair struct {
		a, b nodeID
	}

	stack := make([]pair, 0, maxCodeSize)
	stack = append(stack, pair{t.root, other.root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		a, b := t.node(top.a), other.node(top.b)
		if a.isLeaf() != b.isLeaf() {
			return false
		}
		if a.isLeaf() {
			if a.symbol != b.symbol {
				return false
			}
			continue
		}
		stack = append(stack, pair{a.child[1], b.child[1]}, pair{a.child[0], b.child[0]})
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the Tree's current
// state to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLeaves() = %d\n", t.Leaves())
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.MaxSize())
	for index := 0; index < NumSymbols; index++ {
		symbol := Symbol(index)
		if !t.Contains(symbol) {
			continue
		}
		hc, _ := t.Code(symbol)
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of the Tree.
func (t *Tree) String() string {
	if t.root == noNode {
		return "(empty Huffman tree)"
	}
	return fmt.Sprintf("(Huffman tree with %d symbols, with coded lengths of %d .. %d bits)", t.Leaves(), t.MinSize(), t.MaxSize())
}

var _ fmt.Stringer = (*Tree)(nil)

// pathToRoot appends the code word for symbol to path in leaf-to-root order.
func (t *Tree) pathToRoot(path []byte, symbol Symbol) ([]byte, error) {
	if t.root == noNode {
		return path, ErrEmptyTree
	}
	id := t.leaves[symbol]
	if id == noNode {
		return path, fmt.Errorf("%w: %d", ErrUnknownSymbol, symbol)
	}
	for {
		parent := t.node(id).parent
		if parent == noNode {
			break
		}
		if t.node(parent).child[0] == id {
			path = append(path, 0)
		} else {
			path = append(path, 1)
		}
		id = parent
	}
	return path, nil
}

// sizes computes the shortest and longest code word lengths.  Both are 0 for
// an empty Tree.
func (t *Tree) sizes() (minSize byte, maxSize byte) {
	var hasMinMax bool
	for _, id := range t.leaves {
		if id == noNode {
			continue
		}
		var size byte
		for p := t.node(id).parent; p != noNode; p = t.node(p).parent {
			size++
		}
		if !hasMinMax {
			hasMinMax = true
			minSize, maxSize = size, size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}
	return
}

// type symbolAndFreq + type freqHeap {{{

type symbolAndFreq struct {
	id     nodeID
	symbol Symbol
	freq   uint64
}

type freqHeap struct {
	list []symbolAndFreq
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	return lessFreq(h.list[i], h.list[j])
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(symbolAndFreq))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// lessFreq orders by ascending frequency, then by ascending symbol value.
func lessFreq(a, b symbolAndFreq) bool {
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.symbol < b.symbol
}

// }}}
