package hctree

import (
	"fmt"
	"strconv"
)

// Code represents a code word: the sequence of bits on the path from the root
// of a Tree to one of its leaves.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits[0] is the first bit, i.e. the one nearest the root.
	Bits [4]uint64
}

// Bit returns the i'th bit of the code word, counting from the root.
func (hc Code) Bit(i int) byte {
	return byte(hc.Bits[i>>6]>>(uint(i)&63)) & 1
}

// HasPrefix returns true iff prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := 0; i < int(prefix.Size); i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	buf := make([]byte, hc.Size)
	for i := range buf {
		buf[i] = '0' + hc.Bit(i)
	}
	return strconv.Quote(string(buf))
}

var _ fmt.Stringer = Code{}

// makeCodeFromPath builds a Code from a leaf-to-root path, reversing it into
// root-to-leaf order.
func makeCodeFromPath(path []byte) Code {
	var hc Code
	hc.Size = byte(len(path))
	for i, j := 0, len(path)-1; j >= 0; i, j = i+1, j-1 {
		hc.Bits[i>>6] |= uint64(path[j]) << (uint(i) & 63)
	}
	return hc
}
