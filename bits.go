package hctree

import (
	"github.com/icza/bitio"
)

// BitWriter is a sink of individual bits.  WriteByte appends 8 bits, most
// significant bit first.  Buffering and flushing are the sink's business.
type BitWriter interface {
	WriteBool(bit bool) error
	WriteByte(b byte) error
}

// BitReader is a source of individual bits, yielded in the order a BitWriter
// wrote them.  Both methods return an error once the source is exhausted.
type BitReader interface {
	ReadBool() (bool, error)
	ReadByte() (byte, error)
}

var (
	_ BitWriter = (*bitio.Writer)(nil)
	_ BitReader = (*bitio.Reader)(nil)
)
