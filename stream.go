package hctree

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// countBits is the width of the symbol count that starts every stream.
const countBits = 64

// Compress writes data to w as a self-describing Huffman-coded stream:
//
//     [symbol count: 64 bits][tree header][one code word per byte][zero padding]
//
// The tree header is omitted when data is empty.
//
func Compress(w io.Writer, data []byte) error {
	var freqs Frequencies
	freqs.Add(data)

	var t Tree
	t.Init(freqs[:])

	bw := bitio.NewWriter(w)
	if err := bw.WriteBits(uint64(len(data)), countBits); err != nil {
		return err
	}
	if len(data) != 0 {
		if err := t.WriteHeader(bw); err != nil {
			return fmt.Errorf("failed to write tree header: %w", err)
		}
		for _, b := range data {
			if err := t.Encode(Symbol(b), bw); err != nil {
				return err
			}
		}
	}
	return bw.Close()
}

// Decompress reads a stream written by Compress from r and writes the
// original bytes to w.  A stream that ends early fails with
// io.ErrUnexpectedEOF.
func Decompress(w io.Writer, r io.Reader) error {
	br := bitio.NewReader(r)
	count, err := br.ReadBits(countBits)
	if err != nil {
		return unexpectedEOF(err)
	}
	if count == 0 {
		return nil
	}

	var t Tree
	if err := t.ReadHeader(br); err != nil {
		return fmt.Errorf("failed to read tree header: %w", unexpectedEOF(err))
	}

	bufw := bufio.NewWriter(w)
	for i := uint64(0); i < count; i++ {
		symbol, err := t.Decode(br)
		if err != nil {
			return unexpectedEOF(err)
		}
		if err := bufw.WriteByte(byte(symbol)); err != nil {
			return err
		}
	}
	return bufw.Flush()
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
