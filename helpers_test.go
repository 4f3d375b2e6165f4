package hctree

import (
	"io"
	"strings"
)

// bitRecorder is a BitWriter that records bits as a string of '0' and '1'.
type bitRecorder struct {
	buf strings.Builder
}

func (rec *bitRecorder) WriteBool(bit bool) error {
	if bit {
		rec.buf.WriteByte('1')
	} else {
		rec.buf.WriteByte('0')
	}
	return nil
}

func (rec *bitRecorder) WriteByte(b byte) error {
	for i := 7; i >= 0; i-- {
		rec.buf.WriteByte('0' + (b>>uint(i))&1)
	}
	return nil
}

func (rec *bitRecorder) String() string {
	return rec.buf.String()
}

// bitPlayer is a BitReader that plays back a string of '0' and '1'.
type bitPlayer struct {
	bits string
	pos  int
}

func (p *bitPlayer) ReadBool() (bool, error) {
	if p.pos >= len(p.bits) {
		return false, io.EOF
	}
	bit := p.bits[p.pos] == '1'
	p.pos++
	return bit, nil
}

func (p *bitPlayer) ReadByte() (byte, error) {
	if p.pos+8 > len(p.bits) {
		return 0, io.EOF
	}
	var b byte
	for i := 0; i < 8; i++ {
		b = (b << 1) | (p.bits[p.pos+i] - '0')
	}
	p.pos += 8
	return b, nil
}

func (p *bitPlayer) Remaining() int {
	return len(p.bits) - p.pos
}

var (
	_ BitWriter = (*bitRecorder)(nil)
	_ BitReader = (*bitPlayer)(nil)
)

func makeFrequencies(pairs map[byte]uint64) []uint64 {
	frequencies := make([]uint64, NumSymbols)
	for symbol, freq := range pairs {
		frequencies[symbol] = freq
	}
	return frequencies
}

// The example corpus: "abcdef" text with a trailing newline.
func makeCorpusTree() *Tree {
	var t Tree
	t.Init(makeFrequencies(map[byte]uint64{
		'\n': 1, 'a': 17, 'b': 8, 'c': 7, 'd': 14, 'e': 9, 'f': 1,
	}))
	return &t
}

type testTable struct {
	name        string
	frequencies []uint64
}

func makeTestTables() []testTable {
	return []testTable{
		{"corpus", makeFrequencies(map[byte]uint64{
			'\n': 1, 'a': 17, 'b': 8, 'c': 7, 'd': 14, 'e': 9, 'f': 1,
		})},
		{"digits", makeFrequencies(map[byte]uint64{
			'\n': 1, '0': 6, '1': 1, '2': 1, '3': 1, '4': 2, '8': 1,
			'a': 1, 'b': 1, 'c': 6, 'd': 6, 's': 6,
		})},
		{"classic", makeFrequencies(map[byte]uint64{
			'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45,
		})},
		{"uniform", uniformFrequencies()},
		{"fibonacci", fibonacciFrequencies(40)},
		{"high", makeFrequencies(map[byte]uint64{
			0x00: 3, 0x7f: 3, 0x80: 3, 0xff: 3, 0xfe: 1,
		})},
	}
}

func uniformFrequencies() []uint64 {
	frequencies := make([]uint64, NumSymbols)
	for i := range frequencies {
		frequencies[i] = 1
	}
	return frequencies
}

// fibonacciFrequencies yields the most skewed tree possible for n symbols.
func fibonacciFrequencies(n int) []uint64 {
	frequencies := make([]uint64, n)
	a, b := uint64(1), uint64(1)
	for i := range frequencies {
		frequencies[i] = a
		a, b = b, a+b
	}
	return frequencies
}
