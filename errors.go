package hctree

import (
	"errors"
)

// ErrEmptyTree is returned when a Tree with no symbols is asked to encode,
// decode, or write its header.
var ErrEmptyTree = errors.New("hctree: tree is empty")

// ErrUnknownSymbol is returned when encoding a symbol that had a frequency of
// 0 when the Tree was built.
var ErrUnknownSymbol = errors.New("hctree: unknown symbol")

// ErrCorruptHeader is returned by ReadHeader when the header does not
// describe a valid tree.
var ErrCorruptHeader = errors.New("hctree: corrupt header")
