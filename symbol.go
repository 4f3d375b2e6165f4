package hctree

// Symbol represents one symbol of the byte alphabet.
type Symbol byte

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)

// maxCodeSize is the length of the longest possible code word, reached when
// the frequency distribution is fully skewed.
const maxCodeSize = NumSymbols - 1
