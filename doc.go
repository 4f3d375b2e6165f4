// Package hctree implements a Huffman coding tree over the byte alphabet.
//
// A Tree is built once from a table of symbol frequencies.  It can then
// encode single symbols into variable-length code words, decode code words
// back into symbols, and write its own shape as a compact header from which
// a peer rebuilds the identical Tree.  The shape itself is transmitted; codes
// are not canonicalized.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hctree
