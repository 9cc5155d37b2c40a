// Package qptrie implements a quadbit popcount PATRICIA trie (qp trie): a
// radix-16 PATRICIA trie keyed by opaque byte strings, whose branch nodes
// hold a 17-bit presence bitmap plus popcount indexing over a densely
// packed child array.
//
// A trie is built from cells. Each cell is exactly two machine words and is
// either a leaf or a branch, distinguished by the low two bits of its
// word field:
//
//	[ word: 64 bits ]                          [ ptr ]
//	 leaf:    <00000...........................0>   -> *leafData{key, val}
//	 branch:  <bitmap:17><--index:45-->[flags:2]     -> first *cell of twigs
//
// flags is 1 when the branch tests the upper nibble of the key byte at
// index, and 2 when it tests the lower nibble. Along any root-to-leaf path
// the pair (index, flags) strictly increases, which is what lets a lookup
// terminate with a single final key comparison: branch descent never
// verifies the prefix it's walking, only the leaf at the bottom does.
//
// Sixteen of the bitmap's bits correspond to nibble values 0-15; the 17th,
// reserved for keys that end exactly at index, keeps a key from colliding
// with an otherwise-identical key extended by an all-zero nibble.
//
// Keys are borrowed: a Trie never copies or mutates the byte slices handed
// to Set, and the caller must keep them alive for as long as they remain in
// the trie. Values are opaque, caller-owned pointers that must be
// word-aligned (their low two bits must be zero); Set rejects any other
// value. A value is stored in the leaf's boxed payload, not in its word,
// which is always zero and so always reads as the leaf tag.
package qptrie
