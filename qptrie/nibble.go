package qptrie

import "github.com/hideo55/go-popcount"

// endOfKeyBit is the dedicated twig bit for a key that ends exactly at a
// branch's index, distinct from the 16 bits used for nibble values 0-15.
// Without it, a key and any all-zero-nibble extension of itself (e.g. "a"
// and "a\x00") would both select nibble value 0's bit and be
// indistinguishable.
const endOfKeyBit uint32 = 1 << 16

// twigBit computes the single-bit twig selector for key at the nibble a
// branch with the given index/flags discriminates on.
func twigBit(index int, flags branchFlags, key []byte) uint32 {
	if index >= len(key) {
		return endOfKeyBit
	}

	b := key[index]

	var nib byte
	if flags == flagUpper {
		nib = b >> 4
	} else {
		nib = b & 0x0F
	}

	return 1 << nib
}

func hasTwig(bitmap uint32, bit uint32) bool {
	return bitmap&bit != 0
}

// twigOffset turns a twig's bit into its position in the packed twig array:
// the number of lower-valued bits already set in bitmap.
func twigOffset(bitmap uint32, bit uint32) int {
	return popcount32(bitmap & (bit - 1))
}

// popcount32 counts the set bits of a bitmap word. It defers to go-popcount
// rather than a hand-rolled SWAR routine.
func popcount32(bitmap uint32) int {
	return int(popcount.Count(uint64(bitmap)))
}
