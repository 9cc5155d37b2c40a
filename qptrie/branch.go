package qptrie

import "unsafe"

// twigs reconstructs a branch's packed child array. Its length is derived
// from the popcount of bitmap rather than stored separately: popcount(bitmap)
// always equals len(twigs).
func (c *cell) twigs() []cell {
	n := popcount32(c.bitmap())
	if n == 0 {
		return nil
	}

	return unsafe.Slice((*cell)(c.ptr), n)
}

func newBranch(index int, flags branchFlags, bitmap uint32, twigs []cell) cell {
	return cell{
		word: packBranchWord(flags, index, bitmap),
		ptr:  unsafe.Pointer(&twigs[0]),
	}
}

// growTwig inserts newTwig into c's packed array at the popcount offset for
// bit, re-allocating the array from k to k+1 elements and re-fixing c's
// pointer and bitmap.
func growTwig(c *cell, bit uint32, newTwig cell) {
	old := c.twigs()
	offset := twigOffset(c.bitmap(), bit)

	grown := make([]cell, len(old)+1)
	copy(grown[:offset], old[:offset])
	grown[offset] = newTwig
	copy(grown[offset+1:], old[offset:])

	c.setBitmap(c.bitmap() | bit)
	c.ptr = unsafe.Pointer(&grown[0])
}

// shrinkTwig removes the twig for bit from c's packed array, re-allocating
// from k to k-1 elements, and returns the removed cell.
func shrinkTwig(c *cell, bit uint32) cell {
	old := c.twigs()
	offset := twigOffset(c.bitmap(), bit)
	removed := old[offset]

	shrunk := make([]cell, len(old)-1)
	copy(shrunk[:offset], old[:offset])
	copy(shrunk[offset:], old[offset+1:])

	c.setBitmap(c.bitmap() &^ bit)

	if len(shrunk) > 0 {
		c.ptr = unsafe.Pointer(&shrunk[0])
	} else {
		c.ptr = nil
	}

	return removed
}
