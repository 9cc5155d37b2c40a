package qptrie

import (
	"bytes"
	"unsafe"
)

// KV is an initial key-value pair for New. The key is borrowed exactly as
// it is for Set: the caller must keep it alive and unmutated.
type KV struct {
	Key []byte
	Val unsafe.Pointer
}

// Trie is a qp trie table. The zero value is a valid, empty table -- root
// has a nil ptr, which can never be a valid leaf or branch, so it doubles
// as the sentinel for an absent root.
type Trie struct {
	root cell
}

// New returns a new, empty Trie, optionally seeded with an initial batch of
// key-value pairs.
func New(init ...KV) *Trie {
	t := &Trie{}

	for _, kv := range init {
		t.Set(kv.Key, kv.Val)
	}

	return t
}

func (t *Trie) empty() bool {
	return t == nil || t.root.ptr == nil
}

// Get returns the value associated with key, or (nil, false) if key is not
// present.
func (t *Trie) Get(key []byte) (unsafe.Pointer, bool) {
	if t.empty() {
		return nil, false
	}

	cur := &t.root
	for cur.isBranch() {
		bit := twigBit(cur.index(), cur.flags(), key)
		if !hasTwig(cur.bitmap(), bit) {
			return nil, false
		}

		twigs := cur.twigs()
		cur = &twigs[twigOffset(cur.bitmap(), bit)]
	}

	if bytes.Equal(leafKey(cur), key) {
		return leafValue(cur), true
	}

	return nil, false
}

// Set assigns val to key, returning the previous value and true if key was
// already present. val must be non-nil and word-aligned (its low two bits
// must be zero); violating this returns ErrNilValue or ErrMisalignedValue
// and leaves the trie unchanged.
func (t *Trie) Set(key []byte, val unsafe.Pointer) (unsafe.Pointer, bool, error) {
	if val == nil {
		return nil, false, ErrNilValue
	}

	if uintptr(val)&0x3 != 0 {
		return nil, false, ErrMisalignedValue
	}

	if t.root.ptr == nil {
		t.root = newLeaf(key, val)
		return nil, false, nil
	}

	// Pass 1: follow key's own path to whichever leaf is closest to it --
	// either the leaf key actually belongs to, or (if a branch along the
	// way lacks key's twig) a representative leaf of that branch's subtree.
	cur := &t.root
	for cur.isBranch() {
		bit := twigBit(cur.index(), cur.flags(), key)
		if !hasTwig(cur.bitmap(), bit) {
			break
		}

		twigs := cur.twigs()
		cur = &twigs[twigOffset(cur.bitmap(), bit)]
	}

	closestKey := representativeKey(cur)

	critIndex, critFlags, equal := criticalPosition(closestKey, key)
	if equal {
		return setLeafValue(cur, val), true, nil
	}

	critOrder := branchOrder(critIndex, critFlags)

	// Pass 2: re-walk from the root, stopping at the shallowest branch whose
	// (index, flags) is >= the critical one -- that's where the new branch
	// gets spliced in, or, if it matches exactly, where the new leaf joins
	// an existing branch's twig array.
	node := &t.root
	for node.isBranch() && branchOrder(node.index(), node.flags()) < critOrder {
		bit := twigBit(node.index(), node.flags(), key)
		if !hasTwig(node.bitmap(), bit) {
			break
		}

		twigs := node.twigs()
		node = &twigs[twigOffset(node.bitmap(), bit)]
	}

	if node.isBranch() && branchOrder(node.index(), node.flags()) == critOrder {
		bit := twigBit(critIndex, critFlags, key)
		growTwig(node, bit, newLeaf(key, val))

		return nil, false, nil
	}

	oldSubtree := *node
	oldBit := twigBit(critIndex, critFlags, representativeKey(&oldSubtree))
	newBit := twigBit(critIndex, critFlags, key)

	var twigs [2]cell
	if newBit < oldBit {
		twigs[0], twigs[1] = newLeaf(key, val), oldSubtree
	} else {
		twigs[0], twigs[1] = oldSubtree, newLeaf(key, val)
	}

	*node = newBranch(critIndex, critFlags, oldBit|newBit, twigs[:])

	return nil, false, nil
}

// Delete removes key, returning its value and true if it was present.
func (t *Trie) Delete(key []byte) (unsafe.Pointer, bool) {
	if t.empty() {
		return nil, false
	}

	type frame struct {
		branch *cell
		bit    uint32
	}

	var path []frame

	cur := &t.root
	for cur.isBranch() {
		bit := twigBit(cur.index(), cur.flags(), key)
		if !hasTwig(cur.bitmap(), bit) {
			return nil, false
		}

		path = append(path, frame{cur, bit})
		twigs := cur.twigs()
		cur = &twigs[twigOffset(cur.bitmap(), bit)]
	}

	if !bytes.Equal(leafKey(cur), key) {
		return nil, false
	}

	prev := leafValue(cur)

	if len(path) == 0 {
		// the root was the only leaf
		t.root = cell{}
		return prev, true
	}

	parent := path[len(path)-1]
	shrinkTwig(parent.branch, parent.bit)

	if popcount32(parent.branch.bitmap()) == 1 {
		// the PATRICIA invariant forbids one-child branches: collapse.
		// Cascading collapse is never required here, because monotonic
		// descent means only the immediate parent can ever be left with a
		// single twig by this removal.
		*parent.branch = parent.branch.twigs()[0]
	}

	return prev, true
}

// criticalPosition finds the first (index, flags) pair at which a and b
// select different twig bits, i.e. the point at which a new branch must
// discriminate between them. It walks nibble by nibble using twigBit
// itself, so end-of-key is naturally distinguished from nibble value 0
// instead of being re-derived from a raw byte comparison.
func criticalPosition(a, b []byte) (index int, flags branchFlags, equal bool) {
	for i := 0; ; i++ {
		for _, fl := range [2]branchFlags{flagUpper, flagLower} {
			if twigBit(i, fl, a) != twigBit(i, fl, b) {
				return i, fl, false
			}
		}

		if i >= len(a) && i >= len(b) {
			return 0, 0, true
		}
	}
}
