package qptrie

import "unsafe"

// Walk calls visit once per leaf, in the trie's natural order: ascending
// bitmap bit at every branch along the way. That is deterministic and
// stable for a given tree shape, but not lexicographic key order in
// general. visit may inspect but must not mutate the trie; stop early by
// returning false.
func (t *Trie) Walk(visit func(key []byte, value unsafe.Pointer) bool) {
	if t.empty() {
		return
	}

	walkCell(&t.root, visit)
}

func walkCell(c *cell, visit func(key []byte, value unsafe.Pointer) bool) bool {
	if !c.isBranch() {
		return visit(leafKey(c), leafValue(c))
	}

	for _, twig := range c.twigs() {
		twig := twig
		if !walkCell(&twig, visit) {
			return false
		}
	}

	return true
}
