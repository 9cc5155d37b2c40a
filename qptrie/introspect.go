package qptrie

import (
	"fmt"
	"io"
	"strings"
	"unsafe"
)

// Stats reports aggregate size metrics for a trie: total cell-bytes, the sum
// of leaf depths (for average-depth computation), branch count and leaf
// count.
type Stats struct {
	Kind        string
	TotalBytes  int64
	DepthSum    int64
	BranchCount int64
	LeafCount   int64
}

// Size walks the whole trie once and reports Stats.
func (t *Trie) Size() Stats {
	stats := Stats{Kind: "qp"}

	if t.empty() {
		return stats
	}

	sizeCell(&t.root, 0, &stats)

	return stats
}

func sizeCell(c *cell, depth int64, stats *Stats) {
	stats.TotalBytes += int64(unsafe.Sizeof(*c))

	if !c.isBranch() {
		stats.LeafCount++
		stats.DepthSum += depth
		stats.TotalBytes += int64(unsafe.Sizeof(leafData{}))

		return
	}

	stats.BranchCount++

	twigs := c.twigs()
	for i := range twigs {
		sizeCell(&twigs[i], depth+1, stats)
	}
}

// Dump writes a recursive, depth-indented structural dump of the trie to w:
// one line per branch (its index and flags) and one line per leaf (its key
// and value pointer).
func (t *Trie) Dump(w io.Writer) error {
	if t.empty() {
		_, err := fmt.Fprintln(w, "<empty qp trie>")
		return err
	}

	return dumpCell(w, &t.root, 0)
}

func dumpCell(w io.Writer, c *cell, depth int) error {
	indent := strings.Repeat("  ", depth)

	if !c.isBranch() {
		_, err := fmt.Fprintf(w, "%sleaf key=%q val=%p\n", indent, leafKey(c), leafValue(c))
		return err
	}

	flagName := "upper"
	if c.flags() == flagLower {
		flagName = "lower"
	}

	if _, err := fmt.Fprintf(w, "%sbranch index=%d nibble=%s bitmap=%017b\n",
		indent, c.index(), flagName, c.bitmap()); err != nil {
		return err
	}

	twigs := c.twigs()
	for i := range twigs {
		if err := dumpCell(w, &twigs[i], depth+1); err != nil {
			return err
		}
	}

	return nil
}
