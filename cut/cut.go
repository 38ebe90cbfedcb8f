// Package cut implements K-feasible cut enumeration for AIG nodes (spec
// §4.C): per-node merge of fanin cut lists bounded by K leaves, dominance
// filtering, 64-bit leaf signatures for fast pre-dominance rejection, and
// incremental truth-table propagation across the "stretching phase" that
// re-expands a child cut's function into the merged cut's larger
// variable space.
package cut

import (
	"github.com/katalvlaran/aigsynth/truth"
)

// Cut is a bounded-input window around an AIG node: a sorted leaf-id
// list, a 64-bit signature for cheap dominance pre-checks, an optional
// propagated truth table, and a simulation bit.
type Cut struct {
	Root   uint32
	Leaves []uint32
	Sig    uint64
	Truth  *truth.Table
	Sim    bool
}

func (c *Cut) reset() {
	c.Root = 0
	c.Leaves = c.Leaves[:0]
	c.Sig = 0
	c.Truth = nil
	c.Sim = false
}

// IsTrivial reports whether c is the single-leaf cut of its own root
// (spec: "the trivial cut (leaves = {self}) is head" of every node's list).
func (c *Cut) IsTrivial() bool {
	return len(c.Leaves) == 1 && c.Leaves[0] == c.Root
}

// signature computes the spec's pre-dominance signature: the OR over
// leaves of 1 << (leafId & 63).
func signature(leaves []uint32) uint64 {
	var sig uint64
	for _, l := range leaves {
		sig |= uint64(1) << (l & 63)
	}
	return sig
}

// Dominates reports whether d dominates c: every leaf of d appears in c,
// pre-checked via the signature subset test before falling back to the
// full leaf-subset scan (spec §4.C "Dominance").
func Dominates(d, c *Cut) bool {
	if d.Sig&c.Sig != d.Sig {
		return false
	}
	if len(d.Leaves) > len(c.Leaves) {
		return false
	}
	return isSubset(d.Leaves, c.Leaves)
}

// isSubset reports whether every element of a (sorted ascending) appears
// in b (sorted ascending).
func isSubset(a, b []uint32) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] > b[j]:
			j++
		default:
			return false
		}
	}
	return i == len(a)
}

// Merge computes the merged leaf set of c0 and c1 (spec §4.C "Cut merge
// (exact)"), returning ok=false if the union would exceed k leaves.
// Precondition: callers pass c0 as the cut with the greater-or-equal leaf
// count, matching the spec's stated precondition; Merge itself does not
// reorder its arguments since the two fanin cut lists are not
// interchangeable once truth-table stretching is involved.
func Merge(c0, c1 *Cut, k int) (leaves []uint32, ok bool) {
	if len(c0.Leaves) == k && len(c1.Leaves) == k {
		if !sameLeaves(c0.Leaves, c1.Leaves) {
			return nil, false
		}
		return append([]uint32(nil), c0.Leaves...), true
	}
	if len(c0.Leaves) == k {
		if !isSubset(c1.Leaves, c0.Leaves) {
			return nil, false
		}
		return append([]uint32(nil), c0.Leaves...), true
	}

	merged := make([]uint32, 0, k+1)
	i, j := 0, 0
	for i < len(c0.Leaves) && j < len(c1.Leaves) {
		a, b := c0.Leaves[i], c1.Leaves[j]
		switch {
		case a == b:
			merged = append(merged, a)
			i++
			j++
		case a < b:
			merged = append(merged, a)
			i++
		default:
			merged = append(merged, b)
			j++
		}
		if len(merged) > k {
			return nil, false
		}
	}
	merged = append(merged, c0.Leaves[i:]...)
	merged = append(merged, c1.Leaves[j:]...)
	if len(merged) > k {
		return nil, false
	}
	return merged, true
}

func sameLeaves(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Phase computes the stretching phase of child within parent (spec §4.C
// "Stretching phase") as a positions slice: for each of child's leaves
// in order, the index into parent.Leaves it was found at — the input
// truth.Stretch needs to re-expand child's function into parent's
// variable space. No bitmask form is returned.
func Phase(parent, child *Cut) (positions []int) {
	positions = make([]int, 0, len(child.Leaves))
	pi := 0
	for _, leaf := range child.Leaves {
		for pi < len(parent.Leaves) && parent.Leaves[pi] != leaf {
			pi++
		}
		positions = append(positions, pi)
	}
	return positions
}
