package library

import (
	"github.com/katalvlaran/aigsynth/dgraph"
	"github.com/katalvlaran/aigsynth/npn"
)

// and2Truth is the 16-bit truth table of a two-input AND over cut-leaf
// slots 0 and 1 (a∧b, don't-care on the other two slots): bits set
// exactly where both var0 and var1 are 1.
const and2Truth uint16 = 0x8888

// BuildDefault returns a small, hand-curated forest covering the
// two-input-AND NPN class spec §8's seed scenario 4 exercises: a cut
// whose function reduces to a single two-input AND after removing its
// don't-care leaves is matched against this entry's blueprint, which
// the rewriting engine can splice in place of a larger structural
// realization of the same function (spec §6 EXPANSION: "a bootstrap
// default, not a replacement for a real blob" — hosts shipping a real
// library use LoadForest instead).
//
// tables resolves and2Truth's class id so BuildDefault's single entry
// is registered under whatever class id that table assignment
// produces — this keeps the bootstrap forest consistent with whichever
// npn.Tables (Build() or a loaded blob) the caller pairs it with,
// rather than hard-coding a class id that would only be valid for one
// particular canonicalization tie-break.
func BuildDefault(tables *npn.Tables) *Forest {
	f := NewForest()
	classID := tables.Classes[and2Truth]

	g := dgraph.NewGraph()
	leaves := g.CreateLeaves(2)
	g.SetRoot(g.AddAnd(leaves[0], leaves[1]))

	f.Add(classID, RwrNode{
		Truth:  tables.Canons[and2Truth],
		Level:  1,
		Volume: 1,
		Graph:  g,
	})
	return f
}
