package aig

import "testing"

// Network.And can never construct a cycle by itself (every fanin must
// already exist in the arena), so exercising IsAcyclic's witness
// reporting needs a whitebox poke directly at Node fanins, simulating
// the kind of corrupted state a malformed library blob or AIGER file
// could produce.
func TestCycleWitnessOnCorruptedArena(t *testing.T) {
	n := NewNetwork()
	a := n.CreatePI()
	b := n.CreatePI()

	xEdge, err := n.And(a, b)
	if err != nil {
		t.Fatalf("And: %v", err)
	}
	yEdge, err := n.And(xEdge, a)
	if err != nil {
		t.Fatalf("And: %v", err)
	}

	// Seed scenario 6: x = a∧y, y = x∧a. Rewire x's second fanin to y
	// directly, bypassing And's structural-hash checks, to model x→y→x.
	n.muNodes.Lock()
	n.nodes[xEdge.Node].Fanin1 = yEdge
	n.muNodes.Unlock()

	ok, cerr := n.IsAcyclic()
	if ok {
		t.Fatalf("expected cycle to be detected")
	}
	if cerr == nil || len(cerr.Witness) < 2 {
		t.Fatalf("expected a witness chain, got %v", cerr)
	}
}
