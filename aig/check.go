package aig

import "fmt"

// structPairKey canonicalizes a sorted fanin pair into a single map key
// for the duplicate-structural-hash check in Check.
type structPairKey struct {
	n0, n1 uint32
	c0, c1 bool
}

// Check validates every AIG invariant from spec §3 ("Invariants (AIG)"):
// acyclicity, non-self/existing fanins, exact fanout counts, no
// duplicate structurally-hashed ANDs, and monotone levels. An AND fanin
// that points at the constant node (which Replace can produce) is not
// rejected. It is the
// engine's analogue of Abc_NtkCheck, run after every pass (spec §4.H);
// a failure here is a fatal structural-violation bug, never a recoverable
// per-node failure.
func (n *Network) Check() error {
	if ok, cerr := n.IsAcyclic(); !ok {
		return fmt.Errorf("aig: check: %w", cerr)
	}

	n.muNodes.RLock()
	defer n.muNodes.RUnlock()

	expectedFanout := make(map[uint32]int, len(n.nodes))
	seenPairs := make(map[structPairKey]uint32)

	for _, node := range n.nodes {
		if node == nil {
			continue
		}
		switch node.Kind {
		case KindAnd:
			for _, fi := range [2]Edge{node.Fanin0, node.Fanin1} {
				if fi.Node == node.ID {
					return fmt.Errorf("%w: node %d", ErrSelfFanin, node.ID)
				}
				if int(fi.Node) >= len(n.nodes) || n.nodes[fi.Node] == nil {
					return fmt.Errorf("%w: node %d -> %d", ErrDanglingFanin, node.ID, fi.Node)
				}
				expectedFanout[fi.Node]++
			}

			a, b := node.Fanin0, node.Fanin1
			if edgeLess(b, a) {
				a, b = b, a
			}
			key := structPairKey{n0: a.Node, n1: b.Node, c0: a.Compl, c1: b.Compl}
			if existing, dup := seenPairs[key]; dup && existing != node.ID {
				return fmt.Errorf("%w: nodes %d and %d", ErrDupStructHash, existing, node.ID)
			}
			seenPairs[key] = node.ID

			if node.Level < n.nodes[node.Fanin0.Node].Level+1 || node.Level < n.nodes[node.Fanin1.Node].Level+1 {
				return fmt.Errorf("%w: node %d level %d", ErrLevelViolation, node.ID, node.Level)
			}
		case KindPO:
			fi := node.Fanin0
			if int(fi.Node) >= len(n.nodes) || n.nodes[fi.Node] == nil {
				return fmt.Errorf("%w: PO %d -> %d", ErrDanglingFanin, node.ID, fi.Node)
			}
			expectedFanout[fi.Node]++
		}
	}

	for _, node := range n.nodes {
		if node == nil || node.Kind == KindPO {
			continue
		}
		want := expectedFanout[node.ID]
		got := 0
		for _, r := range node.fanoutRefs {
			if r != node.ID { // ignore MFFC-labeling self-tagged Ref() pins
				got++
			}
		}
		if got != want {
			return fmt.Errorf("%w: node %d has %d, want %d", ErrFanoutMismatch, node.ID, got, want)
		}
	}

	return nil
}
