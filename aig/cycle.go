package aig

import "fmt"

// CycleError reports a cycle found by IsAcyclic, carrying the witness
// chain of node ids forming the back-edge (spec §4.A: "reports the cycle
// witness... to the error sink").
type CycleError struct {
	Witness []uint32
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("aig: cycle detected: %v", e.Witness)
}

// IsAcyclic runs the two-travId cycle-detecting DFS of spec §4.A: `cur`
// marks nodes on the current recursion path (a revisit means a back-edge
// / cycle), `prev` marks nodes already fully settled by an earlier
// branch of the same sweep. Any other travID value means unseen. After a
// node's children are all processed it is demoted from cur to prev.
//
// Returns (true, nil) if acyclic, or (false, *CycleError) with a witness
// chain otherwise.
func (n *Network) IsAcyclic() (bool, *CycleError) {
	cur := n.NextTravID()
	prev := n.NextTravID()

	var path []uint32
	var witness *CycleError

	var visit func(id uint32) bool // returns true to keep going, false to abort (cycle found)
	visit = func(id uint32) bool {
		node := n.Node(id)
		if node == nil {
			return true
		}
		if node.TravID == cur {
			// Back-edge: id is still on the recursion path. Build the
			// witness as the suffix of path starting at id, closed by id.
			start := 0
			for i, p := range path {
				if p == id {
					start = i
					break
				}
			}
			w := append([]uint32(nil), path[start:]...)
			w = append(w, id)
			witness = &CycleError{Witness: w}
			return false
		}
		if node.TravID == prev {
			return true // already fully settled
		}
		if node.Kind != KindAnd {
			n.Mark(id, prev)
			return true
		}

		n.Mark(id, cur)
		path = append(path, id)

		if !visit(node.Fanin0.Node) {
			return false
		}
		if !visit(node.Fanin1.Node) {
			return false
		}

		path = path[:len(path)-1]
		n.Mark(id, prev) // demote: settled
		return true
	}

	for _, po := range n.POs() {
		node := n.Node(po)
		if node == nil {
			continue
		}
		if !visit(node.Fanin0.Node) {
			return false, witness
		}
	}
	// Also walk any AND not reachable from a PO (dangling logic can still
	// be cyclic and must not escape detection).
	n.muNodes.RLock()
	ids := make([]uint32, 0, len(n.nodes))
	for _, nd := range n.nodes {
		if nd != nil {
			ids = append(ids, nd.ID)
		}
	}
	n.muNodes.RUnlock()
	for _, id := range ids {
		if !visit(id) {
			return false, witness
		}
	}

	return true, nil
}
