package dgraph

// Eval computes the graph's output for a given assignment of leaf
// values (by leaf index), walking the graph bottom-up. Used by tests
// and by sop's round-trip checks to confirm a factored Graph reproduces
// the source truth table, not by the optimization core itself (splice
// binds leaves to live AIG edges instead of Boolean values).
func (g *Graph) Eval(leafValues []bool) bool {
	memo := make([]bool, len(g.Nodes))
	done := make([]bool, len(g.Nodes))

	var walk func(id uint32) bool
	walk = func(id uint32) bool {
		if done[id] {
			return memo[id]
		}
		n := g.Nodes[id]
		var v bool
		switch n.Kind {
		case KindConst0:
			v = false
		case KindConst1:
			v = true
		case KindLeaf:
			v = leafValues[n.ExternalEdge]
		case KindAnd, KindOr:
			v0 := walk(n.Fanin0.Node) != n.Fanin0.Compl
			v1 := walk(n.Fanin1.Node) != n.Fanin1.Compl
			v = v0 && v1
		}
		memo[id] = v
		done[id] = true
		return v
	}

	return walk(g.Root.Node) != g.Root.Compl
}
