package sop

import "github.com/katalvlaran/aigsynth/dgraph"

// Factor applies recursive algebraic (Brayton-McMullen) factoring to
// cover over nVars variables, appending AND/OR nodes to g (which must
// already hold the nVars leaves referenced by leafEdges, as returned by
// g.CreateLeaves) and setting g's root to the factored tree (spec §4.D
// "Algebraic factoring"). leafEdges maps variable index to the leaf
// edge a cube's literal on that variable should reference.
func Factor(g *dgraph.Graph, cover Cover, nVars int, leafEdges []dgraph.Edge) {
	if len(cover) == 0 {
		g.SetRoot(g.Const0())
		return
	}
	g.SetRoot(factorCover(g, cover, nVars, leafEdges))
}

// factorCover implements spec §4.E's recursive algebraic factoring:
// find the best literal divisor L, divide F = L·Q + R, factor out Q's
// own common cube to get Q' (exact since every cube of Q shares it by
// definition), recombine L with that common cube into a single divisor
// cube D, and recurse on Q' and R. Falls back to the trivial balanced
// AND/OR tree whenever no literal repeats.
func factorCover(g *dgraph.Graph, f Cover, nVars int, leafEdges []dgraph.Edge) dgraph.Edge {
	if len(f) == 1 {
		return cubeToAnd(g, f[0], nVars, leafEdges)
	}

	lit, ok := bestLiteral(f, nVars)
	if !ok {
		return trivialFactorSum(g, f, nVars, leafEdges)
	}

	q, r := divide(f, Cover{lit}, nVars)
	common := commonCube(q, nVars)
	qPrime := cubeFree(q, nVars)
	dCube := combineCube(lit, common, nVars)

	dEdge := cubeToAnd(g, dCube, nVars, leafEdges)

	// bestLiteral only ever returns a literal occurring in at least two
	// cubes, so q (and therefore qPrime, which shares its length) always
	// holds at least two cubes here — there is no empty-quotient case to
	// special-case.
	result := g.AddAnd(dEdge, factorCover(g, qPrime, nVars, leafEdges))

	if len(r) == 0 {
		return result
	}
	return g.AddOr(result, factorCover(g, r, nVars, leafEdges))
}

// trivialFactorSum builds the balanced binary OR-tree over cubes, each
// cube itself a balanced binary AND-tree over its literals (spec §4.D
// "Trivial factor").
func trivialFactorSum(g *dgraph.Graph, f Cover, nVars int, leafEdges []dgraph.Edge) dgraph.Edge {
	edges := make([]dgraph.Edge, len(f))
	for i, c := range f {
		edges[i] = cubeToAnd(g, c, nVars, leafEdges)
	}
	return balancedOr(g, edges)
}

func cubeToAnd(g *dgraph.Graph, c Cube, nVars int, leafEdges []dgraph.Edge) dgraph.Edge {
	var lits []dgraph.Edge
	for v := 0; v < nVars; v++ {
		if c.IsDontCare(v) {
			continue
		}
		e := leafEdges[v]
		if c.HasNeg(v) {
			e = e.Not()
		}
		lits = append(lits, e)
	}
	if len(lits) == 0 {
		return g.Const1()
	}
	return balancedAnd(g, lits)
}

func balancedAnd(g *dgraph.Graph, edges []dgraph.Edge) dgraph.Edge {
	if len(edges) == 1 {
		return edges[0]
	}
	mid := len(edges) / 2
	left := balancedAnd(g, edges[:mid])
	right := balancedAnd(g, edges[mid:])
	return g.AddAnd(left, right)
}

func balancedOr(g *dgraph.Graph, edges []dgraph.Edge) dgraph.Edge {
	if len(edges) == 1 {
		return edges[0]
	}
	mid := len(edges) / 2
	left := balancedOr(g, edges[:mid])
	right := balancedOr(g, edges[mid:])
	return g.AddOr(left, right)
}
