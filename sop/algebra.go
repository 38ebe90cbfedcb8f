package sop

// This file implements the cube-level algebra factorCover (factor.go)
// builds on: finding the best literal divisor, exact single-cube
// division, and common-cube extraction (spec §4.D/§4.E's "Algebraic
// factoring (Brayton-McMullen)" steps). The implementation picks the
// single best-occurring literal as its algebraic divisor rather than
// searching for a general double/multi-cube kernel — a deliberate
// simplification recorded in DESIGN.md: single-literal division is
// exact by construction (every cube either contains the literal or it
// doesn't, with no partial-overlap ambiguity to resolve), which keeps
// every recursive step provably functionally correct without a general
// weak-division search.

// bestLiteral finds the (variable, polarity) pair occurring as a bound
// literal in the most cubes of f, requiring at least two occurrences to
// be worth dividing by. ok is false if no literal repeats.
func bestLiteral(f Cover, nVars int) (lit Cube, ok bool) {
	bestCount := 1
	for v := 0; v < nVars; v++ {
		posCount, negCount := 0, 0
		for _, c := range f {
			if c.HasPos(v) && !c.HasNeg(v) {
				posCount++
			}
			if c.HasNeg(v) && !c.HasPos(v) {
				negCount++
			}
		}
		if posCount > bestCount {
			bestCount = posCount
			lit = Cube(0).SetLiteral1(v)
			ok = true
		}
		if negCount > bestCount {
			bestCount = negCount
			lit = Cube(0).SetLiteral0(v)
			ok = true
		}
	}
	return lit, ok
}

// divide performs exact algebraic division of f by the single cube d:
// every cube of f containing all of d's bound literals goes into the
// quotient (with d's literals cleared to don't-care); every other cube
// goes to the remainder. Because d is a single cube, this partition is
// total and exact: f = d·q + r by construction, with no partial-overlap
// case to resolve (unlike weak division by a multi-cube divisor).
func divide(f Cover, d Cover, nVars int) (q, r Cover) {
	dCube := d[0]
	for i := 1; i < len(d); i++ {
		dCube = intersectLiterals(dCube, d[i], nVars)
	}
	for _, c := range f {
		if contains(c, dCube, nVars) {
			q = append(q, clearLiterals(c, dCube, nVars))
		} else {
			r = append(r, c)
		}
	}
	return q, r
}

// contains reports whether cube c is bound to exactly d's literals at
// every variable d constrains.
func contains(c, d Cube, nVars int) bool {
	for v := 0; v < nVars; v++ {
		if d.IsDontCare(v) {
			continue
		}
		if d.HasPos(v) && !(c.HasPos(v) && !c.HasNeg(v)) {
			return false
		}
		if d.HasNeg(v) && !(c.HasNeg(v) && !c.HasPos(v)) {
			return false
		}
	}
	return true
}

// clearLiterals resets c's bits to don't-care at every variable d binds,
// producing the quotient cube for that division.
func clearLiterals(c, d Cube, nVars int) Cube {
	out := c
	for v := 0; v < nVars; v++ {
		if !d.IsDontCare(v) {
			out = out.withLiteral(v, true, true)
		}
	}
	return out
}

// intersectLiterals keeps only the literals a and b agree on exactly,
// used when a multi-cube divisor's cubes must be combined into the
// single effective cube divide() operates against.
func intersectLiterals(a, b Cube, nVars int) Cube {
	out := FullCube(nVars)
	for v := 0; v < nVars; v++ {
		if a.HasPos(v) && !a.HasNeg(v) && b.HasPos(v) && !b.HasNeg(v) {
			out = out.SetLiteral1(v)
		} else if a.HasNeg(v) && !a.HasPos(v) && b.HasNeg(v) && !b.HasPos(v) {
			out = out.SetLiteral0(v)
		}
	}
	return out
}

// commonCube returns the cube of literals shared identically by every
// cube of cover (spec §4.E step 3's "factor out its common cube").
func commonCube(cover Cover, nVars int) Cube {
	common := FullCube(nVars)
	if len(cover) == 0 {
		return common
	}
	for v := 0; v < nVars; v++ {
		allPos, allNeg := true, true
		for _, c := range cover {
			if !(c.HasPos(v) && !c.HasNeg(v)) {
				allPos = false
			}
			if !(c.HasNeg(v) && !c.HasPos(v)) {
				allNeg = false
			}
		}
		if allPos {
			common = common.SetLiteral1(v)
		} else if allNeg {
			common = common.SetLiteral0(v)
		}
	}
	return common
}

// cubeFree divides out cover's own common cube, returning the quotient
// (spec §4.E step 3). If cover has no shared literal, it is returned
// unchanged.
func cubeFree(cover Cover, nVars int) Cover {
	common := commonCube(cover, nVars)
	if common == FullCube(nVars) {
		return cover
	}
	q, _ := divide(cover, Cover{common}, nVars)
	return q
}

// combineCube unions two non-conflicting single cubes' literals into one.
func combineCube(a, b Cube, nVars int) Cube {
	out := a
	for v := 0; v < nVars; v++ {
		if b.HasPos(v) && !b.HasNeg(v) {
			out = out.SetLiteral1(v)
		} else if b.HasNeg(v) && !b.HasPos(v) {
			out = out.SetLiteral0(v)
		}
	}
	return out
}
