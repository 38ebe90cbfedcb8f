package npn

// perms4 holds all 24 permutations of the 4 input-variable indices,
// generated once at package init time via a standard Heap/recursive
// swap-based enumeration. perms4[0] is always the identity permutation
// (the first branch the recursion tries never swaps anything away from
// the initial order).
var perms4 = generatePerms4()

func generatePerms4() [24][4]int {
	var out [24][4]int
	idx := 0
	a := [4]int{0, 1, 2, 3}
	permuteRec(a, 0, &out, &idx)
	return out
}

func permuteRec(a [4]int, k int, out *[24][4]int, idx *int) {
	if k == len(a) {
		out[*idx] = a
		*idx++
		return
	}
	for i := k; i < len(a); i++ {
		a[k], a[i] = a[i], a[k]
		permuteRec(a, k+1, out, idx)
		a[k], a[i] = a[i], a[k]
	}
}

// Perm returns the idx'th of the 24 input permutations Build indexes
// Tables.Perms by. Callers resolving a matched cut's candidate fanins
// (spec §4.F step 2: "permute the cut leaves by perm") use this instead
// of reaching into package-private state.
func Perm(idx uint8) [4]int {
	return perms4[idx]
}

// permuteVars returns the truth table of t(x_perm[0], x_perm[1],
// x_perm[2], x_perm[3]): the minterm selected by input assignment m
// under the permuted variable order is t's minterm with each bit moved
// from position i to position perm[i].
func permuteVars(t uint16, perm [4]int) uint16 {
	var out uint16
	for m := 0; m < 16; m++ {
		var mapped int
		for i := 0; i < 4; i++ {
			if (m>>uint(i))&1 == 1 {
				mapped |= 1 << uint(perm[i])
			}
		}
		if (t>>uint(mapped))&1 == 1 {
			out |= 1 << uint(m)
		}
	}
	return out
}

// negateInputs returns the truth table of t(x XOR mask): complementing
// input i flips bit i of every minterm index before the lookup.
func negateInputs(t uint16, mask uint8) uint16 {
	var out uint16
	for m := 0; m < 16; m++ {
		src := m ^ int(mask)
		if (t>>uint(src))&1 == 1 {
			out |= 1 << uint(m)
		}
	}
	return out
}

// Build generates the four NPN tables from scratch by brute force: for
// every one of the 65536 four-input truth tables, try all 24 · 16 · 2 =
// 768 permutation/input-negation/output-negation transforms and keep
// the transform reaching the numerically smallest resulting truth
// value as that table's canonical representative (spec §6's "these
// tables are static input" names the format; this is the from-scratch
// generator a host uses when no precomputed blob is supplied — it is a
// bootstrap helper for tests and blob-less hosts, never invoked by the
// rewriting engine itself mid-pass).
func Build() *Tables {
	t := &Tables{}
	classOf := make(map[uint16]uint16, 4096)
	var nextClass uint16

	for v := 0; v < 65536; v++ {
		tv := uint16(v)
		bestCanon := tv
		var bestPerm, bestPhase uint8

		for pi, perm := range perms4 {
			permuted := permuteVars(tv, perm)
			for mask := 0; mask < 16; mask++ {
				negated := negateInputs(permuted, uint8(mask))
				for out := 0; out < 2; out++ {
					cand := negated
					phase := uint8(mask)
					if out == 1 {
						cand = ^cand
						phase |= 1 << 4
					}
					if cand < bestCanon {
						bestCanon = cand
						bestPerm = uint8(pi)
						bestPhase = phase
					}
				}
			}
		}

		t.Canons[v] = bestCanon
		t.Perms[v] = bestPerm
		t.Phases[v] = bestPhase

		cls, ok := classOf[bestCanon]
		if !ok {
			cls = nextClass
			classOf[bestCanon] = cls
			nextClass++
		}
		t.Classes[v] = cls
	}

	return t
}
