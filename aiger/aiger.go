// Package aiger implements a minimal ASCII AIGER ("aag") codec over
// aig.Network. AIGER's literal convention — variable*2 | sign, with
// variable 0 reserved for the constant — is exactly aig.Edge's own
// (Node, Compl) shape, one slot over: node 0 is already the network's
// reserved constant. That near-identity is why this package is a thin
// marshal/unmarshal layer rather than a parallel graph representation,
// much as the gini logic.C package's node arena maps its own z.Lit
// (variable<<1 | sign) directly onto arena indices without an
// intermediate model. Grounded stylistically on gaissmai-bart's
// io.Writer/io.Reader-based serialization entry points (serialize.go),
// adapted from bart's binary stream to AIGER's line-oriented text one.
//
// Only the combinational subset is supported: a header declaring zero
// latches is required, matching the rest of this module's sequential
// non-goal. Optional trailing symbol-table and comment sections are
// accepted on read (simply not parsed past the required line count) and
// never emitted on write, since aig.Network carries no names.
package aiger

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/aigsynth/aig"
	"github.com/katalvlaran/aigsynth/errs"
)

const opRead = "aiger.Read"
const opWrite = "aiger.Write"

// edgeToLiteral converts e into its AIGER literal. For every node but
// the constant, AIGER's sign bit agrees with Edge.Compl directly (odd
// literal = negated). Node 0 is the one exception: AIGER's literal 0
// means constant FALSE and literal 1 means constant TRUE, the opposite
// of this network's own Edge{0, false} = Const1 convention — so the
// sign bit is flipped for node 0 only.
func edgeToLiteral(e aig.Edge) uint32 {
	bit := e.Compl
	if e.Node == 0 {
		bit = !bit
	}
	lit := e.Node * 2
	if bit {
		lit++
	}
	return lit
}

// Write serializes net as an ASCII AIGER file to w. Node ids are used
// directly as AIGER variable indices (no renumbering). AND lines are
// emitted fanins-first, so every AND's two operands are declared before
// the AND itself even where Replace has pointed an older node at a
// newer, higher-id one.
func Write(w io.Writer, net *aig.Network) error {
	pis := net.PIs()
	pos := net.POs()

	var ands []uint32
	var maxVar uint32
	emitted := make(map[uint32]bool)
	var emit func(id uint32)
	emit = func(id uint32) {
		node := net.Node(id)
		if node == nil || node.Kind != aig.KindAnd || emitted[id] {
			return
		}
		emitted[id] = true
		emit(node.Fanin0.Node)
		emit(node.Fanin1.Node)
		ands = append(ands, id)
	}
	for id := uint32(1); id < uint32(net.NumNodes()); id++ {
		node := net.Node(id)
		if node == nil {
			continue
		}
		switch node.Kind {
		case aig.KindAnd:
			emit(id)
			if id > maxVar {
				maxVar = id
			}
		case aig.KindPI:
			if id > maxVar {
				maxVar = id
			}
		}
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "aag %d %d 0 %d %d\n", maxVar, len(pis), len(ands), len(pos)); err != nil {
		return err
	}
	for _, id := range pis {
		if _, err := fmt.Fprintf(bw, "%d\n", id*2); err != nil {
			return err
		}
	}
	for _, id := range ands {
		node := net.Node(id)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", id*2, edgeToLiteral(node.Fanin0), edgeToLiteral(node.Fanin1)); err != nil {
			return err
		}
	}
	for _, id := range pos {
		node := net.Node(id)
		if _, err := fmt.Fprintf(bw, "%d\n", edgeToLiteral(node.Fanin0)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// header holds the five space-separated integers of an "aag" line.
type header struct {
	maxVar, nInputs, nLatches, nAnds, nOutputs int
}

// Read parses an ASCII AIGER file from r into a fresh *aig.Network.
// Lines beyond the required input/AND/output sections (a symbol table
// or a trailing "c" comment block) are never consulted.
func Read(r io.Reader) (*aig.Network, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	hd, err := readHeader(sc)
	if err != nil {
		return nil, err
	}
	if hd.nLatches != 0 {
		return nil, errs.Structural(opRead, fmt.Errorf("aiger: %d latches present, sequential circuits are unsupported", hd.nLatches))
	}

	net := aig.NewNetwork()
	// varPos[v] is the Edge the AIGER variable v's *positive* (even,
	// sign-0) literal resolves to. Var 0 is seeded to Const0 up front so
	// resolve's general formula (pos, pos.Not()) needs no special case
	// for constant references. Every other variable's positive edge is
	// ordinarily Edge{someNodeID, false} — except when an AND line's
	// operands happen to be trivially reducible (e.g. rhs0 == ¬rhs1):
	// Network.And then folds the new gate into an existing, possibly
	// negated, edge instead of allocating a fresh node, so the full Edge
	// (not just a node id) must be recorded to stay exact.
	varPos := map[int]aig.Edge{0: net.Const0()}

	resolve := func(lit int) (aig.Edge, error) {
		v := lit / 2
		pos, ok := varPos[v]
		if !ok {
			return aig.Edge{}, errs.Structural(opRead, fmt.Errorf("aiger: reference to undeclared variable %d", v))
		}
		if lit%2 == 1 {
			return pos.Not(), nil
		}
		return pos, nil
	}

	for i := 0; i < hd.nInputs; i++ {
		lit, err := readInts(sc, 1)
		if err != nil {
			return nil, err
		}
		if lit[0]%2 != 0 {
			return nil, errs.Structural(opRead, fmt.Errorf("aiger: input literal %d is not a positive variable reference", lit[0]))
		}
		edge := net.CreatePI()
		varPos[lit[0]/2] = edge
	}

	for i := 0; i < hd.nAnds; i++ {
		fields, err := readInts(sc, 3)
		if err != nil {
			return nil, err
		}
		lhs, rhs0, rhs1 := fields[0], fields[1], fields[2]
		if lhs%2 != 0 {
			return nil, errs.Structural(opRead, fmt.Errorf("aiger: AND lhs literal %d is not a positive variable reference", lhs))
		}
		e0, err := resolve(rhs0)
		if err != nil {
			return nil, err
		}
		e1, err := resolve(rhs1)
		if err != nil {
			return nil, err
		}
		newEdge, err := net.And(e0, e1)
		if err != nil {
			return nil, errs.Structural(opRead, err)
		}
		varPos[lhs/2] = newEdge
	}

	for i := 0; i < hd.nOutputs; i++ {
		lit, err := readInts(sc, 1)
		if err != nil {
			return nil, err
		}
		edge, err := resolve(lit[0])
		if err != nil {
			return nil, err
		}
		if _, err := net.CreatePO(edge); err != nil {
			return nil, errs.Structural(opRead, err)
		}
	}

	return net, nil
}

func readHeader(sc *bufio.Scanner) (header, error) {
	line, err := nextLine(sc)
	if err != nil {
		return header{}, err
	}
	fields := strings.Fields(line)
	if len(fields) != 6 || fields[0] != "aag" {
		return header{}, errs.Structural(opRead, fmt.Errorf("aiger: malformed header %q", line))
	}
	nums := make([]int, 5)
	for i, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return header{}, errs.Structural(opRead, fmt.Errorf("aiger: malformed header field %q", f))
		}
		nums[i] = n
	}
	return header{maxVar: nums[0], nInputs: nums[1], nLatches: nums[2], nAnds: nums[3], nOutputs: nums[4]}, nil
}

func nextLine(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", errs.Structural(opRead, err)
		}
		return "", errs.Structural(opRead, fmt.Errorf("aiger: unexpected end of input"))
	}
	return strings.TrimSpace(sc.Text()), nil
}

func readInts(sc *bufio.Scanner, n int) ([]int, error) {
	line, err := nextLine(sc)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, errs.Structural(opRead, fmt.Errorf("aiger: expected %d field(s), got %q", n, line))
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errs.Structural(opRead, fmt.Errorf("aiger: malformed integer %q", f))
		}
		out[i] = v
	}
	return out, nil
}
