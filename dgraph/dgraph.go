// Package dgraph implements the decomposition graph (spec §3/§4.D): a
// small factored-form DAG that serves as a replacement blueprint, built
// by ISOP+algebraic factoring (package sop) or by the rewriter's
// precomputed library forest (package library), and later spliced into
// an AIG by package splice. A Graph is never part of the AIG itself —
// it is owned by the call that produced it and discarded after
// commit/reject.
package dgraph

// Kind distinguishes a DGraph node's role.
type Kind uint8

const (
	KindConst0 Kind = iota
	KindConst1
	KindLeaf // bound to an external AIG edge at splice time
	KindAnd
	KindOr // stored internally as an AND with both child edges complemented
)

func (k Kind) String() string {
	switch k {
	case KindConst0:
		return "const0"
	case KindConst1:
		return "const1"
	case KindLeaf:
		return "leaf"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	default:
		return "unknown"
	}
}

// Edge references a Graph node by index, with a complement bit.
type Edge struct {
	Node  uint32
	Compl bool
}

// Not returns the logical negation of e.
func (e Edge) Not() Edge { return Edge{Node: e.Node, Compl: !e.Compl} }

// Node is one vertex of the decomposition graph. Leaves occupy indices
// [0, nLeaves) in Graph.Nodes; internal AND/OR nodes are appended after.
type Node struct {
	Kind         Kind
	Fanin0       Edge
	Fanin1       Edge
	ExternalEdge int // index into the splice-time leaf binding, valid only for KindLeaf
}

// Graph is the decomposition graph's own small arena, entirely
// independent of aig.Network.
type Graph struct {
	Nodes   []Node
	NLeaves int
	Root    Edge
}

// NewGraph allocates an empty graph; callers populate it via
// CreateLeaves/AddAnd/AddOr/SetRoot.
func NewGraph() *Graph {
	return &Graph{}
}

// Const0 and Const1 return edges to permanent constant nodes, lazily
// appended the first time they are requested.
func (g *Graph) Const0() Edge { return g.constNode(KindConst0) }
func (g *Graph) Const1() Edge { return g.constNode(KindConst1) }

func (g *Graph) constNode(kind Kind) Edge {
	for i, n := range g.Nodes {
		if n.Kind == kind {
			return Edge{Node: uint32(i)}
		}
	}
	id := uint32(len(g.Nodes))
	g.Nodes = append(g.Nodes, Node{Kind: kind})
	return Edge{Node: id}
}

// CreateLeaves appends n leaf nodes to an otherwise-empty graph and
// returns their edges in order. Must be called before any AddAnd/AddOr.
func (g *Graph) CreateLeaves(n int) []Edge {
	edges := make([]Edge, n)
	for i := 0; i < n; i++ {
		id := uint32(len(g.Nodes))
		g.Nodes = append(g.Nodes, Node{Kind: KindLeaf, ExternalEdge: i})
		edges[i] = Edge{Node: id}
		g.NLeaves++
	}
	return edges
}

// AddAnd appends a new AND node with fanins e0, e1 and returns its edge.
func (g *Graph) AddAnd(e0, e1 Edge) Edge {
	id := uint32(len(g.Nodes))
	g.Nodes = append(g.Nodes, Node{Kind: KindAnd, Fanin0: e0, Fanin1: e1})
	return Edge{Node: id}
}

// AddOr appends an OR node, stored internally as an AND of the two
// complemented fanins (De Morgan), with Kind tagged KindOr so consumers
// can still distinguish it for cost/volume accounting.
func (g *Graph) AddOr(e0, e1 Edge) Edge {
	id := uint32(len(g.Nodes))
	g.Nodes = append(g.Nodes, Node{Kind: KindOr, Fanin0: e0.Not(), Fanin1: e1.Not()})
	return Edge{Node: id}
}

// SetRoot designates e as the graph's output edge.
func (g *Graph) SetRoot(e Edge) { g.Root = e }

// Complement flips the graph's root complement bit, representing ¬Root
// without touching any internal node.
func (g *Graph) Complement() { g.Root = g.Root.Not() }

// NInternal returns the number of non-leaf nodes (AND/OR/const), the
// quantity gain evaluation compares against an MFFC's saved-node count.
func (g *Graph) NInternal() int {
	count := 0
	for _, n := range g.Nodes {
		if n.Kind != KindLeaf {
			count++
		}
	}
	return count
}
