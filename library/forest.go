// Package library holds the precomputed rewriter forest: one small
// factored-form subgraph per NPN class, looked up by the rewriting
// engine (package rewrite) once it has resolved a cut's truth table to
// a class id via package npn (spec §3's "rewriter forest / library").
package library

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/katalvlaran/aigsynth/dgraph"
	"github.com/katalvlaran/aigsynth/errs"
)

// RwrNode is one precomputed library entry: a 4-input subgraph
// implementing Truth (the class's canonical truth table), with its
// factored-form blueprint in Graph and the cost metrics gain evaluation
// reads directly instead of recomputing (spec §3: "id, truth[16],
// level, volume, is-XOR flag... per-class next link").
//
// The spec describes library nodes of a class as a singly linked list
// threaded through a per-node "next" field; this generalizes that to an
// explicit slice per class (Forest.ClassHeads), the same substitution
// already made for aig.Network's structural-hash chains (spec §9's
// "explicit slices instead of embedded next fields" advisory) — there
// is no RwrNode.Next field because Forest.ClassHeads already holds the
// full membership list.
type RwrNode struct {
	Truth  uint16
	Level  uint32
	Volume uint32
	IsXor  bool
	Graph  *dgraph.Graph
}

// Forest is the full rewriter library: every RwrNode in arena order,
// and the NPN-class-id-to-member-indices index gain evaluation walks
// (spec §4.F: "for every subgraph in vClasses[classId]").
type Forest struct {
	Nodes      []RwrNode
	ClassHeads map[uint16][]uint32
}

// NewForest returns an empty forest; callers populate it via Add or
// LoadForest.
func NewForest() *Forest {
	return &Forest{ClassHeads: make(map[uint16][]uint32)}
}

// Add appends node to the forest under classID, returning its index.
func (f *Forest) Add(classID uint16, node RwrNode) uint32 {
	id := uint32(len(f.Nodes))
	f.Nodes = append(f.Nodes, node)
	f.ClassHeads[classID] = append(f.ClassHeads[classID], id)
	return id
}

// Members returns the library nodes registered under classID, in the
// order cutEvaluate should try them (spec §4.F step 2's "for every
// subgraph in vClasses[classId]"). The returned slice is a fresh copy,
// but each entry's Graph is shared with the forest and must not be
// mutated by callers.
func (f *Forest) Members(classID uint16) []RwrNode {
	ids := f.ClassHeads[classID]
	if len(ids) == 0 {
		return nil
	}
	out := make([]RwrNode, len(ids))
	for i, id := range ids {
		out[i] = f.Nodes[id]
	}
	return out
}

// LoadForest reads a Forest blob: a little-endian node count, then for
// each node its Truth/Level/Volume/IsXor/class-id header followed by
// its dgraph.Encode-serialized blueprint (spec §3: "loaded once from a
// binary blob at startup").
func LoadForest(r io.Reader) (*Forest, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, errs.Config("library.LoadForest", err)
	}

	f := NewForest()
	for i := uint32(0); i < count; i++ {
		var truth uint16
		var level, volume uint32
		var isXorByte uint8
		var classID uint16
		for _, field := range []interface{}{&truth, &level, &volume, &isXorByte, &classID} {
			if err := binary.Read(br, binary.LittleEndian, field); err != nil {
				return nil, errs.Config("library.LoadForest", err)
			}
		}
		graph, err := dgraph.Decode(br)
		if err != nil {
			return nil, errs.Config("library.LoadForest", err)
		}
		f.Add(classID, RwrNode{
			Truth:  truth,
			Level:  level,
			Volume: volume,
			IsXor:  isXorByte != 0,
			Graph:  graph,
		})
	}
	return f, nil
}

// WriteForest serializes f in the layout LoadForest expects, with
// classID resolved per node by scanning ClassHeads (the inverse of the
// index Add builds forward).
func WriteForest(w io.Writer, f *Forest) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(f.Nodes))); err != nil {
		return errs.Config("library.WriteForest", err)
	}

	classOf := make(map[uint32]uint16, len(f.Nodes))
	for cls, ids := range f.ClassHeads {
		for _, id := range ids {
			classOf[id] = cls
		}
	}

	for i, n := range f.Nodes {
		var isXorByte uint8
		if n.IsXor {
			isXorByte = 1
		}
		classID := classOf[uint32(i)]
		for _, field := range []interface{}{n.Truth, n.Level, n.Volume, isXorByte, classID} {
			if err := binary.Write(bw, binary.LittleEndian, field); err != nil {
				return errs.Config("library.WriteForest", err)
			}
		}
		if err := dgraph.Encode(bw, n.Graph); err != nil {
			return errs.Config("library.WriteForest", err)
		}
	}
	return bw.Flush()
}
