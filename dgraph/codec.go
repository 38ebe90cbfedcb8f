package dgraph

import (
	"encoding/binary"
	"io"
)

// Encode serializes g in a flat fixed-width layout: NLeaves, node count,
// Root, then each node's Kind/Fanin0/Fanin1/ExternalEdge in arena order.
// Used by package library to embed a precomputed factored-form blueprint
// inside its forest blob (spec §3's "each library node has a
// precomputed DGraph attached").
func Encode(w io.Writer, g *Graph) error {
	if err := writeUint32(w, uint32(g.NLeaves)); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(len(g.Nodes))); err != nil {
		return err
	}
	if err := writeEdge(w, g.Root); err != nil {
		return err
	}
	for _, n := range g.Nodes {
		if err := writeUint32(w, uint32(n.Kind)); err != nil {
			return err
		}
		if err := writeEdge(w, n.Fanin0); err != nil {
			return err
		}
		if err := writeEdge(w, n.Fanin1); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(n.ExternalEdge)); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a graph written by Encode.
func Decode(r io.Reader) (*Graph, error) {
	nLeaves, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	count, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	root, err := readEdge(r)
	if err != nil {
		return nil, err
	}
	g := &Graph{NLeaves: int(nLeaves), Root: root, Nodes: make([]Node, count)}
	for i := range g.Nodes {
		kind, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		f0, err := readEdge(r)
		if err != nil {
			return nil, err
		}
		f1, err := readEdge(r)
		if err != nil {
			return nil, err
		}
		ext, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		g.Nodes[i] = Node{Kind: Kind(kind), Fanin0: f0, Fanin1: f1, ExternalEdge: int(int32(ext))}
	}
	return g, nil
}

func writeUint32(w io.Writer, v uint32) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func readUint32(r io.Reader) (uint32, error) {
	var v uint32
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

func writeEdge(w io.Writer, e Edge) error {
	if err := writeUint32(w, e.Node); err != nil {
		return err
	}
	var compl uint8
	if e.Compl {
		compl = 1
	}
	return binary.Write(w, binary.LittleEndian, compl)
}

func readEdge(r io.Reader) (Edge, error) {
	node, err := readUint32(r)
	if err != nil {
		return Edge{}, err
	}
	var compl uint8
	if err := binary.Read(r, binary.LittleEndian, &compl); err != nil {
		return Edge{}, err
	}
	return Edge{Node: node, Compl: compl == 1}, nil
}
