// Package npn provides NPN-class canonicalization of 4-input Boolean
// functions: mapping each of the 65536 possible 4-input truth tables to
// its canonical representative, the permutation and input/output
// polarity that reaches it, and a class id shared by every truth table
// in the same equivalence class (spec §3/§6 "NPN class").
package npn

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/katalvlaran/aigsynth/errs"
)

// blobSize is the byte size of the four fixed-width arrays, laid out in
// Canons, Phases, Perms, Classes order (spec §6: "64 KiB × 4 = 256 KiB").
const blobSize = 65536*2 + 65536*1 + 65536*1 + 65536*2

// Tables holds the four lookup arrays a 16-bit truth table is indexed
// into to resolve its NPN class (spec §3's npn.Tables, §6's puCanons/
// pPhases/pPerms/pMap). Phases packs bit 4 as the output-complement flag
// and bits 0..3 as the per-input complement mask, matching spec's
// documented bit layout; Perms indexes into the 24 permutations of 4
// inputs (see perms4 in build.go); Classes is the class id shared by
// every truth table canonicalizing to the same representative.
type Tables struct {
	Canons  [65536]uint16
	Phases  [65536]uint8
	Perms   [65536]uint8
	Classes [65536]uint16
}

// NumClasses returns one past the largest class id appearing in t,
// i.e. the number of distinct NPN classes over 4-input functions.
func (t *Tables) NumClasses() int {
	max := 0
	for _, c := range t.Classes {
		if int(c) > max {
			max = int(c)
		}
	}
	return max + 1
}

// LoadTables reads a Tables blob in the fixed Canons/Phases/Perms/
// Classes layout, little-endian, as produced by WriteTables. A host
// that ships a precomputed blob rather than calling Build uses this
// entry point (spec §6: "these tables are static input").
func LoadTables(r io.Reader) (*Tables, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	t := &Tables{}
	if err := binary.Read(br, binary.LittleEndian, &t.Canons); err != nil {
		return nil, errs.Config("npn.LoadTables", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &t.Phases); err != nil {
		return nil, errs.Config("npn.LoadTables", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &t.Perms); err != nil {
		return nil, errs.Config("npn.LoadTables", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &t.Classes); err != nil {
		return nil, errs.Config("npn.LoadTables", err)
	}
	return t, nil
}

// WriteTables serializes t in the layout LoadTables expects.
func WriteTables(w io.Writer, t *Tables) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	for _, v := range []interface{}{t.Canons, t.Phases, t.Perms, t.Classes} {
		if err := binary.Write(bw, binary.LittleEndian, v); err != nil {
			return errs.Config("npn.WriteTables", err)
		}
	}
	return bw.Flush()
}
