// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

// WordWidth is the machine word width W used throughout the engine. The
// Myers kernel operates on uint64 words, so sequences longer than
// WordWidth positions are rejected at encode time (spec §9: "an
// implementation may stub this path as bad_input").
const WordWidth = 64

// Pad is the sentinel symbol written into out-of-range matrix columns
// (spec §4.4 "Padding policy"). Any value outside 0..3 works; the
// original CUDA reference uses 99, kept here for direct traceability.
const Pad byte = 99

// Sequence is one caller string, already validated as length L over
// {0,1,2,3} (or still in SymbolMap's letter alphabet before Encode).
type Sequence []byte

// Matrix is the column-major L×N byte matrix produced by Encode: entry
// at [k*N+s] is the symbol at position k of sequence s.
type Matrix struct {
	L, N int
	data []byte
}

// NewMatrix allocates an L×N column-major matrix, every entry
// initialized to Pad.
func NewMatrix(l, n int) *Matrix {
	m := &Matrix{L: l, N: n, data: make([]byte, l*n)}
	for i := range m.data {
		m.data[i] = Pad
	}
	return m
}

// At returns the symbol at position k of sequence s.
func (m *Matrix) At(k, s int) byte {
	return m.data[k*m.N+s]
}

// Set stores the symbol at position k of sequence s.
func (m *Matrix) Set(k, s int, v byte) {
	m.data[k*m.N+s] = v
}

// Column returns the L-length slice of symbols for sequence s, one read
// per position (column-major storage means this is not contiguous; used
// only off the hot path, e.g. in tests).
func (m *Matrix) Column(s int) []byte {
	out := make([]byte, m.L)
	for k := 0; k < m.L; k++ {
		out[k] = m.At(k, s)
	}
	return out
}

// PEQRow holds the four precomputed-equality words for one sequence,
// one per alphabet symbol (spec §4.2).
type PEQRow [4]uint64

// PEQTable is an M×4 array of PEQRow, one per sequence in a row-batch.
type PEQTable []PEQRow
