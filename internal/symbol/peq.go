// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

// Range is a half-open [Start, End) span of sequence indices, used to
// select the row-batch or col-batch a PEQ table or sequence block covers.
type Range struct {
	Start, End int
}

// Len reports the number of indices the range covers.
func (r Range) Len() int { return r.End - r.Start }

// BuildPEQ computes the PEQ table for the sequences in rows (spec §4.2):
// bit k of PEQTable[s-rows.Start][c] is 1 iff symbol c occurs at position
// k of sequence s. Construction is deterministic and independent of the
// order positions are visited in.
func BuildPEQ(m *Matrix, rows Range) PEQTable {
	table := make(PEQTable, rows.Len())
	for k := 0; k < m.L; k++ {
		bit := uint64(1) << uint(k)
		for i, s := 0, rows.Start; s < rows.End; i, s = i+1, s+1 {
			c := m.At(k, s)
			if c > 3 {
				continue // padding never contributes to a real row's PEQ
			}
			table[i][c] |= bit
		}
	}
	return table
}
