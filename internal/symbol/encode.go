// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import "fmt"

// Encode packs seqs into a contiguous column-major L×N matrix of codes
// in {0,1,2,3} (spec §4.1). Every sequence must have the same length L,
// and L must not exceed WordWidth. All symbols must be mapped by sm. No
// partial *Matrix is returned on failure.
func Encode(seqs []Sequence, sm SymbolMap) (*Matrix, error) {
	n := len(seqs)
	if n == 0 {
		return &Matrix{L: 0, N: 0}, nil
	}

	l := len(seqs[0])
	if l > WordWidth {
		return nil, fmt.Errorf("symbol: length %d: %w", l, ErrTooLong)
	}

	for s, seq := range seqs {
		if len(seq) != l {
			return nil, fmt.Errorf("symbol: sequence %d has length %d, want %d: %w", s, len(seq), l, ErrLengthMismatch)
		}
	}

	m := NewMatrix(l, n)
	for s, seq := range seqs {
		for k, c := range seq {
			code := sm.Code(c)
			if code < 0 {
				return nil, fmt.Errorf("symbol: sequence %d position %d byte %q: %w", s, k, c, ErrSymbolOutOfRange)
			}
			m.Set(k, s, byte(code))
		}
	}
	return m, nil
}
