// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package myers implements the single-word, four-ary bit-parallel Myers
// edit-distance kernel (spec §4.3), ported from the register arithmetic
// of the CUDA reference kernel in original_source/scripts/cuda_edit_distance.py
// (compute_chunk_kernel's per-column PV/MV/HN/HP/X2 recurrence).
package myers

import "github.com/kortschak/nbrgraph/internal/symbol"

// State holds the Myers "plus"/"minus" vectors and running score for one
// query sequence, advanced one candidate-position at a time.
type State struct {
	pv, mv uint64
	score  int
}

// NewState returns the initial state for a query of length l: PV all
// ones, MV zero, score l (spec §4.3).
func NewState(l int) State {
	return State{pv: ^uint64(0), mv: 0, score: l}
}

// Step advances the state by one candidate position whose PEQ word is eq
// (the query's precomputed-equality mask for the candidate's symbol at
// this position), using hbMask = 1<<(l-1) as the "high bit" test (spec
// §4.3: "not W-1"; an implementation that tests bit W-1 for l<W produces
// wrong scores).
func (s *State) Step(eq, hbMask uint64) {
	x := eq | s.mv
	sum := (x & s.pv) + s.pv // unsigned addition, wraparound is defined
	d0 := (sum ^ s.pv) | x
	hn := s.pv & d0
	hp := s.mv | ^(s.pv | d0)
	x2 := (hp << 1) | 1
	mv := x2 & d0
	pv := (hn << 1) | ^(x2 | d0)

	if hp&hbMask != 0 {
		s.score++
	}
	if hn&hbMask != 0 {
		s.score--
	}
	s.pv, s.mv = pv, mv
}

// Score returns the current edit-distance score.
func (s State) Score() int { return s.score }

// HighBitMask returns the mask spec §4.3 requires: bit (l-1), not bit
// W-1, so that sequences shorter than the machine word still compute the
// correct final score.
func HighBitMask(l int) uint64 {
	return uint64(1) << uint(l-1)
}

// Distance computes the edit distance between a query (given by its PEQ
// row) and a candidate sequence of length l, running l word operations
// (spec §4.3).
func Distance(peq symbol.PEQRow, candidate []byte, l int) int {
	st := NewState(l)
	hb := HighBitMask(l)
	for k := 0; k < l; k++ {
		c := candidate[k]
		var eq uint64
		if c < 4 {
			eq = peq[c]
		}
		// An out-of-range candidate symbol (padding) matches nothing;
		// its contribution is a pure insertion/deletion step, which is
		// the correct behavior for padded tile columns (spec §4.4).
		st.Step(eq, hb)
	}
	return st.Score()
}
