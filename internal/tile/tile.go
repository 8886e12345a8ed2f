// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tile implements the tile executor (spec §4.4): one kernel
// launch over a (row-batch × col-batch) rectangle, grouping four columns
// per worker to amortize loading a row's four PEQ words, exactly as the
// CUDA reference groups four columns per thread
// (original_source/scripts/cuda_edit_distance.py, compute_chunk_kernel).
// The GPU thread-block grid becomes a bounded goroutine pool; the
// per-unit computation and edge-emission gate are otherwise unchanged.
package tile

import (
	"runtime"
	"sync"

	"github.com/kortschak/nbrgraph/internal/collector"
	"github.com/kortschak/nbrgraph/internal/myers"
	"github.com/kortschak/nbrgraph/internal/symbol"
)

// columnGroup is the CUDA reference's amortization factor: one worker
// loads a row's four PEQ words once and scores four candidate columns
// against them.
const columnGroup = 4

// Coord is a tile's row/column origin, measured in global sequence
// indices. Per spec §3, r0 ≤ c0 is required (upper triangle only).
type Coord struct {
	R0, C0 int
}

// NewCoord builds a tile origin, panicking if r0 > c0. A tile outside the
// upper triangle is a scheduler bug, not a caller-input error (SPEC_FULL.md's
// error handling section), so this is a programmer-error panic, not an
// ErrXxx sentinel.
func NewCoord(r0, c0 int) Coord {
	if r0 > c0 {
		panic("tile: invalid coordinate: r0 > c0")
	}
	return Coord{R0: r0, C0: c0}
}

// Result carries what one tile produced: how many edges it emitted and
// whether its buffer overflowed (spec §7 edge_buffer_overflow is
// recovered locally here, not propagated as a call error).
type Result struct {
	Emitted    int
	Overflowed bool
}

// Run scores every row in rowPEQ (global indices [coord.R0, coord.R0+len(rowPEQ)))
// against every column in colMatrix (global indices [coord.C0, coord.C0+colMatrix.N)),
// appending (row, col) to buf whenever score < threshold and col > row and
// col < n (spec §4.4's emission gate; n is the true sequence count, since
// colMatrix may be padded past it at the batch's right edge).
//
// No ordering is required or provided between workers (spec §4.4
// "Ordering guarantee"); buf.Append is safe for concurrent use.
func Run(rowPEQ symbol.PEQTable, colMatrix *symbol.Matrix, coord Coord, n, threshold int, buf *collector.EdgeBuffer) Result {
	buf.Reset()

	workers := runtime.GOMAXPROCS(0)
	if workers > len(rowPEQ) {
		workers = len(rowPEQ)
	}
	if workers < 1 {
		workers = 1
	}

	rows := make(chan int, len(rowPEQ))
	for i := range rowPEQ {
		rows <- i
	}
	close(rows)

	hb := myers.HighBitMask(colMatrix.L)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range rows {
				runRow(rowPEQ[i], coord.R0+i, colMatrix, coord.C0, n, threshold, hb, buf)
			}
		}()
	}
	wg.Wait()

	edges, overflowed := buf.Drain()
	return Result{Emitted: len(edges), Overflowed: overflowed}
}

// runRow is one worker unit: one row against groups of columnGroup
// columns at a time (spec §4.4).
func runRow(peq symbol.PEQRow, globalRow int, colMatrix *symbol.Matrix, colOffset, n, threshold int, hb uint64, buf *collector.EdgeBuffer) {
	l := colMatrix.L
	for base := 0; base < colMatrix.N; base += columnGroup {
		end := base + columnGroup
		if end > colMatrix.N {
			end = colMatrix.N
		}
		for localCol := base; localCol < end; localCol++ {
			globalCol := colOffset + localCol
			if globalCol <= globalRow || globalCol >= n {
				continue // strictly upper-triangular and in-range only
			}
			score := scoreColumn(peq, colMatrix, localCol, l, hb)
			if score < threshold {
				buf.Append(int32(globalRow), int32(globalCol))
			}
		}
	}
}

// scoreColumn runs the Myers kernel for one (row, col) pair, reading the
// candidate's symbols straight out of the column-major matrix.
func scoreColumn(peq symbol.PEQRow, colMatrix *symbol.Matrix, localCol, l int, hb uint64) int {
	st := myers.NewState(l)
	for k := 0; k < l; k++ {
		c := colMatrix.At(k, localCol)
		var eq uint64
		if c < 4 {
			eq = peq[c]
		}
		st.Step(eq, hb)
	}
	return st.Score()
}
