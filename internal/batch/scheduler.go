// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch implements the outer two-level batch scheduler (spec
// §4.5): row-batches and upper-triangular col-batches sized to a memory
// budget, each decomposed into tile-granularity kernel launches fed
// through a small pool of double-buffered streams (spec §5, §9's
// "thread pool of size S where each worker owns one pair of staging
// buffers").
package batch

import (
	"context"
	"sync"

	"github.com/kortschak/nbrgraph/internal/adjacency"
	"github.com/kortschak/nbrgraph/internal/collector"
	"github.com/kortschak/nbrgraph/internal/symbol"
	"github.com/kortschak/nbrgraph/internal/tile"
)

// Result reports what a Run produced, using explicit status values
// rather than exceptions for non-fatal control flow (spec §7).
type Result struct {
	EdgesEmitted int64
	Overflowed   bool
	Canceled     bool
}

// job is one tile-granularity kernel launch: a row-batch's PEQ table
// against a column slice of a col-batch.
type job struct {
	rowPEQ symbol.PEQTable
	colMat *symbol.Matrix
	coord  tile.Coord
}

type drainMsg struct {
	edges      []collector.Edge
	overflowed bool
}

// Run drives the full scheduler: for every row-batch it builds that
// batch's PEQ table once, then for every upper-triangular col-batch it
// stages the sequence block once and reuses it across every tile-width
// slice within that col-batch (spec §4.5 "reuse the already-uploaded
// sequence block"). ctx is checked at every row-batch boundary; a
// canceled context finishes in-flight tiles and returns the partial,
// correct-for-the-completed-subset adjacency (spec §5 "Cancellation").
func Run(ctx context.Context, m *symbol.Matrix, threshold int, cfg Config) (*adjacency.Sink, Result, error) {
	n := m.N
	sink := adjacency.NewSink(n)
	if n == 0 {
		return sink, Result{}, nil
	}

	b, err := ComputeBatchSize(cfg.MemBudgetBytes, cfg.ReserveBytes, m.L, cfg.TileWidth, cfg.MinBatch, n)
	if err != nil {
		return nil, Result{}, err
	}

	streams := cfg.Streams
	if streams < 1 {
		streams = 1
	}

	jobs := make(chan job, streams*2)
	results := make(chan drainMsg, streams*2)

	var workers sync.WaitGroup
	workers.Add(streams)
	for s := 0; s < streams; s++ {
		go func() {
			defer workers.Done()
			buf := collector.NewEdgeBuffer(cfg.EdgeBufferCapacity)
			for j := range jobs {
				runJob(j, n, threshold, buf, cfg.RetryOnOverflow, results)
			}
		}()
	}

	var drained sync.WaitGroup
	drained.Add(1)
	var total int64
	var overflowed bool
	go func() {
		defer drained.Done()
		for msg := range results {
			for _, e := range msg.edges {
				sink.Insert(e.Row, e.Col)
			}
			total += int64(len(msg.edges))
			if msg.overflowed {
				overflowed = true
			}
		}
	}()

	canceled := produceJobs(ctx, m, n, b, cfg.TileWidth, jobs)

	workers.Wait()
	close(results)
	drained.Wait()

	return sink, Result{EdgesEmitted: total, Overflowed: overflowed, Canceled: canceled}, nil
}

// runJob executes one tile, retrying once at half column width if the
// buffer overflowed and cfg.RetryOnOverflow is set (spec §9's optional
// retry path): the tile's columns are split into two halves, each run
// and drained on its own, so each half's edges may fit where the full
// tile's did not. The retry result
// is reported regardless of whether it still overflows; there is no
// second retry.
func runJob(j job, n, threshold int, buf *collector.EdgeBuffer, retry bool, results chan<- drainMsg) {
	res := tile.Run(j.rowPEQ, j.colMat, j.coord, n, threshold, buf)
	edges, overflowed := buf.Drain()
	overflowed = overflowed || res.Overflowed

	if !overflowed || !retry || j.colMat.N < 2 {
		cp := make([]collector.Edge, len(edges))
		copy(cp, edges)
		results <- drainMsg{edges: cp, overflowed: overflowed}
		return
	}

	mid := j.colMat.N / 2
	halves := []job{
		{rowPEQ: j.rowPEQ, colMat: j.colMat.Slice(0, mid), coord: j.coord},
		{rowPEQ: j.rowPEQ, colMat: j.colMat.Slice(mid, j.colMat.N), coord: tile.NewCoord(j.coord.R0, j.coord.C0+mid)},
	}
	for _, h := range halves {
		hres := tile.Run(h.rowPEQ, h.colMat, h.coord, n, threshold, buf)
		hedges, hoverflowed := buf.Drain()
		cp := make([]collector.Edge, len(hedges))
		copy(cp, hedges)
		results <- drainMsg{edges: cp, overflowed: hoverflowed || hres.Overflowed}
	}
}

// produceJobs walks the upper-triangular (row-batch × col-batch) space
// and, within each, every tile-width column slice (spec §4.5's "Tile
// loop"), sending one job per slice. It returns true if ctx was
// canceled before every batch was issued.
func produceJobs(ctx context.Context, m *symbol.Matrix, n, b, tileWidth int, jobs chan<- job) bool {
	defer close(jobs)

	for rb := 0; rb < n; rb += b {
		if ctx.Err() != nil {
			return true
		}
		rowEnd := rb + b
		if rowEnd > n {
			rowEnd = n
		}
		rowPEQ := symbol.BuildPEQ(m, symbol.Range{Start: rb, End: rowEnd})

		for cb := rb; cb < n; cb += b {
			colEnd := cb + b
			if colEnd > n {
				colEnd = n
			}
			colBatch := m.Slice(cb, colEnd)

			for ts := 0; ts < colBatch.N; ts += tileWidth {
				te := ts + tileWidth
				if te > colBatch.N {
					te = colBatch.N
				}
				jobs <- job{
					rowPEQ: rowPEQ,
					colMat: colBatch.Slice(ts, te),
					coord:  tile.NewCoord(rb, cb+ts),
				}
			}
		}
	}
	return false
}
