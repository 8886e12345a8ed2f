// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine wires the encoder, PEQ builder, batch scheduler, tile
// executor, sparse collector, and adjacency sink into the single
// compute_neighbors entry point spec §6 names as the primary API.
package engine

import (
	"context"
	"fmt"

	"github.com/kortschak/nbrgraph/internal/adjacency"
	"github.com/kortschak/nbrgraph/internal/batch"
	"github.com/kortschak/nbrgraph/internal/symbol"
)

// Result mirrors batch.Result: explicit status values in place of
// exceptions for non-fatal control flow (spec §7).
type Result struct {
	EdgesEmitted int64
	Overflowed   bool
	Canceled     bool
}

// ComputeNeighbors computes, for strs (equal-length strings over the
// four letters sm maps to {0,1,2,3}), the set of unordered pairs whose
// edit distance is strictly less than threshold, returning the N-entry
// adjacency sink (spec §6's compute_neighbors).
//
// No partial output is returned on a validation error; cfg's tile size
// and memory budget govern how the upper-triangular comparison space is
// batched and tiled (spec §4.5).
func ComputeNeighbors(ctx context.Context, strs []string, sm symbol.SymbolMap, threshold int, cfg batch.Config) (*adjacency.Sink, Result, error) {
	if threshold <= 0 {
		return nil, Result{}, fmt.Errorf("engine: threshold must be positive, got %d: %w", threshold, ErrBadInput)
	}

	seqs := make([]symbol.Sequence, len(strs))
	for i, s := range strs {
		seqs[i] = symbol.Sequence(s)
	}

	m, err := symbol.Encode(seqs, sm)
	if err != nil {
		return nil, Result{}, fmt.Errorf("engine: %w: %w", ErrBadInput, err)
	}

	sink, res, err := batch.Run(ctx, m, threshold, cfg)
	if err != nil {
		return nil, Result{}, err
	}
	return sink, Result{EdgesEmitted: res.EdgesEmitted, Overflowed: res.Overflowed, Canceled: res.Canceled}, nil
}
