// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import "github.com/kortschak/nbrgraph/internal/collector"

// Config holds every tunable of the batch scheduler and the subsystems
// it drives. There is no package-level or global state anywhere in this
// engine (spec §9): every run takes its Config explicitly.
type Config struct {
	// TileWidth is the native column width of one kernel launch,
	// spec §4.5's "kernel's native column width (e.g., 64)". Batch
	// sizes are rounded down to a multiple of TileWidth.
	TileWidth int

	// Streams is the number of concurrent double-buffered pipelines
	// (spec §4.5, §5). Must be >= 1; the reference default is 2.
	Streams int

	// EdgeBufferCapacity is each stream's fixed edge-buffer capacity
	// (spec §4.6). Reference default is collector.DefaultCapacity.
	EdgeBufferCapacity int

	// MemBudgetBytes is the caller's memory budget for one row-batch's
	// resident PEQ and sequence data (spec §4.5).
	MemBudgetBytes int64

	// ReserveBytes is subtracted from MemBudgetBytes before computing
	// the batch size, leaving headroom for fixed overhead.
	ReserveBytes int64

	// MinBatch is the smallest acceptable batch size; a nonzero computed
	// batch size below both this and N is ErrOOM (see ComputeBatchSize).
	MinBatch int

	// RetryOnOverflow, when true, reruns an overflowed tile once with
	// half its column width before giving up and recording the
	// overflow (spec §9 "leaves retry optional").
	RetryOnOverflow bool
}

// DefaultConfig returns the reference defaults spec §4.5–§4.6 document:
// tile width 64, two streams, the 5e6-pair buffer capacity, a 1GiB
// memory budget with a 64MiB reserve, and a minimum batch of one tile
// width.
func DefaultConfig() Config {
	return Config{
		TileWidth:          64,
		Streams:            2,
		EdgeBufferCapacity: collector.DefaultCapacity,
		MemBudgetBytes:     1 << 30,
		ReserveBytes:       64 << 20,
		MinBatch:           64,
		RetryOnOverflow:    false,
	}
}
