// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/kortschak/nbrgraph/internal/batch"
	"github.com/kortschak/nbrgraph/internal/refdist"
	"github.com/kortschak/nbrgraph/internal/symbol"
	"github.com/stretchr/testify/require"
)

func encodeAll(t *testing.T, strs []string) *symbol.Matrix {
	t.Helper()
	sm, err := symbol.NewSymbolMap([]byte("0123"))
	require.NoError(t, err)
	seqs := make([]symbol.Sequence, len(strs))
	for i, s := range strs {
		seqs[i] = symbol.Sequence(s)
	}
	m, err := symbol.Encode(seqs, sm)
	require.NoError(t, err)
	return m
}

func smallCfg() batch.Config {
	cfg := batch.DefaultConfig()
	cfg.TileWidth = 4
	cfg.MinBatch = 1
	cfg.MemBudgetBytes = 1 << 20
	cfg.ReserveBytes = 0
	return cfg
}

func TestRunEmptyInput(t *testing.T) {
	m := encodeAll(t, nil)
	sink, res, err := batch.Run(context.Background(), m, 3, smallCfg())
	require.NoError(t, err)
	require.Equal(t, 0, sink.Len())
	require.Equal(t, int64(0), res.EdgesEmitted)
}

func TestRunSingleSequence(t *testing.T) {
	m := encodeAll(t, []string{"012"})
	sink, _, err := batch.Run(context.Background(), m, 3, smallCfg())
	require.NoError(t, err)
	require.Empty(t, sink.Neighbors(0))
}

func TestRunThresholdBoundary(t *testing.T) {
	m := encodeAll(t, []string{"0123", "3210"})

	sink, _, err := batch.Run(context.Background(), m, 4, smallCfg())
	require.NoError(t, err)
	require.Empty(t, sink.Neighbors(0)) // distance 4, not < 4

	sink, _, err = batch.Run(context.Background(), m, 5, smallCfg())
	require.NoError(t, err)
	require.Equal(t, []int32{1}, sink.Neighbors(0))
}

func TestRunThresholdGreaterThanLengthEmitsEverything(t *testing.T) {
	strs := []string{"0000", "1111", "2222", "3333"}
	m := encodeAll(t, strs)
	sink, _, err := batch.Run(context.Background(), m, 5, smallCfg())
	require.NoError(t, err)
	for i := 0; i < len(strs); i++ {
		require.Len(t, sink.Neighbors(i), len(strs)-1)
	}
}

func TestRunMatchesReferenceOracleRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const n, l = 40, 11
	alphabet := []byte("0123")
	strs := make([]string, n)
	raw := make([][]byte, n)
	for i := range strs {
		b := make([]byte, l)
		for k := range b {
			b[k] = alphabet[rng.Intn(4)]
		}
		strs[i] = string(b)
		raw[i] = b
	}
	m := encodeAll(t, strs)

	for _, threshold := range []int{1, 3, 6} {
		sink, _, err := batch.Run(context.Background(), m, threshold, smallCfg())
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				want := refdist.Distance(raw[i], raw[j]) < threshold
				got := contains(sink.Neighbors(i), int32(j))
				require.Equal(t, want, got, "i=%d j=%d threshold=%d", i, j, threshold)
			}
		}
	}
}

func TestRunDeterministicAcrossBatchSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const n, l = 30, 9
	alphabet := []byte("0123")
	strs := make([]string, n)
	for i := range strs {
		b := make([]byte, l)
		for k := range b {
			b[k] = alphabet[rng.Intn(4)]
		}
		strs[i] = string(b)
	}
	m := encodeAll(t, strs)

	single := smallCfg()
	single.MemBudgetBytes = 1 << 30 // one giant batch
	single.ReserveBytes = 0

	many := smallCfg()
	many.MinBatch = 4
	many.MemBudgetBytes = 4 * (32 + 9) // 4 sequences per batch: many small batches
	many.ReserveBytes = 0

	sinkA, _, err := batch.Run(context.Background(), m, 4, single)
	require.NoError(t, err)
	sinkB, _, err := batch.Run(context.Background(), m, 4, many)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		require.Equal(t, sinkA.Neighbors(i), sinkB.Neighbors(i), "row %d", i)
	}
}

func TestRunCancellationReturnsPartialSubset(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const n, l = 60, 11
	alphabet := []byte("0123")
	strs := make([]string, n)
	raw := make([][]byte, n)
	for i := range strs {
		b := make([]byte, l)
		for k := range b {
			b[k] = alphabet[rng.Intn(4)]
		}
		strs[i] = string(b)
		raw[i] = b
	}
	m := encodeAll(t, strs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before the first batch boundary is checked

	cfg := smallCfg()
	cfg.MinBatch = 4
	cfg.MemBudgetBytes = 4096
	cfg.ReserveBytes = 0

	sink, res, err := batch.Run(ctx, m, 5, cfg)
	require.NoError(t, err)
	require.True(t, res.Canceled)

	// Every edge that *was* produced must still be a true sub-threshold
	// pair (soundness holds even for a canceled, partial run).
	for i := 0; i < n; i++ {
		for _, j := range sink.Neighbors(i) {
			if int(j) > i {
				require.Less(t, refdist.Distance(raw[i], raw[j]), 5)
			}
		}
	}
}

func TestRunRetryOnOverflowHalvesTile(t *testing.T) {
	strs := []string{"0000", "1111", "2222", "3333", "0001", "1110"}
	m := encodeAll(t, strs)

	cfg := smallCfg()
	cfg.TileWidth = 8 // one tile covers every column, so overflow triggers a retry
	cfg.EdgeBufferCapacity = 1
	cfg.RetryOnOverflow = true

	sink, res, err := batch.Run(context.Background(), m, 5, cfg)
	require.NoError(t, err)
	require.True(t, res.Overflowed, "capacity 1 with several sub-threshold pairs must overflow at least one half")
	require.NotZero(t, res.EdgesEmitted)
	_ = sink
}

func contains(xs []int32, v int32) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
