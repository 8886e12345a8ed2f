// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tile_test

import (
	"testing"

	"github.com/kortschak/nbrgraph/internal/collector"
	"github.com/kortschak/nbrgraph/internal/symbol"
	"github.com/kortschak/nbrgraph/internal/tile"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, strs ...string) *symbol.Matrix {
	t.Helper()
	sm, err := symbol.NewSymbolMap([]byte("ACGT"))
	require.NoError(t, err)
	seqs := make([]symbol.Sequence, len(strs))
	for i, s := range strs {
		seqs[i] = symbol.Sequence(s)
	}
	m, err := symbol.Encode(seqs, sm)
	require.NoError(t, err)
	return m
}

// TestTinyIdentity reproduces spec §8 scenario 1.
func TestTinyIdentity(t *testing.T) {
	// Scenario 1 uses raw digit strings, so build the matrix directly
	// from a digit alphabet rather than the ACGT helper.
	sm, err := symbol.NewSymbolMap([]byte("0123"))
	require.NoError(t, err)
	seqs := []symbol.Sequence{symbol.Sequence("000"), symbol.Sequence("000"), symbol.Sequence("001")}
	m, err := symbol.Encode(seqs, sm)
	require.NoError(t, err)

	peq := symbol.BuildPEQ(m, symbol.Range{Start: 0, End: m.N})
	buf := collector.NewEdgeBuffer(64)
	res := tile.Run(peq, m, tile.NewCoord(0, 0), m.N, 1, buf)
	require.False(t, res.Overflowed)
	edges, _ := buf.Drain()
	require.Len(t, edges, 1)
	require.Equal(t, collector.Edge{Row: 0, Col: 1}, edges[0])
}

// TestDistanceOneNeighborhood reproduces spec §8 scenario 2.
func TestDistanceOneNeighborhood(t *testing.T) {
	sm, err := symbol.NewSymbolMap([]byte("0123"))
	require.NoError(t, err)
	seqs := []symbol.Sequence{
		symbol.Sequence("012"),
		symbol.Sequence("112"),
		symbol.Sequence("312"),
		symbol.Sequence("022"),
	}
	m, err := symbol.Encode(seqs, sm)
	require.NoError(t, err)

	peq := symbol.BuildPEQ(m, symbol.Range{Start: 0, End: m.N})
	buf := collector.NewEdgeBuffer(64)
	res := tile.Run(peq, m, tile.NewCoord(0, 0), m.N, 2, buf)
	require.False(t, res.Overflowed)
	edges, _ := buf.Drain()

	got := map[[2]int32]bool{}
	for _, e := range edges {
		got[[2]int32{e.Row, e.Col}] = true
	}
	require.True(t, got[[2]int32{0, 1}])
	require.True(t, got[[2]int32{0, 2}])
	require.True(t, got[[2]int32{0, 3}])
	require.True(t, got[[2]int32{1, 2}])
	require.False(t, got[[2]int32{1, 3}]) // distance 2, not <2
	require.False(t, got[[2]int32{2, 3}])
	require.Len(t, edges, 4)
}

func TestNewCoordPanicsOnInvertedOrder(t *testing.T) {
	require.Panics(t, func() { tile.NewCoord(5, 4) })
	require.NotPanics(t, func() { tile.NewCoord(4, 5) })
	require.NotPanics(t, func() { tile.NewCoord(4, 4) })
}

func TestPaddedColumnsOutsideNAreNeverEmitted(t *testing.T) {
	m := encode(t, "ACGT", "ACGT", "TTTT")
	// Simulate a column-batch padded past N=3 up to a tile width of 8.
	padded := symbol.NewMatrix(m.L, 8)
	for s := 0; s < m.N; s++ {
		for k := 0; k < m.L; k++ {
			padded.Set(k, s, m.At(k, s))
		}
	}
	peq := symbol.BuildPEQ(m, symbol.Range{Start: 0, End: m.N})
	buf := collector.NewEdgeBuffer(64)
	res := tile.Run(peq, padded, tile.NewCoord(0, 0), m.N, 5, buf)
	require.False(t, res.Overflowed)
	edges, _ := buf.Drain()
	for _, e := range edges {
		require.Less(t, int(e.Col), m.N)
	}
}
