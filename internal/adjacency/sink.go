// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adjacency implements the N-entry adjacency sink (spec §4.7):
// for every emitted (i,j), j appears in row i and i appears in row j.
// The mirrored-insert shape is adapted from
// katalvlaran-lvlath/core/adjacency_list.go's AddEdge, which inserts both
// directions for an undirected graph; here the vertices are plain
// integer sequence indices rather than named graph vertices, and there
// is a single writer (the scheduler's serializing drain goroutine, spec
// §5 "the adjacency list is written only by the drain path").
package adjacency

import "sort"

// Sink is the N-sized vector of per-row neighbor lists returned to the
// caller (spec §4.7). It is not safe for concurrent Insert calls; the
// batch scheduler serializes all drains through one goroutine.
type Sink struct {
	neighbors [][]int32
}

// NewSink allocates an empty sink for n sequences.
func NewSink(n int) *Sink {
	return &Sink{neighbors: make([][]int32, n)}
}

// Len reports the number of rows (N).
func (s *Sink) Len() int { return len(s.neighbors) }

// Insert records the unordered pair (i,j) symmetrically: j is appended
// to row i and i is appended to row j. Callers must pass i != j and
// i < j (spec §4.7's upper-triangular emission invariant); Insert itself
// does not re-check i<j, since that gate already happened at emission
// time in the tile executor (spec §4.4).
func (s *Sink) Insert(i, j int32) {
	s.neighbors[i] = append(s.neighbors[i], j)
	s.neighbors[j] = append(s.neighbors[j], i)
}

// Neighbors returns a sorted copy of row i's neighbor list.
func (s *Sink) Neighbors(i int) []int32 {
	row := s.neighbors[i]
	out := make([]int32, len(row))
	copy(out, row)
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}

// EdgeCount returns the total number of unordered pairs recorded (each
// pair contributes one entry to each of its two rows, so this is half
// the sum of row lengths).
func (s *Sink) EdgeCount() int64 {
	var total int64
	for _, row := range s.neighbors {
		total += int64(len(row))
	}
	return total / 2
}
