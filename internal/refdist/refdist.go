// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refdist implements the quadratic dynamic-programming
// Levenshtein oracle spec §8 requires test code to check the bit-parallel
// kernel against ("the emitted edge set equals the reference set exactly
// for all L ≤ W"). Test-only: nothing outside _test.go files imports it.
package refdist

import "gonum.org/v1/gonum/mat"

// Distance returns the Levenshtein edit distance between a and b using
// the textbook O(len(a)*len(b)) dynamic-programming recurrence.
func Distance(a, b []byte) int {
	n, m := len(a), len(b)
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// Matrix returns the dense N×N distance matrix for seqs, backed by
// gonum's mat.Dense the way the pack's gonum-dependent code holds small
// numeric tables. The matrix is symmetric with a zero diagonal; none of
// the module's current tests call it.
func Matrix(seqs [][]byte) *mat.Dense {
	n := len(seqs)
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := float64(Distance(seqs[i], seqs[j]))
			d.Set(i, j, dist)
			d.Set(j, i, dist)
		}
	}
	return d
}
