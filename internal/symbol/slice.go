// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

// Slice copies columns [start, end) of m into a new, independently
// owned Matrix. Used by the batch scheduler to stage one column-batch
// or tile's worth of sequence data, mirroring the CUDA reference's
// shared-memory load of a column block (compute_chunk_kernel's smem_seq).
func (m *Matrix) Slice(start, end int) *Matrix {
	n := end - start
	out := NewMatrix(m.L, n)
	for k := 0; k < m.L; k++ {
		for i := 0; i < n; i++ {
			out.Set(k, i, m.At(k, start+i))
		}
	}
	return out
}
