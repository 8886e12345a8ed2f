// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adjacency

import "gonum.org/v1/gonum/stat"

// DegreeStats summarizes the adjacency sink's row lengths, logged by the
// CLI as a closing progress line (supplemental ambient observability;
// not part of the core contract, see SPEC_FULL.md).
type DegreeStats struct {
	Mean, Max float64
}

// DegreeStats computes the mean and maximum row degree across the sink,
// using gonum/stat.Mean for the mean the way the pack's gonum-dependent
// examples use gonum for small numeric summaries.
func (s *Sink) DegreeStats() DegreeStats {
	if len(s.neighbors) == 0 {
		return DegreeStats{}
	}
	degrees := make([]float64, len(s.neighbors))
	var max float64
	for i, row := range s.neighbors {
		d := float64(len(row))
		degrees[i] = d
		if d > max {
			max = d
		}
	}
	return DegreeStats{
		Mean: stat.Mean(degrees, nil),
		Max:  max,
	}
}
