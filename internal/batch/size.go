// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

// bytesPerPEQRow is 4 words of 8 bytes each (spec §4.5: "4·W/8 bytes").
const bytesPerPEQRow = 4 * 8

// ComputeBatchSize implements spec §4.5's memory-budget formula:
//
//	B = floor((mem_limit - reserve) / bytes_per_row)
//
// rounded down to a multiple of tileWidth and clamped to at most n. A
// result below both minBatch and n is ErrOOM, except that when rounding
// leaves zero and n < minBatch the whole input is one batch of n; a
// budget no larger than the reserve is always ErrOOM. bytes_per_row accounts for one PEQ row (4 words) plus the transposed
// sequence column (l bytes, one symbol per position).
func ComputeBatchSize(memBudgetBytes, reserveBytes int64, l, tileWidth, minBatch, n int) (int, error) {
	avail := memBudgetBytes - reserveBytes
	if avail <= 0 {
		return 0, ErrOOM
	}

	bytesPerRow := int64(bytesPerPEQRow + l)
	raw := avail / bytesPerRow
	if tileWidth > 1 {
		raw -= raw % int64(tileWidth)
	}

	if raw <= 0 {
		if n < minBatch {
			return n, nil
		}
		return 0, ErrOOM
	}
	if raw > int64(n) {
		raw = int64(n)
	}
	if raw < int64(minBatch) && raw < int64(n) {
		return 0, ErrOOM
	}
	return int(raw), nil
}
