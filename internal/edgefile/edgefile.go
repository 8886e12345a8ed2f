// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edgefile implements the binary edge output format spec §6
// defines: a flat stream of little-endian int32 (i, j) pairs with
// i < j, no header and no terminator.
package edgefile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/kortschak/nbrgraph/internal/adjacency"
)

// Write streams every emitted pair of sink as little-endian int32 pairs
// (i, j) with i < j, in row order. Each row's neighbor list is only
// consulted for j > i, so every unordered pair is written exactly once
// even though the sink itself stores each pair symmetrically.
func Write(w io.Writer, sink *adjacency.Sink) error {
	bw := bufio.NewWriter(w)
	var buf [8]byte
	for i := 0; i < sink.Len(); i++ {
		for _, j := range sink.Neighbors(i) {
			if int(j) <= i {
				continue
			}
			binary.LittleEndian.PutUint32(buf[0:4], uint32(i))
			binary.LittleEndian.PutUint32(buf[4:8], uint32(j))
			if _, err := bw.Write(buf[:]); err != nil {
				return fmt.Errorf("edgefile: %w", err)
			}
		}
	}
	return bw.Flush()
}

// Read parses the binary edge format back into (i, j) pairs, for tests
// and for tools that consume nbrgraph's output directly.
func Read(r io.Reader) ([][2]int32, error) {
	var pairs [][2]int32
	var buf [8]byte
	for {
		_, err := io.ReadFull(r, buf[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("edgefile: %w", err)
		}
		i := int32(binary.LittleEndian.Uint32(buf[0:4]))
		j := int32(binary.LittleEndian.Uint32(buf[4:8]))
		pairs = append(pairs, [2]int32{i, j})
	}
	return pairs, nil
}
