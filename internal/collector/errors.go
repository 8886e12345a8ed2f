// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collector: sentinel errors for the sparse edge collector.
package collector

import "errors"

// ErrEdgeBufferOverflow indicates a stream's emitted edges exceeded its
// buffer capacity (spec §7 edge_buffer_overflow). It is never returned
// from Append or Drain directly; it is surfaced via Drain's overflowed
// return value, since overflow is a recoverable-but-lossy event, not a
// call failure.
var ErrEdgeBufferOverflow = errors.New("collector: edge buffer overflow")
