// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch: sentinel errors for the batch scheduler.
package batch

import "errors"

// ErrOOM indicates the memory-budget computation would yield fewer than
// MinBatch sequences per batch after subtracting the reserve (spec §7
// oom: "Fatal to the run").
var ErrOOM = errors.New("batch: memory budget too small for minimum batch size")

// ErrStreamFailure is fatal and aborts the run (spec §7 stream_error).
var ErrStreamFailure = errors.New("batch: stream failure")
