// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package candidates: sentinel errors for candidate input file reading.
package candidates

import "errors"

// ErrLengthMismatch indicates not every line (or FASTA record) in the
// input file has the same length after trailing-whitespace stripping
// (spec §6: "all sequences must have equal length after stripping").
var ErrLengthMismatch = errors.New("candidates: sequence length mismatch")
