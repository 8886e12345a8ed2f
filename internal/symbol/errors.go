// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symbol: sentinel error set for the encoder and PEQ builder.
//
// All algorithms in this package return these sentinels (optionally
// wrapped with fmt.Errorf's %w at the outer boundary); callers MUST use
// errors.Is to branch on semantics rather than comparing strings.

package symbol

import "errors"

// ErrLengthMismatch indicates that not every sequence shares the same
// length L, violating the "equal-length strings" precondition.
var ErrLengthMismatch = errors.New("symbol: sequence length mismatch")

// ErrSymbolOutOfRange indicates a sequence contains a symbol that does
// not map to {0,1,2,3} under the active SymbolMap.
var ErrSymbolOutOfRange = errors.New("symbol: symbol outside four-letter alphabet")

// ErrTooLong indicates L exceeds the machine word width W (64), which
// would require the multi-word Myers variant this package does not
// implement.
var ErrTooLong = errors.New("symbol: sequence length exceeds word width")

// ErrEmptyAlphabet indicates a SymbolMap was requested from something
// other than exactly four distinct letters.
var ErrEmptyAlphabet = errors.New("symbol: symbol map must cover exactly four letters")
