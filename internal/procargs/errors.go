// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package procargs: sentinel errors for CLI argument parsing.
package procargs

import "errors"

// ErrBadInput covers every validation failure spec §7 groups under
// bad_input at the CLI boundary: wrong argument count, a non-positive
// threshold, or an unparsable memory budget.
var ErrBadInput = errors.New("procargs: bad input")
