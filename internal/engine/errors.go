// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine: sentinel errors for the primary compute_neighbors API.
package engine

import "errors"

// ErrBadInput covers spec §7's validation class at the API boundary: a
// nonpositive threshold, unequal sequence lengths, symbols outside
// {0,1,2,3}, or L > W. N == 0 is not an error (spec §8: "empty
// adjacency, no error").
var ErrBadInput = errors.New("engine: bad input")
