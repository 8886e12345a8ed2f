// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adjacency: sentinel errors for the adjacency sink.
package adjacency

import "errors"

// ErrIndexOutOfRange indicates an insert or query referenced an index
// outside [0, N) of the sink.
var ErrIndexOutOfRange = errors.New("adjacency: index out of range")
