// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package candidates_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/kortschak/nbrgraph/internal/candidates"
	"github.com/stretchr/testify/require"
)

func TestReadLinesStripsAndSkipsBlank(t *testing.T) {
	in := "0123  \n\n0012\r\n  \n3210\n"
	seqs, err := candidates.ReadLines(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"0123", "0012", "3210"}, seqs)
}

func TestReadLinesRejectsLengthMismatch(t *testing.T) {
	in := "0123\n012\n"
	_, err := candidates.ReadLines(strings.NewReader(in))
	require.True(t, errors.Is(err, candidates.ErrLengthMismatch))
}

func TestReadLinesEmptyFile(t *testing.T) {
	seqs, err := candidates.ReadLines(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, seqs)
}
