// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package procargs parses the subprocess invocation surface spec §6
// defines: positional arguments
//
//	<input_vectors_file> <output_edges_file> <threshold> [mem_budget_gb]
//
// Grounded on kortschak-loopy/cmd/wring/wring.go's raw os.Args[1:]
// handling — loopy's other commands use flag.*, but wring's plain
// positional style is the closer match to this fixed-arity surface.
package procargs

import (
	"fmt"
	"strconv"
)

// Args holds the parsed and validated positional arguments.
type Args struct {
	InputPath    string
	OutputPath   string
	Threshold    int
	MemBudgetGB  float64
	HasMemBudget bool
}

// Parse validates argv (not including the program name, i.e. os.Args[1:])
// against spec §6's invocation contract.
func Parse(argv []string) (Args, error) {
	if len(argv) < 3 || len(argv) > 4 {
		return Args{}, fmt.Errorf("procargs: want 3 or 4 arguments, got %d: %w", len(argv), ErrBadInput)
	}

	threshold, err := strconv.Atoi(argv[2])
	if err != nil {
		return Args{}, fmt.Errorf("procargs: threshold %q: %w", argv[2], ErrBadInput)
	}
	if threshold <= 0 {
		return Args{}, fmt.Errorf("procargs: threshold must be positive, got %d: %w", threshold, ErrBadInput)
	}

	a := Args{
		InputPath:  argv[0],
		OutputPath: argv[1],
		Threshold:  threshold,
	}

	if len(argv) == 4 {
		gb, err := strconv.ParseFloat(argv[3], 64)
		if err != nil || gb <= 0 {
			return Args{}, fmt.Errorf("procargs: mem_budget_gb %q: %w", argv[3], ErrBadInput)
		}
		a.MemBudgetGB = gb
		a.HasMemBudget = true
	}

	return a, nil
}
