// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command nbrgraph computes the set of unordered pairs of equal-length
// four-letter sequences whose Levenshtein distance is strictly less
// than a threshold, and writes them as a flat binary edge list.
//
// Usage:
//
//	nbrgraph <input_vectors_file> <output_edges_file> <threshold> [mem_budget_gb]
//
// input_vectors_file is UTF-8/ASCII text, one sequence per line (or
// FASTA under -fasta); output_edges_file receives little-endian int32
// (i, j) pairs with i < j, per spec §6.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kortschak/nbrgraph/internal/batch"
	"github.com/kortschak/nbrgraph/internal/candidates"
	"github.com/kortschak/nbrgraph/internal/edgefile"
	"github.com/kortschak/nbrgraph/internal/engine"
	"github.com/kortschak/nbrgraph/internal/procargs"
	"github.com/kortschak/nbrgraph/internal/symbol"
)

var (
	verbose = flag.Bool("v", false, "log the number of sequences read")
	useFA   = flag.Bool("fasta", false, "read the input file as FASTA instead of one-sequence-per-line text")
)

func main() {
	flag.Parse()
	if err := run(flag.Args()); err != nil {
		log.Fatalf("nbrgraph: %v", err)
	}
}

func run(argv []string) error {
	args, err := procargs.Parse(argv)
	if err != nil {
		return err
	}

	in, err := os.Open(args.InputPath)
	if err != nil {
		return fmt.Errorf("opening %q: %w", args.InputPath, err)
	}
	defer in.Close()

	var strs []string
	if *useFA {
		strs, err = candidates.ReadFASTA(in)
	} else {
		strs, err = candidates.ReadLines(in)
	}
	if err != nil {
		return fmt.Errorf("reading %q: %w", args.InputPath, err)
	}
	if *verbose {
		log.Printf("read %d sequences from %q", len(strs), args.InputPath)
	}

	cfg := batch.DefaultConfig()
	if args.HasMemBudget {
		cfg.MemBudgetBytes = int64(args.MemBudgetGB * (1 << 30))
	}

	sink, res, err := engine.ComputeNeighbors(context.Background(), strs, symbol.DefaultSymbolMap(), args.Threshold, cfg)
	if err != nil {
		return err
	}
	if res.Overflowed {
		log.Printf("warning: at least one tile's edge buffer overflowed; adjacency is a lossy subset for that tile")
	}

	out, err := os.Create(args.OutputPath)
	if err != nil {
		return fmt.Errorf("creating %q: %w", args.OutputPath, err)
	}
	defer out.Close()

	if err := edgefile.Write(out, sink); err != nil {
		return fmt.Errorf("writing %q: %w", args.OutputPath, err)
	}

	stats := sink.DegreeStats()
	log.Printf("wrote %d edges (mean degree %.2f, max degree %.0f)", res.EdgesEmitted, stats.Mean, stats.Max)
	return nil
}
