// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package candidates reads the candidate input file format spec §6
// defines: UTF-8/ASCII text, one sequence per line, trailing whitespace
// stripped, empty lines ignored, all sequences of equal length.
//
// An optional FASTA mode supplements the plain-text format with
// biogo/io/seqio/fasta record scanning, grounded on
// kortschak-loopy/loopy.go's writeFlankSeqs, which reads fasta.NewReader
// through a seqio.Scanner the same way.
package candidates

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ReadLines reads the plain one-sequence-per-line format from r.
func ReadLines(r io.Reader) ([]string, error) {
	var seqs []string
	l := -1
	lineNo := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r\n")
		if line == "" {
			continue
		}
		if l == -1 {
			l = len(line)
		} else if len(line) != l {
			return nil, fmt.Errorf("candidates: line %d has length %d, want %d: %w", lineNo, len(line), l, ErrLengthMismatch)
		}
		seqs = append(seqs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("candidates: %w", err)
	}
	return seqs, nil
}

// ReadFASTA reads candidate sequences from a FASTA stream, in record
// order, validating equal length the same way ReadLines does.
func ReadFASTA(r io.Reader) ([]string, error) {
	var seqs []string
	l := -1
	fr := fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA))
	sc := seqio.NewScanner(fr)
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		letters := s.Seq
		if l == -1 {
			l = len(letters)
		} else if len(letters) != l {
			return nil, fmt.Errorf("candidates: record %d has length %d, want %d: %w", len(seqs)+1, len(letters), l, ErrLengthMismatch)
		}
		raw := make([]byte, len(letters))
		for i, lt := range letters {
			raw[i] = byte(lt)
		}
		seqs = append(seqs, string(raw))
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("candidates: %w", err)
	}
	return seqs, nil
}
