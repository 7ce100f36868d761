// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ctgtable builds a per-contig metrics table from a stream of FASTA
// records, ordered by decreasing contig length.
package ctgtable

import (
	"errors"
	"fmt"
	"sort"

	"github.com/biogo/asmstats/nuccomp"
	"github.com/biogo/asmstats/seqread"
)

// ErrEmptyResult is returned when statistics are requested over a table
// without rows.
var ErrEmptyResult = errors.New("ctgtable: no records in table")

// Source is a stream of FASTA records. It is satisfied by *seqread.Reader.
type Source interface {
	Next() bool
	Record() seqread.Record
	Error() error
}

// Options controls table construction.
type Options struct {
	// MinLength is the inclusive minimum record length.
	// Zero keeps all records.
	MinLength int

	// TopN limits the table to the TopN longest records.
	// Values less than one keep all records.
	TopN int
}

// Metrics is the composition of a single record.
type Metrics struct {
	ID string
	nuccomp.Counts
	GC float64
}

// Table is a set of record metrics sorted by decreasing length. Records of
// equal length keep their input order.
type Table struct {
	Rows []Metrics

	// Options holds the options used to build the table.
	Options

	// Skipped holds the identifiers of zero length records
	// that passed the length filter but were not analyzed.
	Skipped []string
}

// Build reads all records from src and returns the table of records at
// least opt.MinLength long, truncated to the opt.TopN longest when TopN is
// positive. Errors from src are returned unchanged.
func Build(src Source, opt Options) (*Table, error) {
	if opt.MinLength < 0 {
		return nil, fmt.Errorf("ctgtable: negative minimum length: %d", opt.MinLength)
	}
	t := &Table{Options: opt}
	for src.Next() {
		r := src.Record()
		if len(r.Seq) < opt.MinLength {
			continue
		}
		c, err := nuccomp.Count(r.Seq)
		if err != nil {
			if err == nuccomp.ErrEmptySequence {
				t.Skipped = append(t.Skipped, r.ID)
				continue
			}
			return nil, err
		}
		t.Rows = append(t.Rows, Metrics{ID: r.ID, Counts: c, GC: c.GC()})
	}
	if err := src.Error(); err != nil {
		return nil, err
	}
	sort.SliceStable(t.Rows, func(i, j int) bool { return t.Rows[i].Length > t.Rows[j].Length })
	if opt.TopN > 0 && len(t.Rows) > opt.TopN {
		t.Rows = t.Rows[:opt.TopN:opt.TopN]
	}
	return t, nil
}

// N returns the number of rows in the table. When a top count larger
// than the table was requested N is the effective count.
func (t *Table) N() int { return len(t.Rows) }

// Lengths returns the record lengths in table order.
func (t *Table) Lengths() []int {
	l := make([]int, len(t.Rows))
	for i, r := range t.Rows {
		l[i] = r.Length
	}
	return l
}

// IDs returns the record identifiers in table order.
func (t *Table) IDs() []string {
	ids := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		ids[i] = r.ID
	}
	return ids
}

// Label returns the file name suffix describing the filter applied to the
// table: "_gt<min>" for a length filter, otherwise "_top<n>" with the
// effective count for a top count, and "" when unfiltered.
func (t *Table) Label() string {
	switch {
	case t.MinLength != 0:
		return fmt.Sprintf("_gt%d", t.MinLength)
	case t.TopN > 0:
		return fmt.Sprintf("_top%d", t.N())
	}
	return ""
}
