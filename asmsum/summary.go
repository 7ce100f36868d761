// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asmsum computes assembly statistics such as N50 and L50 and
// nucleotide composition from a contig table, and renders them as a text
// report or an Nx plot.
package asmsum

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/biogo/asmstats/ctgtable"
	"github.com/biogo/asmstats/nuccomp"
)

// Thresholds are the lengths used to count long scaffolds.
var Thresholds = []int{1e3, 1e4, 1e5, 1e6}

// Threshold is the number of scaffolds longer than Length.
type Threshold struct {
	Length  int
	Count   int
	Percent float64
}

// NxPoint is the Nx length and Lx count for X percent of the assembly.
type NxPoint struct {
	X int
	N int
	L int
}

// Summary holds the statistics of an assembly. Lengths are in base pairs
// and all percentages are in the range [0, 100].
type Summary struct {
	Scaffolds int
	TotalBP   int
	Longest   int
	Shortest  int
	Mean      float64
	Median    float64

	Over []Threshold

	N50 int
	L50 int

	// Nx holds N10 to N90 in steps of ten.
	Nx []NxPoint

	// AuN is the area under the Nx curve, the length-weighted
	// mean scaffold length.
	AuN float64

	// MeanGC is the mean of the per-scaffold GC percentages.
	MeanGC float64

	// Base composition as percentages of TotalBP.
	A, T, C, G, Ambiguous float64

	AmbiguousBP int
}

// Summarize returns the statistics of the assembly described by t.
// The rows of t must be sorted by decreasing length as returned by
// ctgtable.Build; Summarize does not sort them.
func Summarize(t *ctgtable.Table) (*Summary, error) {
	n := t.N()
	if n == 0 {
		return nil, ctgtable.ErrEmptyResult
	}

	var (
		comp    nuccomp.Counts
		gc      = make([]float64, n)
		lengths = t.Lengths()
		fl      = make([]float64, n)
	)
	for i, r := range t.Rows {
		comp = comp.Add(r.Counts)
		gc[i] = r.GC
		fl[i] = float64(r.Length)
	}
	total := comp.Length

	s := &Summary{
		Scaffolds: n,
		TotalBP:   total,
		Longest:   lengths[0],
		Shortest:  lengths[n-1],
		Mean:      float64(total) / float64(n),
		Median:    median(lengths),
		AuN:       floats.Dot(fl, fl) / float64(total),
		MeanGC:    stat.Mean(gc, nil),

		A:           percent(comp.A, total),
		T:           percent(comp.T, total),
		C:           percent(comp.C, total),
		G:           percent(comp.G, total),
		Ambiguous:   percent(comp.Ambiguous, total),
		AmbiguousBP: comp.Ambiguous,
	}
	for _, th := range Thresholds {
		var c int
		for _, l := range lengths {
			if l <= th {
				break
			}
			c++
		}
		s.Over = append(s.Over, Threshold{Length: th, Count: c, Percent: percent(c, n)})
	}
	s.N50, s.L50 = Nx(lengths, total, 50)
	for x := 10; x < 100; x += 10 {
		nx, lx := Nx(lengths, total, x)
		s.Nx = append(s.Nx, NxPoint{X: x, N: nx, L: lx})
	}
	return s, nil
}

// Nx returns the length of the last scaffold and the number of scaffolds
// in the shortest prefix of lengths whose cumulative length is at least x
// percent of total. lengths must be sorted in decreasing order and x must
// be in [0, 100]. Nx returns zeros if no prefix reaches the threshold.
func Nx(lengths []int, total, x int) (n, l int) {
	var cum int
	for i, v := range lengths {
		cum += v
		if 100*cum >= x*total {
			return v, i + 1
		}
	}
	return 0, 0
}

// median returns the median of lengths sorted in decreasing order.
func median(lengths []int) float64 {
	n := len(lengths)
	if n%2 == 1 {
		return float64(lengths[n/2])
	}
	return float64(lengths[n/2-1]+lengths[n/2]) / 2
}

func percent(n, of int) float64 {
	return 100 * float64(n) / float64(of)
}
