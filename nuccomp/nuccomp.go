// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nuccomp counts the nucleotide composition of DNA sequences.
package nuccomp

import (
	"errors"

	"github.com/biogo/biogo/alphabet"
)

// ErrEmptySequence is returned when a composition is requested for a
// sequence of length zero.
var ErrEmptySequence = errors.New("nuccomp: empty sequence")

// Counts holds the base counts of a sequence. Any letter other than
// A, T, C or G is counted as ambiguous, so A+T+C+G+Ambiguous == Length.
type Counts struct {
	Length    int
	A         int
	T         int
	C         int
	G         int
	Ambiguous int
}

// Count returns the composition of s. Letters are expected to be upper
// case; lower case letters are counted as ambiguous.
func Count(s alphabet.Letters) (Counts, error) {
	if len(s) == 0 {
		return Counts{}, ErrEmptySequence
	}
	c := Counts{Length: len(s)}
	for _, l := range s {
		switch l {
		case 'A':
			c.A++
		case 'T':
			c.T++
		case 'C':
			c.C++
		case 'G':
			c.G++
		default:
			c.Ambiguous++
		}
	}
	return c, nil
}

// GC returns the percentage of G and C bases. GC returns 0 for an
// empty Counts.
func (c Counts) GC() float64 {
	if c.Length == 0 {
		return 0
	}
	return 100 * float64(c.C+c.G) / float64(c.Length)
}

// Add returns the sum of c and o.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Length:    c.Length + o.Length,
		A:         c.A + o.A,
		T:         c.T + o.T,
		C:         c.C + o.C,
		G:         c.G + o.G,
		Ambiguous: c.Ambiguous + o.Ambiguous,
	}
}
