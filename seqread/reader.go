// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seqread provides streaming access to the records of a multi-FASTA
// contig or scaffold file, and retrieval of individual records by identifier.
package seqread

import (
	"errors"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/shenwei356/xopen"
)

// Record is a FASTA record. ID is the first word of the header line
// and Desc the remainder.
type Record struct {
	ID   string
	Desc string
	Seq  alphabet.Letters
}

// record is the sequence template handed to the fasta.Reader. It behaves
// as a linear.Seq but refuses records without an identifier.
type record struct {
	*linear.Seq
}

func template() record { return record{linear.NewSeq("", nil, alphabet.DNA)} }

// Clone returns a copy of the record.
func (s record) Clone() seq.Sequence { return record{s.Seq.Clone().(*linear.Seq)} }

// SetName sets the identifier of the record.
func (s record) SetName(n string) error {
	if n == "" {
		return ErrMissingID
	}
	return s.Seq.SetName(n)
}

func newScanner(r io.Reader) *seqio.Scanner {
	return seqio.NewScanner(fasta.NewReader(r, template()))
}

// Reader reads FASTA records in file order. Sequences are upper-cased.
// A Reader is not restartable.
type Reader struct {
	name string
	src  *errReader
	sc   *seqio.Scanner
	c    io.Closer

	n   int
	rec Record
	err error
}

// NewReader returns a Reader reading from r. The name is used in
// error values.
func NewReader(r io.Reader, name string) *Reader {
	src := &errReader{r: r}
	return &Reader{name: name, src: src, sc: newScanner(src)}
}

// Open opens the named file for reading. Files compressed with gzip,
// bzip2, xz or zstd are decompressed transparently and "-" reads from
// standard input. An input without content yields no records.
func Open(path string) (*Reader, error) {
	f, err := xopen.Ropen(path)
	if err != nil {
		if errors.Is(err, xopen.ErrNoContent) {
			return NewReader(strings.NewReader(""), path), nil
		}
		return nil, &IOError{Path: path, Err: err}
	}
	r := NewReader(f, path)
	r.c = f
	return r, nil
}

// Next advances the Reader to the next record, which is then available
// through Record. Next returns false at the end of the input or on error.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	if !r.sc.Next() {
		if err := r.sc.Error(); err != nil {
			r.err = classify(r.name, r.src, r.n+1, err)
		}
		return false
	}
	r.n++
	s := r.sc.Seq().(record)
	upper(s.Seq.Seq)
	r.rec = Record{ID: s.Name(), Desc: s.Description(), Seq: s.Seq.Seq}
	return true
}

// Record returns the most recent record read by Next.
func (r *Reader) Record() Record { return r.rec }

// Error returns the first error encountered by the Reader. It is either
// an *IOError or a *FormatError.
func (r *Reader) Error() error { return r.err }

// Count returns the number of records read so far.
func (r *Reader) Count() int { return r.n }

// Close closes the underlying file if the Reader was created by Open.
func (r *Reader) Close() error {
	if r.c == nil {
		return nil
	}
	return r.c.Close()
}

func upper(s alphabet.Letters) {
	for i, l := range s {
		if 'a' <= l && l <= 'z' {
			s[i] = l - ('a' - 'A')
		}
	}
}
