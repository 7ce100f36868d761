// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqread

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/shenwei356/xopen"
)

// Retriever returns FASTA records by identifier. Retrieved sequences keep
// the letter case and description of the input.
type Retriever interface {
	Retrieve(id string) (seq.Sequence, error)
	Close() error
}

// NewRetriever returns a Retriever for the FASTA file at path. Plain files
// are indexed and read by offset. Compressed files cannot be addressed by
// offset, so they are streamed once more and only the records named in
// ids are kept.
func NewRetriever(path string, ids []string) (Retriever, error) {
	plain, err := isPlain(path)
	if err != nil {
		return nil, err
	}
	if plain {
		f, err := OpenIndexed(path)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	s, err := Select(path, ids)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// isPlain reports whether the file at path is an uncompressed FASTA file.
// Empty files are considered plain.
func isPlain(path string) (bool, error) {
	if path == "-" {
		return false, &IOError{Path: path, Err: fmt.Errorf("standard input cannot be read twice")}
	}
	f, err := os.Open(path)
	if err != nil {
		return false, &IOError{Path: path, Err: err}
	}
	defer f.Close()
	br := bufio.NewReader(f)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return true, nil
		}
		if err != nil {
			return false, &IOError{Path: path, Err: err}
		}
		if !unicode.IsSpace(rune(b)) {
			return b == '>', nil
		}
	}
}

// IndexedFile retrieves records from a plain FASTA file using an Index.
type IndexedFile struct {
	path string
	f    *os.File
	idx  *Index
}

// OpenIndexed opens and indexes the plain FASTA file at path.
func OpenIndexed(path string) (*IndexedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	src := &errReader{r: f}
	idx, err := BuildIndex(src)
	if err != nil {
		f.Close()
		return nil, classify(path, src, 0, err)
	}
	return &IndexedFile{path: path, f: f, idx: idx}, nil
}

// Index returns the index of the file.
func (f *IndexedFile) Index() *Index { return f.idx }

// Retrieve returns the record with the given identifier.
func (f *IndexedFile) Retrieve(id string) (seq.Sequence, error) {
	e, ok := f.idx.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrNotFound, id, f.path)
	}
	src := &errReader{r: io.NewSectionReader(f.f, e.Offset, e.Length)}
	s, err := fasta.NewReader(src, linear.NewSeq("", nil, alphabet.DNA)).Read()
	if err != nil {
		return nil, classify(f.path, src, 0, err)
	}
	return s, nil
}

// Close closes the underlying file.
func (f *IndexedFile) Close() error { return f.f.Close() }

// Selection holds a subset of the records of a FASTA file in memory.
type Selection struct {
	path string
	recs map[string]seq.Sequence
}

// Select streams the FASTA file at path and keeps the records named in ids.
func Select(path string, ids []string) (*Selection, error) {
	sel := &Selection{path: path, recs: make(map[string]seq.Sequence, len(ids))}
	f, err := xopen.Ropen(path)
	if err != nil {
		if errors.Is(err, xopen.ErrNoContent) {
			return sel, nil
		}
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	src := &errReader{r: f}
	sc := newScanner(src)
	var n int
	for sc.Next() {
		n++
		s := sc.Seq()
		if !want[s.Name()] {
			continue
		}
		if _, dup := sel.recs[s.Name()]; dup {
			return nil, &FormatError{Path: path, Record: n, Err: fmt.Errorf("duplicate identifier %q", s.Name())}
		}
		sel.recs[s.Name()] = s
	}
	if err := sc.Error(); err != nil {
		return nil, classify(path, src, n+1, err)
	}
	return sel, nil
}

// Len returns the number of selected records.
func (s *Selection) Len() int { return len(s.recs) }

// Retrieve returns the record with the given identifier.
func (s *Selection) Retrieve(id string) (seq.Sequence, error) {
	r, ok := s.recs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrNotFound, id, s.path)
	}
	return r, nil
}

// Close is a no-op.
func (s *Selection) Close() error { return nil }
