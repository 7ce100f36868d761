// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqread

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrMissingID is the cause of a FormatError for a header
	// line without an identifier.
	ErrMissingID = errors.New("missing identifier")

	// ErrNotFound is returned by a Retriever asked for an
	// identifier it does not hold.
	ErrNotFound = errors.New("seqread: no such record")
)

// IOError is returned when the input cannot be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("seqread: %s: %v", e.Path, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// FormatError is returned for a malformed record. Record is the
// 1-based ordinal of the offending record in the input.
type FormatError struct {
	Path   string
	Record int
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("seqread: %s: record %d: %v", e.Path, e.Record, e.Err)
}
func (e *FormatError) Unwrap() error { return e.Err }

// errReader remembers the first non-EOF error returned by the
// underlying reader so that parse errors can be told apart from
// read errors.
type errReader struct {
	r   io.Reader
	err error
}

func (r *errReader) Read(b []byte) (int, error) {
	n, err := r.r.Read(b)
	if err != nil && err != io.EOF && r.err == nil {
		r.err = err
	}
	return n, err
}

// classify converts an error returned while parsing the n'th record of
// path into an IOError or a FormatError.
func classify(path string, src *errReader, n int, err error) error {
	if src.err != nil {
		return &IOError{Path: path, Err: src.err}
	}
	var fe *FormatError
	if errors.As(err, &fe) {
		if fe.Path == "" {
			fe.Path = path
		}
		return fe
	}
	return &FormatError{Path: path, Record: n, Err: err}
}
