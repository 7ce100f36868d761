// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqread

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/store/llrb"
)

// Entry is the location of a FASTA record in its file. The record spans
// [Offset, Offset+Length) and includes its header line.
type Entry struct {
	ID     string
	Offset int64
	Length int64
}

// Compare satisfies the llrb.Comparable interface, ordering entries by ID.
func (e Entry) Compare(c llrb.Comparable) int { return strings.Compare(e.ID, c.(Entry).ID) }

// Index maps record identifiers to their location in a FASTA file.
type Index struct {
	t llrb.Tree
}

// BuildIndex reads r to the end and returns an index of the FASTA records
// it holds. Duplicate identifiers are reported as a *FormatError.
func BuildIndex(r io.Reader) (*Index, error) {
	var (
		idx Index
		br  = bufio.NewReader(r)
		off int64
		n   int
		cur *Entry
	)
	add := func(end int64) error {
		if cur == nil {
			return nil
		}
		cur.Length = end - cur.Offset
		if idx.t.Get(*cur) != nil {
			return &FormatError{Record: n, Err: fmt.Errorf("duplicate identifier %q", cur.ID)}
		}
		idx.t.Insert(*cur)
		return nil
	}
	for {
		line, err := br.ReadBytes('\n')
		if len(line) != 0 {
			t := bytes.TrimSpace(line)
			switch {
			case len(t) == 0:
			case t[0] == '>':
				if err := add(off); err != nil {
					return nil, err
				}
				n++
				id := t[1:]
				if i := bytes.IndexAny(id, " \t"); i >= 0 {
					id = id[:i]
				}
				if len(id) == 0 {
					return nil, &FormatError{Record: n, Err: ErrMissingID}
				}
				cur = &Entry{ID: string(id), Offset: off}
			case cur == nil:
				return nil, &FormatError{Record: 1, Err: fmt.Errorf("sequence data before first header")}
			}
			off += int64(len(line))
		}
		if err != nil {
			if err != io.EOF {
				return nil, err
			}
			break
		}
	}
	if err := add(off); err != nil {
		return nil, err
	}
	return &idx, nil
}

// Len returns the number of records in the index.
func (idx *Index) Len() int { return idx.t.Len() }

// Get returns the entry for id.
func (idx *Index) Get(id string) (Entry, bool) {
	c := idx.t.Get(Entry{ID: id})
	if c == nil {
		return Entry{}, false
	}
	return c.(Entry), true
}

// Entries returns all entries in identifier order.
func (idx *Index) Entries() []Entry {
	e := make([]Entry, 0, idx.t.Len())
	idx.t.Do(func(c llrb.Comparable) (done bool) {
		e = append(e, c.(Entry))
		return
	})
	return e
}
