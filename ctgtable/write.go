// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctgtable

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/io/seqio/fasta"

	"github.com/biogo/asmstats/seqread"
)

// Header is the column header written by WriteTSV.
var Header = []string{"contig_id", "size", "gc", "a", "t", "c", "g", "n_ambiguous"}

// WriteTSV writes the table to w as tab-delimited text with a header line.
// Fields are written verbatim without quoting.
func WriteTSV(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, strings.Join(Header, "\t"))
	for _, r := range t.Rows {
		fmt.Fprintf(bw, "%s\t%d\t%.2f\t%d\t%d\t%d\t%d\t%d\n",
			r.ID, r.Length, r.GC, r.A, r.T, r.C, r.G, r.Ambiguous)
	}
	return bw.Flush()
}

// WriteFASTA writes the records of the table to w in table order, retrieving
// each from src. Sequence lines are wrapped at width letters.
func WriteFASTA(w io.Writer, t *Table, src seqread.Retriever, width int) error {
	if width < 1 {
		return fmt.Errorf("ctgtable: invalid FASTA line width: %d", width)
	}
	fw := fasta.NewWriter(w, width)
	for _, r := range t.Rows {
		s, err := src.Retrieve(r.ID)
		if err != nil {
			return err
		}
		if _, err := fw.Write(s); err != nil {
			return fmt.Errorf("ctgtable: failed to write sequence %q: %w", r.ID, err)
		}
	}
	return nil
}
