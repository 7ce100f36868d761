// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asmsum

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Header describes the run that produced a Summary.
type Header struct {
	File string

	// MinLength and TopN are the filters applied to the table.
	// TopN is the effective number of scaffolds kept, zero if
	// no top count was requested.
	MinLength int
	TopN      int

	Date    time.Time
	Elapsed time.Duration
}

// WriteReport writes a human readable report of s to w.
func WriteReport(w io.Writer, s *Summary, h Header) error {
	var (
		buf bytes.Buffer
		p   = message.NewPrinter(language.English)
	)

	p.Fprintf(&buf, "Assembly statistics report\n\n")
	p.Fprintf(&buf, "%s\n", h.Date.Format("02-01-2006 - 15:04 MST"))
	p.Fprintf(&buf, "File: %s\n", h.File)
	if h.MinLength != 0 {
		p.Fprintf(&buf, "Filter: excluded contigs < %d bp\n", h.MinLength)
	}
	if h.TopN > 0 {
		p.Fprintf(&buf, "Filter: stats for top %d largest contigs/scaffolds\n", h.TopN)
	}
	buf.WriteByte('\n')

	p.Fprintf(&buf, "%-27s%d\n", "Number of scaffolds:", s.Scaffolds)
	p.Fprintf(&buf, "%-27s%d\n", "Total assembled bp:", s.TotalBP)
	p.Fprintf(&buf, "%-27s%d\n", "Longest scaffold:", s.Longest)
	p.Fprintf(&buf, "%-27s%d\n", "Shortest scaffold:", s.Shortest)
	p.Fprintf(&buf, "%-27s%.2f\n", "Mean scaffold size:", s.Mean)
	p.Fprintf(&buf, "%-27s%.2f\n", "Median scaffold size:", s.Median)
	for _, t := range s.Over {
		p.Fprintf(&buf, "%-27s%d\t(%.2f%%)\n", "No. scaffolds > "+size(t.Length)+":", t.Count, t.Percent)
	}
	p.Fprintf(&buf, "%-27s%d\n", "N50 scaffold length:", s.N50)
	p.Fprintf(&buf, "%-27s%d\n", "L50 scaffold count:", s.L50)
	for _, nx := range s.Nx {
		if nx.X == 50 {
			continue
		}
		p.Fprintf(&buf, "%-27s%d\t(L%d: %d)\n", fmt.Sprintf("N%d scaffold length:", nx.X), nx.N, nx.X, nx.L)
	}
	p.Fprintf(&buf, "%-27s%.2f\n", "auN scaffold length:", s.AuN)
	p.Fprintf(&buf, "%-27s%.2f%%\n", "Mean scaffold GC:", s.MeanGC)
	p.Fprintf(&buf, "%-27s%.2f%%\n", "Nuc A:", s.A)
	p.Fprintf(&buf, "%-27s%.2f%%\n", "Nuc T:", s.T)
	p.Fprintf(&buf, "%-27s%.2f%%\n", "Nuc C:", s.C)
	p.Fprintf(&buf, "%-27s%.2f%%\n", "Nuc G:", s.G)
	p.Fprintf(&buf, "%-27s%d\t(%.2f%%)\n", "Nuc ambiguous (Ns):", s.AmbiguousBP, s.Ambiguous)

	p.Fprintf(&buf, "\nProcessing time: %.2f seconds\n", h.Elapsed.Seconds())

	_, err := w.Write(buf.Bytes())
	return err
}

func size(l int) string {
	switch {
	case l >= 1e6 && l%1e6 == 0:
		return fmt.Sprintf("%d Mb", l/1e6)
	case l >= 1e3 && l%1e3 == 0:
		return fmt.Sprintf("%d Kb", l/1e3)
	}
	return fmt.Sprintf("%d bp", l)
}
