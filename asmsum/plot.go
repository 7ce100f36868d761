// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asmsum

import (
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/biogo/asmstats/ctgtable"
)

// NxCurve returns the Nx length for x from 0 to 100 percent.
// lengths must be sorted in decreasing order.
func NxCurve(lengths []int) plotter.XYs {
	var total int
	for _, l := range lengths {
		total += l
	}
	xy := make(plotter.XYs, 101)
	for x := range xy {
		n, _ := Nx(lengths, total, x)
		xy[x].X = float64(x)
		xy[x].Y = float64(n)
	}
	return xy
}

// PlotNx returns a rendering of the Nx curve of t in the given image
// format, one of the formats accepted by plot.Plot.WriterTo such as
// "png", "svg" or "pdf".
func PlotNx(t *ctgtable.Table, title, format string) (io.WriterTo, error) {
	if t.N() == 0 {
		return nil, ctgtable.ErrEmptyResult
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (%)"
	p.Y.Label.Text = "Nx (bp)"
	p.X.Min = 0
	p.X.Max = 100

	l, err := plotter.NewLine(NxCurve(t.Lengths()))
	if err != nil {
		return nil, err
	}
	p.Add(plotter.NewGrid(), l)

	return p.WriterTo(6*vg.Inch, 4*vg.Inch, format)
}
