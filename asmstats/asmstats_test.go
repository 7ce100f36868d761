// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shenwei356/xopen"
	"gopkg.in/check.v1"

	"github.com/biogo/asmstats/ctgtable"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const contigs = `>ctg1 cov=1.0
` + "ACGTACGTAC" + `
>ctg2 cov=2.0
acgtacgtacgtacgtacgtacgtacgtacgtacgtacgt
>ctg3
GGGGGGGGGGGGGGGGGGGGGGGGGGGGGG
>ctg4
NNNNNNNNNNNNNNNNNNNN
`

func (s *S) writeInput(c *check.C, data string) string {
	path := filepath.Join(c.MkDir(), "contigs.fasta")
	c.Assert(ioutil.WriteFile(path, []byte(data), 0o644), check.Equals, nil)
	return path
}

func readFile(c *check.C, path string) string {
	b, err := ioutil.ReadFile(path)
	c.Assert(err, check.Equals, nil)
	return string(b)
}

func (s *S) TestRunAll(c *check.C) {
	in := s.writeInput(c, contigs)
	out := c.MkDir()
	err := run(config{
		file:      in,
		output:    out,
		report:    true,
		datatable: true,
		fasta:     true,
		plot:      true,
		width:     60,
	})
	c.Assert(err, check.Equals, nil)

	c.Check(readFile(c, filepath.Join(out, "ctg_stats", "ctg-stats_contigs.tsv")), check.Equals, ""+
		"contig_id\tsize\tgc\ta\tt\tc\tg\tn_ambiguous\n"+
		"ctg2\t40\t50.00\t10\t10\t10\t10\t0\n"+
		"ctg3\t30\t100.00\t0\t0\t0\t30\t0\n"+
		"ctg4\t20\t0.00\t0\t0\t0\t0\t20\n"+
		"ctg1\t10\t50.00\t3\t2\t3\t2\t0\n")

	report := readFile(c, filepath.Join(out, "asm_stats", "asm-stats_contigs.txt"))
	for _, want := range []string{
		"File: " + in + "\n",
		"Number of scaffolds:       4\n",
		"Total assembled bp:        100\n",
		"N50 scaffold length:       30\n",
		"L50 scaffold count:        2\n",
		"Mean scaffold GC:          50.00%\n",
		"Nuc ambiguous (Ns):        20\t(20.00%)\n",
	} {
		c.Check(strings.Contains(report, want), check.Equals, true, check.Commentf("missing %q in:\n%s", want, report))
	}
	c.Check(strings.Contains(report, "Filter:"), check.Equals, false)

	c.Check(readFile(c, filepath.Join(out, "contigs_all.fasta")), check.Equals, ""+
		">ctg2 cov=2.0\nacgtacgtacgtacgtacgtacgtacgtacgtacgtacgt\n"+
		">ctg3\nGGGGGGGGGGGGGGGGGGGGGGGGGGGGGG\n"+
		">ctg4\nNNNNNNNNNNNNNNNNNNNN\n"+
		">ctg1 cov=1.0\nACGTACGTAC\n")

	fi, err := os.Stat(filepath.Join(out, "asm_stats", "nx-plot_contigs.png"))
	c.Assert(err, check.Equals, nil)
	c.Check(fi.Size() > 0, check.Equals, true)
}

func (s *S) TestRunFiltered(c *check.C) {
	in := s.writeInput(c, contigs)
	out := c.MkDir()
	cmd := newCommand()
	cmd.SetArgs([]string{"-i", in, "-o", out, "-l", "25", "-d", "-f", "-r", "-w", "10"})
	c.Assert(cmd.Execute(), check.Equals, nil)

	c.Check(readFile(c, filepath.Join(out, "ctg_stats", "ctg-stats_contigs_gt25.tsv")), check.Equals, ""+
		"contig_id\tsize\tgc\ta\tt\tc\tg\tn_ambiguous\n"+
		"ctg2\t40\t50.00\t10\t10\t10\t10\t0\n"+
		"ctg3\t30\t100.00\t0\t0\t0\t30\t0\n")
	c.Check(readFile(c, filepath.Join(out, "contigs_gt25.fasta")), check.Equals, ""+
		">ctg2 cov=2.0\nacgtacgtac\ngtacgtacgt\nacgtacgtac\ngtacgtacgt\n"+
		">ctg3\nGGGGGGGGGG\nGGGGGGGGGG\nGGGGGGGGGG\n")
	report := readFile(c, filepath.Join(out, "asm_stats", "asm-stats_contigs_gt25.txt"))
	c.Check(strings.Contains(report, "Filter: excluded contigs < 25 bp\n"), check.Equals, true)
	c.Check(strings.Contains(report, "N50 scaffold length:       40\n"), check.Equals, true)
}

func (s *S) TestRunTopN(c *check.C) {
	in := s.writeInput(c, contigs)
	out := c.MkDir()
	err := run(config{file: in, output: out, Options: ctgtable.Options{TopN: 10}, report: true, datatable: true})
	c.Assert(err, check.Equals, nil)

	tsv := readFile(c, filepath.Join(out, "ctg_stats", "ctg-stats_contigs_top4.tsv"))
	c.Check(strings.Count(tsv, "\n"), check.Equals, 5)
	report := readFile(c, filepath.Join(out, "asm_stats", "asm-stats_contigs_top4.txt"))
	c.Check(strings.Contains(report, "Filter: stats for top 4 largest contigs/scaffolds\n"), check.Equals, true)
}

func (s *S) TestRunEmpty(c *check.C) {
	packed := filepath.Join(c.MkDir(), "contigs.fa.gz")
	w, err := xopen.Wopen(packed)
	c.Assert(err, check.Equals, nil)
	c.Assert(w.Close(), check.Equals, nil)

	for _, in := range []string{s.writeInput(c, ""), packed} {
		out := c.MkDir()
		err := run(config{file: in, output: out, report: true, datatable: true, fasta: true, width: 60})
		c.Check(errors.Is(err, ctgtable.ErrEmptyResult), check.Equals, true, check.Commentf("%s: %v", in, err))

		c.Check(readFile(c, filepath.Join(out, "ctg_stats", "ctg-stats_contigs.tsv")), check.Equals,
			"contig_id\tsize\tgc\ta\tt\tc\tg\tn_ambiguous\n")
		c.Check(readFile(c, filepath.Join(out, "contigs_all.fasta")), check.Equals, "")
		_, err = os.Stat(filepath.Join(out, "asm_stats"))
		c.Check(os.IsNotExist(err), check.Equals, true)
	}
}

func (s *S) TestRunNothingSelected(c *check.C) {
	out := c.MkDir()
	c.Check(run(config{file: "missing.fa", output: out}), check.Equals, nil)
	entries, err := ioutil.ReadDir(out)
	c.Assert(err, check.Equals, nil)
	c.Check(entries, check.HasLen, 0)
}

func (s *S) TestRunErrors(c *check.C) {
	out := c.MkDir()
	c.Check(run(config{file: filepath.Join(out, "missing.fa"), output: out, report: true}), check.NotNil)
	c.Check(run(config{file: "x.fa", output: out, report: true, Options: ctgtable.Options{MinLength: -1}}), check.NotNil)
	c.Check(run(config{file: "x.fa", output: out, fasta: true}), check.NotNil)

	in := s.writeInput(c, ">ctg1\nACGT\n>\nACGT\n")
	c.Check(run(config{file: in, output: out, datatable: true}), check.NotNil)
}

func (s *S) TestBaseName(c *check.C) {
	for _, t := range []struct {
		path, want string
	}{
		{"contigs.fasta", "contigs"},
		{"/data/asm/final.contigs.fa", "final.contigs"},
		{"scaffolds.fa.gz", "scaffolds"},
		{"scaffolds.fasta.zst", "scaffolds"},
		{"scaffolds", "scaffolds"},
		{"-", "stdin"},
	} {
		c.Check(baseName(t.path), check.Equals, t.want, check.Commentf("%s", t.path))
	}
}
