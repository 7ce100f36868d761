// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// asmstats calculates statistics of a genome or metagenome assembly from
// a multi-FASTA contig or scaffold file. It writes a report with the number
// and size distribution of the scaffolds, N50 and L50 and the nucleotide
// composition, a per-contig table of length and composition, and optionally
// the filtered contigs and a plot of the Nx curve.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"

	"github.com/biogo/asmstats/asmsum"
	"github.com/biogo/asmstats/ctgtable"
	"github.com/biogo/asmstats/seqread"
)

// config holds the command line settings of a run.
type config struct {
	file   string
	output string

	ctgtable.Options

	report    bool
	datatable bool
	fasta     bool
	plot      bool

	width int
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   "asmstats -i <contigs.fasta> -o <out_dir> [-r] [-d] [-f] [-p]",
		Short: "Assembly statistics for contigs/scaffolds",
		Long: `asmstats assesses the characteristics of an assembly. It reads contigs or
scaffolds from a FASTA file, optionally keeping only those of a minimum length
or the n longest, and writes any of:

  asm_stats/asm-stats_<name>.txt  statistics report
  ctg_stats/ctg-stats_<name>.tsv  per-contig length and composition table
  <name>.fasta                    the retained contigs
  asm_stats/nx-plot_<name>.png    plot of the Nx curve

<name> is the base name of the input file, followed by _gt<length> when a
length filter is used or _top<n> when a top count is used.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.file, "file", "i", "", "contigs/scaffolds FASTA file, may be compressed")
	flags.StringVarP(&cfg.output, "output", "o", "", "output directory")
	flags.IntVarP(&cfg.MinLength, "length", "l", 0, "filter contigs/scaffolds on length (bp)")
	flags.IntVarP(&cfg.TopN, "number", "n", 0, "return top n largest contigs/scaffolds")
	flags.BoolVarP(&cfg.report, "report", "r", false, "create assembly statistics report")
	flags.BoolVarP(&cfg.datatable, "datatable", "d", false, "write data table")
	flags.BoolVarP(&cfg.fasta, "fasta", "f", false, "write FASTA file")
	flags.BoolVarP(&cfg.plot, "plot", "p", false, "plot the Nx curve")
	flags.IntVarP(&cfg.width, "width", "w", 60, "FASTA line width")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func run(cfg config) error {
	if !cfg.report && !cfg.datatable && !cfg.fasta && !cfg.plot {
		log.Println("No options selected. Exit")
		return nil
	}
	if cfg.MinLength < 0 {
		return fmt.Errorf("invalid minimum length: %d", cfg.MinLength)
	}
	if cfg.TopN < 0 {
		return fmt.Errorf("invalid top count: %d", cfg.TopN)
	}
	if cfg.fasta && cfg.width < 1 {
		return fmt.Errorf("invalid FASTA line width: %d", cfg.width)
	}

	start := time.Now()
	r, err := seqread.Open(cfg.file)
	if err != nil {
		return err
	}
	defer r.Close()
	log.Printf("Reading sequences from `%s'.", cfg.file)
	t, err := ctgtable.Build(r, cfg.Options)
	if err != nil {
		return err
	}
	for _, id := range t.Skipped {
		log.Printf("warning: skipped empty sequence %q", id)
	}
	log.Printf("Read %d sequences, kept %d.", r.Count(), t.N())
	if cfg.TopN > 0 && t.N() < cfg.TopN {
		log.Printf("Only %d sequences available for top %d.", t.N(), cfg.TopN)
	}

	name := baseName(cfg.file) + t.Label()
	if cfg.datatable {
		err = create(filepath.Join(cfg.output, "ctg_stats", "ctg-stats_"+name+".tsv"), func(w io.Writer) error {
			return ctgtable.WriteTSV(w, t)
		})
		if err != nil {
			return err
		}
	}
	if cfg.fasta {
		err = writeFASTA(cfg, t, name)
		if err != nil {
			return err
		}
	}
	if !cfg.report && !cfg.plot {
		return nil
	}

	sum, err := asmsum.Summarize(t)
	if err != nil {
		return fmt.Errorf("no statistics for %s: %w", cfg.file, err)
	}
	if cfg.report {
		h := asmsum.Header{
			File:      cfg.file,
			MinLength: cfg.MinLength,
			Date:      time.Now(),
			Elapsed:   time.Since(start),
		}
		if cfg.TopN > 0 {
			h.TopN = t.N()
		}
		err = create(filepath.Join(cfg.output, "asm_stats", "asm-stats_"+name+".txt"), func(w io.Writer) error {
			return asmsum.WriteReport(w, sum, h)
		})
		if err != nil {
			return err
		}
	}
	if cfg.plot {
		wt, err := asmsum.PlotNx(t, name, "png")
		if err != nil {
			return err
		}
		err = create(filepath.Join(cfg.output, "asm_stats", "nx-plot_"+name+".png"), func(w io.Writer) error {
			_, err := wt.WriteTo(w)
			return err
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeFASTA(cfg config, t *ctgtable.Table, name string) error {
	if t.Label() == "" {
		name += "_all"
	}
	src, err := seqread.NewRetriever(cfg.file, t.IDs())
	if err != nil {
		return err
	}
	defer src.Close()
	return create(filepath.Join(cfg.output, name+".fasta"), func(w io.Writer) error {
		return ctgtable.WriteFASTA(w, t, src, cfg.width)
	})
}

// create calls fn with a writer to the named file, creating its directory
// if needed. The file is closed when fn returns.
func create(path string, fn func(io.Writer) error) (err error) {
	err = os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return err
	}
	w, err := xopen.Wopen(path)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer func() {
		cerr := w.Close()
		if err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %q: %w", path, cerr)
		}
	}()
	log.Printf("Writing `%s'.", path)
	return fn(w)
}

// baseName returns the file name of path without directory, compression
// suffix and extension.
func baseName(path string) string {
	if path == "-" {
		return "stdin"
	}
	base := filepath.Base(path)
	for _, ext := range []string{".gz", ".bz2", ".xz", ".zst"} {
		if strings.HasSuffix(base, ext) {
			base = strings.TrimSuffix(base, ext)
			break
		}
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
