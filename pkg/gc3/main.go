// Package gc3 runs the whole calculation. Genomes are visited one at
// a time in the order they are listed. Each genome's lines are
// written as soon as it is finished, so the first error stops the run
// but leaves the earlier genomes in the output.
package gc3

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/RiccardoKyriacou/GC3-scrips/pkg/clade"
	"github.com/RiccardoKyriacou/GC3-scrips/pkg/genome"
	"github.com/RiccardoKyriacou/GC3-scrips/pkg/seq"
	"gopkg.in/cheggaaa/pb.v1"
)

var (
	Info = log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime)
	Warn = log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime)
)

// ErrNoMinLen says the outlier length limit was never given. It only
// comes back once a gene has to be tested, so a run where every genome
// is skipped still works.
var ErrNoMinLen = genome.ErrNoMinLen

// CmdFlag is literally command line flags after parsing, merged with
// the config file.
type CmdFlag struct {
	Path           string // prefix of primary fasta files
	Cutoff         int    // GC3 percent for outliers
	Outfile        string // per chromosome summary
	Info           string // species to clade file, optional
	MinLen         int    // outliers must be longer than this
	MinLenSet      bool   // MinLen was given
	OutlierFile    string // defaults to OutlierName(Cutoff)
	ChromStats     string // optional statistics per chromosome
	Positions      string // optional GC1, GC2, GC3 per chromosome
	PlotDir        string // optional directory for histograms
	SkipSpaced     bool   // skip genomes whose first line has a space
	SkipUnresolved bool   // drop genes with no chromosome, do not stop
	Progress       bool   // progress bar on stderr
	Stdout         io.Writer
}

// OutlierName is the default name of the outlier file.
func OutlierName(cutoff int) string {
	return "outlier_GC3_" + strconv.Itoa(cutoff) + ".tsv"
}

// startBar sets up a progress bar over all primary records.
func startBar(genomes []genome.Genome) (*pb.ProgressBar, error) {
	total := 0
	for _, g := range genomes {
		n, err := seq.CountRecords(g.Path)
		if err != nil {
			return nil, err
		}
		total += n
	}
	bar := pb.New(total)
	bar.Output = os.Stderr
	bar.Start()
	return bar, nil
}

// Mymain is the main function for calculating GC3 and writing the
// tables.
func Mymain(flags *CmdFlag) (err error) {
	stdout := flags.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	if flags.OutlierFile == "" {
		flags.OutlierFile = OutlierName(flags.Cutoff)
	}

	var clades clade.Map
	if flags.Info != "" {
		if clades, err = clade.ReadFile(flags.Info); err != nil {
			return err
		}
	}

	genomes, err := genome.Discover(flags.Path)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Calculating GC3 content for", len(genomes), "genomes...")
	fmt.Fprintln(stdout)

	out, err := openOutputs(flags)
	if err != nil {
		return err
	}
	defer func() {
		if e := out.close(); err == nil {
			err = e
		}
	}()

	opts := &genome.Options{
		Path:           flags.Path,
		Cutoff:         flags.Cutoff,
		MinLen:         flags.MinLen,
		MinLenUnset:    !flags.MinLenSet,
		Clades:         clades,
		SkipSpaced:     flags.SkipSpaced,
		SkipUnresolved: flags.SkipUnresolved,
		Info:           Info,
		Warn:           Warn,
	}
	if flags.Progress {
		bar, err := startBar(genomes)
		if err != nil {
			return err
		}
		defer bar.Finish()
		opts.OnRecord = func() { bar.Increment() }
	}

	nDone := 0
	for _, g := range genomes {
		fmt.Fprintln(stdout, g.Species)
		sum, err := genome.Summarize(g, opts)
		if err != nil {
			return err
		}
		if sum.Skipped {
			continue
		}
		if err = out.write(sum, flags); err != nil {
			return err
		}
		if sum.Unresolved > 0 {
			Warn.Printf("%s: %d genes without a chromosome were left out", sum.Species, sum.Unresolved)
		}
		nDone++
	}
	Info.Printf("%d of %d genomes written to %s", nDone, len(genomes), flags.Outfile)
	return nil
}
