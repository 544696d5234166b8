// 19 Oct 2026

package main

import (
	"fmt"
	"os"

	"github.com/RiccardoKyriacou/GC3-scrips/pkg/gc3"
	. "github.com/RiccardoKyriacou/GC3-scrips/pkg/seq/common"
	"github.com/spf13/viper"
	"gopkg.in/alecthomas/kingpin.v2"
)

// setByUser remembers which flags were on the command line, so the
// config file only fills the rest.
type setByUser map[string]bool

func (s setByUser) mark(name string) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		s[name] = true
		return nil
	}
}

// fromConfig copies values from the config file into flags that were
// not given on the command line.
func fromConfig(fname string, set setByUser, flags *gc3.CmdFlag) error {
	v := viper.New()
	v.SetConfigFile(fname)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config file %s: %w", fname, err)
	}
	str := map[string]*string{
		"path":         &flags.Path,
		"outfile":      &flags.Outfile,
		"info":         &flags.Info,
		"outlier-file": &flags.OutlierFile,
		"chrom-stats":  &flags.ChromStats,
		"positions":    &flags.Positions,
		"plot-dir":     &flags.PlotDir,
	}
	ints := map[string]*int{
		"cutoff":      &flags.Cutoff,
		"nucleotides": &flags.MinLen,
	}
	bools := map[string]*bool{
		"skip-spaced-header": &flags.SkipSpaced,
		"skip-unresolved":    &flags.SkipUnresolved,
		"progress":           &flags.Progress,
	}
	for k, p := range str {
		if !set[k] && v.IsSet(k) {
			*p = v.GetString(k)
			set[k] = true
		}
	}
	for k, p := range ints {
		if !set[k] && v.IsSet(k) {
			*p = v.GetInt(k)
			set[k] = true
		}
	}
	for k, p := range bools {
		if !set[k] && v.IsSet(k) {
			*p = v.GetBool(k)
			set[k] = true
		}
	}
	return nil
}

// required are the flags which must come from the command line or
// the config file.
var required = []string{"path", "cutoff", "outfile"}

// missing lists required flags which were given nowhere.
func (s setByUser) missing() []string {
	var m []string
	for _, k := range required {
		if !s[k] {
			m = append(m, "--"+k)
		}
	}
	return m
}

func main() {
	var flags gc3.CmdFlag
	var config string
	set := make(setByUser)

	app := kingpin.New("gc3", "GC content at third codon positions, per chromosome")
	app.Flag("path", "prefix of primary fasta files").Short('p').
		Action(set.mark("path")).StringVar(&flags.Path)
	app.Flag("cutoff", "GC3 percent for outliers").Short('c').
		Action(set.mark("cutoff")).IntVar(&flags.Cutoff)
	app.Flag("outfile", "per chromosome output file").Short('o').
		Action(set.mark("outfile")).StringVar(&flags.Outfile)
	app.Flag("info", "species to clade file").Short('i').
		Action(set.mark("info")).StringVar(&flags.Info)
	app.Flag("nucleotides", "minimum length of outlier genes").Short('n').
		Action(set.mark("nucleotides")).IntVar(&flags.MinLen)
	app.Flag("outlier-file", "outlier file, default outlier_GC3_<cutoff>.tsv").
		Action(set.mark("outlier-file")).StringVar(&flags.OutlierFile)
	app.Flag("chrom-stats", "per chromosome statistics file").
		Action(set.mark("chrom-stats")).StringVar(&flags.ChromStats)
	app.Flag("positions", "GC1 GC2 GC3 per chromosome file").
		Action(set.mark("positions")).StringVar(&flags.Positions)
	app.Flag("plot-dir", "directory for GC3 histograms").
		Action(set.mark("plot-dir")).StringVar(&flags.PlotDir)
	app.Flag("skip-spaced-header", "skip genomes whose first line has a space").Default("true").
		Action(set.mark("skip-spaced-header")).BoolVar(&flags.SkipSpaced)
	app.Flag("skip-unresolved", "leave out genes with no chromosome").
		Action(set.mark("skip-unresolved")).BoolVar(&flags.SkipUnresolved)
	app.Flag("progress", "show progress").
		Action(set.mark("progress")).BoolVar(&flags.Progress)
	app.Flag("config", "config file").StringVar(&config)

	if _, err := app.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		app.Usage(os.Args[1:])
		os.Exit(ExitUsageError)
	}
	if config != "" {
		if err := fromConfig(config, set, &flags); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(ExitUsageError)
		}
	}
	if missing := set.missing(); len(missing) > 0 {
		fmt.Fprintln(os.Stderr, "required but not given:", missing)
		app.Usage(os.Args[1:])
		os.Exit(ExitUsageError)
	}

	flags.MinLenSet = set["nucleotides"]

	if err := gc3.Mymain(&flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	} else {
		os.Exit(ExitSuccess)
	}
}
