// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/RiccardoKyriacou/GC3-scrips/pkg/randseq"
	. "github.com/RiccardoKyriacou/GC3-scrips/pkg/seq/common"
)

// create makes the file and any directory it needs.
func create(fname string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(fname), 0o755); err != nil {
		return nil, err
	}
	return os.Create(fname)
}

func main() {
	f := flag.NewFlagSet("randseq", flag.ExitOnError)
	const iseed int64 = 1637
	var args randseq.RandSeqArgs

	f.StringVar(&args.Asm, "a", "Rand1.0", "assembly name for headers")
	f.BoolVar(&args.IDOnly, "i", false, "primary headers only have the gene ID")
	f.IntVar(&args.NChrom, "c", 1, "number of chromosomes")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Too few args\nrandseq [..] dir/Species_name-asm.fa nseq length")
		f.Usage()
		os.Exit(ExitUsageError)
	}

	const emsg = "Failed converting %s to positive integer"
	if nseq, err := strconv.ParseUint(f.Args()[1], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Args()[1])
		os.Exit(ExitFailure)
	} else {
		args.Nseq = int(nseq)
	}
	if nlen, err := strconv.ParseUint(f.Args()[2], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Args()[2])
		os.Exit(ExitFailure)
	} else {
		args.Len = int(nlen)
	}

	// dir/primary/name gets the primary file, dir/name the cds file
	dir, name := filepath.Split(f.Args()[0])
	fprim, err := create(filepath.Join(dir, "primary", name))
	if err != nil {
		fmt.Fprintln(os.Stderr, "File for output:", err)
		os.Exit(ExitFailure)
	}
	defer fprim.Close()
	fcds, err := create(filepath.Join(dir, name))
	if err != nil {
		fmt.Fprintln(os.Stderr, "File for output:", err)
		os.Exit(ExitFailure)
	}
	defer fcds.Close()
	args.Wrtr, args.CdsWrtr = fprim, fcds

	if err := randseq.RandSeqMain(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
}
