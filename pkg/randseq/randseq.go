// 31 July 2020, coding sequences 2024

// Package randseq writes random coding sequences with cds style
// headers. It is for testing and benchmarks, so we can make a genome
// of any size without shipping data files.
package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
)

const lineLen = 60 // fasta line width on output

var letters = []byte{'A', 'C', 'G', 'T'}

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed   int64     // random number seed
	Wrtr    io.Writer // primary file goes here
	CdsWrtr io.Writer // cds file goes here, may be nil
	Asm     string    // assembly name, in every header
	Nseq    int       // number of genes
	Len     int       // length of each gene in bases
	NChrom  int       // genes are spread over this many chromosomes
	IDOnly  bool      // primary headers only have the gene identifier
}

// gene is one sequence ready for writing.
type gene struct {
	n     int // gene number from 1
	chrom int
	seq   []byte
}

// getseq returns a byte slice with a random coding sequence, starting
// with ATG.
func getseq(seqlen int, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	for i := range ret {
		ret[i] = letters[rnd.Intn(len(letters))]
	}
	copy(ret, "ATG")
	return ret
}

// ChromName gives the name of chromosome i.
func ChromName(i int) string { return fmt.Sprintf("chr%d", i+1) }

// GeneID gives the gene identifier for gene n.
func GeneID(n int) string { return fmt.Sprintf("G%06d", n) }

// CdsHeader is the full header used for gene n.
func CdsHeader(asm string, n, chrom, seqlen int) string {
	start := n * 1000
	return fmt.Sprintf("T%06d.1 cds scaffold:%s:%s:%d:%d:1 gene:%s transcript:T%06d.1",
		n, ChromName(chrom), asm, start, start+seqlen-1, GeneID(n), n)
}

// writeOne writes a header and the sequence in lines of lineLen.
func writeOne(w io.Writer, hdr string, s []byte) error {
	if _, err := fmt.Fprintf(w, ">%s\n", hdr); err != nil {
		return err
	}
	for ; len(s) > lineLen; s = s[lineLen:] {
		if _, err := fmt.Fprintf(w, "%s\n", s[:lineLen]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\n", s)
	return err
}

// writeseq reads genes from the channel and writes them out. The first
// error is kept and later genes are drained without writing.
func writeseq(gChan <-chan gene, args *RandSeqArgs, wg *sync.WaitGroup, err *error) {
	defer wg.Done()
	for g := range gChan {
		if *err != nil {
			continue
		}
		full := CdsHeader(args.Asm, g.n, g.chrom, len(g.seq))
		hdr := full
		if args.IDOnly {
			hdr = GeneID(g.n)
		}
		if *err = writeOne(args.Wrtr, hdr, g.seq); *err != nil {
			continue
		}
		if args.CdsWrtr != nil {
			*err = writeOne(args.CdsWrtr, full, g.seq)
		}
	}
}

// RandSeqMain writes random genes to the writers in args.
func RandSeqMain(args *RandSeqArgs) error {
	if args.Len < 3 {
		return fmt.Errorf("gene length %d too short for a codon", args.Len)
	}
	nChrom := args.NChrom
	if nChrom < 1 {
		nChrom = 1
	}
	var wg sync.WaitGroup
	var err error
	rnd := rand.New(rand.NewSource(args.Iseed))
	gChan := make(chan gene)
	wg.Add(1)
	go writeseq(gChan, args, &wg, &err)
	for i := 0; i < args.Nseq; i++ {
		gChan <- gene{n: i + 1, chrom: i % nChrom, seq: getseq(args.Len, rnd)}
	}
	close(gChan)
	wg.Wait()
	return err
}
