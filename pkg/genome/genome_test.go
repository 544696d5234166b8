package genome_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RiccardoKyriacou/GC3-scrips/pkg/clade"
	"github.com/RiccardoKyriacou/GC3-scrips/pkg/gccalc"
	"github.com/RiccardoKyriacou/GC3-scrips/pkg/genome"
	"github.com/RiccardoKyriacou/GC3-scrips/pkg/header"
	"github.com/RiccardoKyriacou/GC3-scrips/pkg/randseq"
	"github.com/RiccardoKyriacou/GC3-scrips/pkg/seq/common"
)

const gname = "Foo_bar-GCA_1.1-cds.fa"

const primIDOnly = `>G1
ATGAAACCAGGGTTT
>G2
ATGGGGCCCGGGAAA
`

const cdsFull = `>T1 cds chromosome:chr1:asm:1:15:1 gene:G1
ATGAAACCAGGGTTT
>T2 cds chromosome:chr1:asm:20:35:1 gene:G2
ATGGGGCCCGGGAAA
`

// setup writes a primary and a cds file in the usual layout and
// returns the prefix to give to Discover.
func setup(t *testing.T, prim, cds string) string {
	base := t.TempDir()
	pdir := filepath.Join(base, "primary")
	if _, err := common.WrtNamed(pdir, gname, prim); err != nil {
		t.Fatal(err)
	}
	if cds != "" {
		if _, err := common.WrtNamed(base, gname, cds); err != nil {
			t.Fatal(err)
		}
	}
	return pdir + string(filepath.Separator)
}

func summarize(t *testing.T, path string, opts genome.Options) (*genome.Summary, error) {
	gg, err := genome.Discover(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(gg) != 1 {
		t.Fatal("expected one genome, got", len(gg))
	}
	opts.Path = path
	return genome.Summarize(gg[0], &opts)
}

// TestTwoGenes is the two gene chromosome. 40 % and 80 % give 60 %.
func TestTwoGenes(t *testing.T) {
	path := setup(t, primIDOnly, cdsFull)
	sum, err := summarize(t, path, genome.Options{Cutoff: 50, MinLen: 10, SkipSpaced: true})
	if err != nil {
		t.Fatal(err)
	}
	if sum.Skipped || sum.Species != "Foo_bar" || sum.Clade != clade.NoClade {
		t.Fatalf("got %+v", sum)
	}
	if len(sum.Chroms) != 1 {
		t.Fatal("want one chromosome, got", len(sum.Chroms))
	}
	c := sum.Chroms[0]
	p, _ := c.Third.Percent()
	if c.Name != "chr1" || c.Third.Len != 10 || c.Third.Genes != 2 || p != 60 {
		t.Fatalf("chromosome got %+v %v", c, p)
	}
	if len(sum.Outliers) != 1 {
		t.Fatal("want one outlier, got", sum.Outliers)
	}
	if got := sum.Outliers[0].String(); got != "Foo_bar\tG2_chr1:asm:20" {
		t.Fatalf("outlier line got %q", got)
	}
	if c.Outliers != 1 || sum.Records != 2 {
		t.Fatal("counts got", c.Outliers, sum.Records)
	}
}

// TestStrict checks both limits are strictly greater than.
func TestStrict(t *testing.T) {
	path := setup(t, primIDOnly, cdsFull)
	for _, opts := range []genome.Options{
		{Cutoff: 80, MinLen: 10}, // GC3 equal to cutoff
		{Cutoff: 50, MinLen: 15}, // length equal to minimum
	} {
		sum, err := summarize(t, path, opts)
		if err != nil {
			t.Fatal(err)
		}
		if len(sum.Outliers) != 0 {
			t.Error("options", opts.Cutoff, opts.MinLen, "gave", sum.Outliers)
		}
	}
}

func TestNoATG(t *testing.T) {
	prim := ">G1\natgGGGCCCGGGAAA\n>G2\nCCCGGGCCCGGGAAA\n"
	path := setup(t, prim, cdsFull)
	sum, err := summarize(t, path, genome.Options{Cutoff: 10, MinLen: 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(sum.Outliers) != 2 {
		t.Fatal("want two outliers got", sum.Outliers)
	}
	for _, o := range sum.Outliers {
		if !o.NoATG {
			t.Error("should be flagged", o)
		}
	}
	want := "Foo_bar\tG1_chr1:asm:1\t" + genome.NoATG
	if got := sum.Outliers[0].String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

// TestSpacedFirstLine checks the first line heuristic in both settings.
func TestSpacedFirstLine(t *testing.T) {
	path := setup(t, cdsFull, cdsFull)
	sum, err := summarize(t, path, genome.Options{SkipSpaced: true})
	if err != nil {
		t.Fatal(err)
	}
	if !sum.Skipped || len(sum.Chroms) != 0 {
		t.Fatal("should have skipped", sum)
	}
	sum, err = summarize(t, path, genome.Options{Cutoff: 100})
	if err != nil {
		t.Fatal(err)
	}
	if sum.Skipped || len(sum.Chroms) != 1 || sum.Chroms[0].Third.Genes != 2 {
		t.Fatalf("should have read directly, got %+v", sum)
	}
}

func TestErrors(t *testing.T) {
	path := setup(t, primIDOnly, "")
	if _, err := summarize(t, path, genome.Options{}); !errors.Is(err, genome.ErrNoCDS) {
		t.Error("missing cds got", err)
	}

	path = setup(t, primIDOnly, cdsFull)
	opts := genome.Options{Clades: clade.Map{"Other": "X"}}
	if _, err := summarize(t, path, opts); !errors.Is(err, clade.ErrNoClade) {
		t.Error("missing clade got", err)
	}

	path = setup(t, ">G1\nAT\n", cdsFull)
	if _, err := summarize(t, path, genome.Options{}); !errors.Is(err, gccalc.ErrEmpty) {
		t.Error("two base gene got", err)
	}

	path = setup(t, ">G1\nATGAAA\n", ">T1 cds\nATG\n")
	if _, err := summarize(t, path, genome.Options{}); !errors.Is(err, header.ErrNoGeneID) {
		t.Error("cds without gene got", err)
	}
}

// TestUnresolved checks a gene with no chromosome stops the genome,
// unless we ask to skip it.
func TestUnresolved(t *testing.T) {
	prim := primIDOnly + ">G3\nATGCCC\n"
	path := setup(t, prim, cdsFull)
	if _, err := summarize(t, path, genome.Options{}); !errors.Is(err, header.ErrUnresolved) {
		t.Fatal("unresolved got", err)
	}
	sum, err := summarize(t, path, genome.Options{SkipUnresolved: true})
	if err != nil {
		t.Fatal(err)
	}
	if sum.Unresolved != 1 || sum.Chroms[0].Third.Genes != 2 || sum.Records != 3 {
		t.Fatalf("got %+v", sum)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.fa", "b.fasta", "c.fas", "d.fna", "e.txt", "f.fa.gz", "._a.fa", ".h.fa"} {
		if _, err := common.WrtNamed(dir, n, ">x\nACG\n"); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "g.fa"), 0o755); err != nil {
		t.Fatal(err)
	}
	gg, err := genome.Discover(dir + "/")
	if err != nil {
		t.Fatal(err)
	}
	if len(gg) != 4 {
		t.Fatal("want 4 genomes, got", gg)
	}
	for _, g := range gg {
		if strings.HasPrefix(g.Name, ".") {
			t.Fatal("hidden file listed", g.Name)
		}
	}
	gg, _ = genome.Discover(filepath.Join(dir, "b"))
	if len(gg) != 1 || gg[0].Species != "b" {
		t.Fatal("prefix b got", gg)
	}
	// asking for dot files by name gets them
	gg, _ = genome.Discover(filepath.Join(dir, ".h"))
	if len(gg) != 1 || gg[0].Name != ".h.fa" {
		t.Fatal("prefix .h got", gg)
	}
}

func TestCDSPath(t *testing.T) {
	path := setup(t, primIDOnly, cdsFull)
	gg, _ := genome.Discover(path)
	got, err := genome.CDSPath(path, gg[0])
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(filepath.Dir(filepath.Dir(path)), gname)
	if got != want {
		t.Fatal("got", got, "want", want)
	}
	// no "primary" in the path, so the file is its own partner
	dir := t.TempDir() + "/"
	common.WrtNamed(dir, gname, primIDOnly)
	if got, err := genome.CDSPath(dir, genome.New(dir+gname)); err != nil || got != dir+gname {
		t.Fatal("got", got, err)
	}
	// a file name that globs to two files
	common.WrtNamed(dir, "x1.fa", "")
	common.WrtNamed(dir, "x2.fa", "")
	if _, err := genome.CDSPath(dir, genome.New(dir+"x?.fa")); !errors.Is(err, genome.ErrAmbiguousCDS) {
		t.Fatal("two matches got", err)
	}
}

// TestRandomGenome compares the chromosome totals with a sum over
// genes for a generated genome.
func TestRandomGenome(t *testing.T) {
	base := t.TempDir()
	pdir := filepath.Join(base, "primary")
	os.Mkdir(pdir, 0o755)
	pf, err := os.Create(filepath.Join(pdir, gname))
	if err != nil {
		t.Fatal(err)
	}
	cf, err := os.Create(filepath.Join(base, gname))
	if err != nil {
		t.Fatal(err)
	}
	args := randseq.RandSeqArgs{Iseed: 3, Wrtr: pf, CdsWrtr: cf, Asm: "asm", Nseq: 300, Len: 301, NChrom: 4, IDOnly: true}
	if err := randseq.RandSeqMain(&args); err != nil {
		t.Fatal(err)
	}
	pf.Close()
	cf.Close()

	nrec := 0
	opts := genome.Options{Cutoff: 50, MinLen: 300, OnRecord: func() { nrec++ }}
	sum, err := summarize(t, pdir+"/", opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(sum.Chroms) != 4 || nrec != args.Nseq {
		t.Fatal("chromosomes", len(sum.Chroms), "records", nrec)
	}
	for i, c := range sum.Chroms {
		if c.Name != randseq.ChromName(i) {
			t.Error("chromosome order got", c.Name, "want", randseq.ChromName(i))
		}
		var gc, n int
		for _, g := range c.Genes {
			gc += int(g.GC3/100*float64(g.N) + 0.5)
			n += g.N
		}
		if gc != c.Third.GC || n != c.Third.Len || len(c.Genes) != c.Third.Genes {
			t.Error(c.Name, "gene sums", gc, n, "chromosome", c.Third)
		}
		if c.Pos[2] != (gccalc.Count{GC: c.Third.GC, N: c.Third.Len}) {
			t.Error("third position tally disagrees", c.Pos[2], c.Third)
		}
	}
}

// TestMinLenUnset fails on the first gene, but not on a skipped genome.
func TestMinLenUnset(t *testing.T) {
	path := setup(t, primIDOnly, cdsFull)
	if _, err := summarize(t, path, genome.Options{MinLenUnset: true}); !errors.Is(err, genome.ErrNoMinLen) {
		t.Fatal("wanted ErrNoMinLen, got", err)
	}
	path = setup(t, cdsFull, cdsFull)
	sum, err := summarize(t, path, genome.Options{MinLenUnset: true, SkipSpaced: true})
	if err != nil || !sum.Skipped {
		t.Fatal("skipped genome got", sum, err)
	}
}
