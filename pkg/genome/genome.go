// Package genome works out GC3 for one assembly at a time. Each
// call to Summarize starts from nothing and hands back everything it
// found, so nothing is carried from one genome to the next.
package genome

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/RiccardoKyriacou/GC3-scrips/pkg/clade"
	"github.com/RiccardoKyriacou/GC3-scrips/pkg/gccalc"
	"github.com/RiccardoKyriacou/GC3-scrips/pkg/header"
	"github.com/RiccardoKyriacou/GC3-scrips/pkg/seq"
)

// NoATG marks outliers that do not start with ATG.
const NoATG = "No_ATG_StartCodon"

// ErrNoMinLen says a gene had to be tested against the length limit,
// but no limit was given.
var ErrNoMinLen = errors.New("minimum outlier length (nucleotides) not set")

// Options are the choices passed in from the caller.
type Options struct {
	Path           string    // prefix used to find the genomes, needed for cds files
	Cutoff         int       // GC3 percent above which a gene is an outlier
	MinLen         int       // and the gene must be longer than this
	MinLenUnset    bool      // MinLen was never given, fail on the first gene
	Clades         clade.Map // nil if there is no species file
	SkipSpaced     bool      // skip genomes whose first line has a space
	SkipUnresolved bool      // warn and carry on if a gene has no chromosome
	Info           *log.Logger
	Warn           *log.Logger
	OnRecord       func() // called for every primary record, for progress
}

// Outlier is a gene that is long enough and has high GC3.
type Outlier struct {
	Species string
	Header  string
	Info    string // location, see header.Location
	NoATG   bool
}

// String gives the line for the outlier file, without a newline.
func (o Outlier) String() string {
	s := o.Species + "\t" + o.Header + "_" + o.Info
	if o.NoATG {
		s += "\t" + NoATG
	}
	return s
}

// Gene is what we keep for each gene for the statistics.
type Gene struct {
	ID  string
	GC3 float64 // percent
	N   int     // number of third positions
}

// Chrom holds the tallies for one chromosome or scaffold.
type Chrom struct {
	Name     string
	Third    gccalc.Accum
	Pos      gccalc.Positions
	Genes    []Gene
	Outliers int
}

// Summary is everything we learnt about one genome.
type Summary struct {
	Species    string
	Clade      string
	Skipped    bool     // first line had a space, nothing was read
	Chroms     []*Chrom // in the order first seen
	Outliers   []Outlier
	Records    int // primary records read
	Unresolved int // genes dropped since they had no chromosome
}

// chromSet keeps chromosomes in the order they are first seen.
type chromSet struct {
	ndx    map[string]int
	chroms []*Chrom
}

func (cs *chromSet) get(name string) *Chrom {
	if cs.ndx == nil {
		cs.ndx = make(map[string]int)
	}
	if i, ok := cs.ndx[name]; ok {
		return cs.chroms[i]
	}
	c := &Chrom{Name: name}
	cs.ndx[name] = len(cs.chroms)
	cs.chroms = append(cs.chroms, c)
	return c
}

func logf(l *log.Logger, format string, v ...interface{}) {
	if l != nil {
		l.Printf(format, v...)
	}
}

// spacedHeader looks at the raw first line of the file.
func spacedHeader(fname string) (bool, error) {
	first, err := seq.FirstLine(fname)
	if err != nil {
		return false, err
	}
	return strings.Contains(first, " "), nil
}

// readIndex reads the cds file and indexes headers by gene.
func readIndex(cdsPath string) (header.Index, error) {
	ix := make(header.Index)
	err := seq.Readfile(cdsPath, func(r seq.Record) error {
		return ix.Add(r.Header())
	})
	return ix, err
}

// Summarize reads one genome and its cds file and collects GC3 for
// each chromosome, along with the outliers.
func Summarize(g Genome, opts *Options) (*Summary, error) {
	var err error
	sum := &Summary{Species: g.Species}
	if sum.Clade, err = opts.Clades.Lookup(g.Species); err != nil {
		return nil, err
	}

	if opts.SkipSpaced {
		if spaced, err := spacedHeader(g.Path); err != nil {
			return nil, fmt.Errorf("first line of %s: %w", g.Path, err)
		} else if spaced {
			logf(opts.Info, "skipping %s, first line has a space", g.Name)
			sum.Skipped = true
			return sum, nil
		}
	}

	cdsPath, err := CDSPath(opts.Path, g)
	if err != nil {
		return nil, err
	}
	ix, err := readIndex(cdsPath)
	if err != nil {
		return nil, err
	}

	var cs chromSet
	cutoff := float64(opts.Cutoff)
	err = seq.Readfile(g.Path, func(r seq.Record) error {
		if opts.OnRecord != nil {
			opts.OnRecord()
		}
		sum.Records++
		if opts.MinLenUnset {
			return ErrNoMinLen
		}
		h := r.Header()
		loc, err := ix.Resolve(r.ID, h)
		if err != nil {
			if opts.SkipUnresolved && errors.Is(err, header.ErrUnresolved) {
				logf(opts.Warn, "%s: %v", g.Species, err)
				sum.Unresolved++
				return nil
			}
			return err
		}
		gc, n := gccalc.GC3(r.Seq)
		pct, err := gccalc.Percent(gc, n)
		if err != nil {
			return fmt.Errorf("gene %s: %w", r.ID, err)
		}

		c := cs.get(loc.Chrom)
		if r.Len() > opts.MinLen && pct > cutoff {
			sum.Outliers = append(sum.Outliers, Outlier{
				Species: g.Species,
				Header:  h,
				Info:    loc.Info,
				NoATG:   !r.StartsATG(),
			})
			c.Outliers++
		}
		c.Third.Add(gc, n)
		c.Pos.Add(gccalc.CountPositions(r.Seq))
		c.Genes = append(c.Genes, Gene{ID: r.ID, GC3: pct, N: n})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.Species, err)
	}
	sum.Chroms = cs.chroms
	return sum, nil
}
