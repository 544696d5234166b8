// Statistics over the genes on each chromosome.

package report

import (
	"fmt"
	"io"
	"math"

	"github.com/RiccardoKyriacou/GC3-scrips/pkg/genome"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// ChromStats are the numbers for one chromosome.
type ChromStats struct {
	Name     string
	Genes    int
	Mean     float64 // weighted by third position length
	SD       float64 // of gene GC3, NaN with fewer than two genes
	Median   float64
	Outliers int
}

// CalcChromStats goes over the genes of one chromosome.
// The weighted mean is the same number as the chromosome GC3 in the
// summary, apart from rounding.
func CalcChromStats(c *genome.Chrom) (ChromStats, error) {
	cs := ChromStats{Name: c.Name, Genes: len(c.Genes), Outliers: c.Outliers, SD: math.NaN()}
	if len(c.Genes) == 0 {
		return cs, fmt.Errorf("chromosome %s has no genes", c.Name)
	}
	pcts := make([]float64, len(c.Genes))
	weights := make([]float64, len(c.Genes))
	for i, g := range c.Genes {
		pcts[i] = g.GC3
		weights[i] = float64(g.N)
	}
	cs.Mean = stat.Mean(pcts, weights)
	if len(pcts) > 1 {
		cs.SD = stat.StdDev(pcts, nil)
	}
	var err error
	if cs.Median, err = stats.Median(stats.Float64Data(pcts)); err != nil {
		return cs, fmt.Errorf("median for %s: %w", c.Name, err)
	}
	return cs, nil
}

func fmtStat(f float64) string {
	if math.IsNaN(f) {
		return "NA"
	}
	return fmt.Sprintf("%.4f", f)
}

// WriteChromStats writes
// species, clade, chromosome, genes, mean, sd, median and outliers.
func WriteChromStats(w io.Writer, s *genome.Summary) error {
	for _, c := range s.Chroms {
		cs, err := CalcChromStats(c)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Species, err)
		}
		_, err = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%d\n", s.Species, s.Clade, cs.Name,
			cs.Genes, fmtStat(cs.Mean), fmtStat(cs.SD), fmtStat(cs.Median), cs.Outliers)
		if err != nil {
			return err
		}
	}
	return nil
}
