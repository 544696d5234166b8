// Package report writes the tables. Every writer takes the summary of
// one genome, so files can be appended to as each genome finishes.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/RiccardoKyriacou/GC3-scrips/pkg/genome"
)

// Pct formats a percentage the way the tables have always looked:
// shortest form that reads back exactly, with at least one decimal,
// so 60 is "60.0".
// Very small or very large values use an exponent, "9.5e-05".
func Pct(f float64) string {
	if a := math.Abs(f); f != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") { // NaN and Inf stay as they are
		s += ".0"
	}
	return s
}

// WriteSummary writes one line per chromosome,
// species, clade, third position length, GC3 and number of genes.
func WriteSummary(w io.Writer, s *genome.Summary) error {
	for _, c := range s.Chroms {
		p, err := c.Third.Percent()
		if err != nil {
			return fmt.Errorf("%s %s: %w", s.Species, c.Name, err)
		}
		_, err = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\n", s.Species, s.Clade, c.Third.Len, Pct(p), c.Third.Genes)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteOutliers writes the outlier genes in the order they were found.
func WriteOutliers(w io.Writer, s *genome.Summary) error {
	for _, o := range s.Outliers {
		if _, err := fmt.Fprintln(w, o.String()); err != nil {
			return err
		}
	}
	return nil
}
