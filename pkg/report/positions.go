// GC at each codon position.

package report

import (
	"fmt"
	"io"

	"github.com/RiccardoKyriacou/GC3-scrips/pkg/genome"
	"github.com/andrew-torda/matrix"
)

// PosTable puts GC percent at codon positions 1, 2 and 3 in a matrix
// with one row per chromosome. A chromosome with no bases at some
// position gets zero there.
func PosTable(s *genome.Summary) *matrix.FMatrix2d {
	if len(s.Chroms) == 0 {
		return nil
	}
	tbl := matrix.NewFMatrix2d(len(s.Chroms), 3)
	for i, c := range s.Chroms {
		for j, cnt := range c.Pos {
			if p, err := cnt.Percent(); err == nil {
				tbl.Mat[i][j] = float32(p)
			}
		}
	}
	return tbl
}

// WritePositions writes species, chromosome, GC1, GC2 and GC3.
func WritePositions(w io.Writer, s *genome.Summary) error {
	tbl := PosTable(s)
	if tbl == nil {
		return nil
	}
	for i, c := range s.Chroms {
		row := tbl.Mat[i]
		if _, err := fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\n", s.Species, c.Name, row[0], row[1], row[2]); err != nil {
			return err
		}
	}
	return nil
}
