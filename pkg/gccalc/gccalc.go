// 6 Apr 2020, GC by codon position 2024
// gccalc does the simple counting behind GC3. The functions work on
// byte slices as they come from the fasta reader and never change
// them.

package gccalc

import (
	"errors"
)

// ErrEmpty comes back if we are asked for a percentage of nothing.
// A gene of two bases or fewer has no third codon position.
var ErrEmpty = errors.New("zero length third codon position sequence")

// isGC is the lookup for G, g, C and c. Nothing else counts, so
// S (G or C) is not GC for our purposes.
var isGC = [256]bool{'G': true, 'g': true, 'C': true, 'c': true}

// Codon returns the bases at one codon position. pos counts from
// zero, so Codon(s, 2) gives the third position, offsets 2, 5, 8...
// A trailing partial codon contributes if it reaches pos.
func Codon(s []byte, pos int) []byte {
	if pos < 0 || pos >= len(s) {
		return nil
	}
	r := make([]byte, 0, (len(s)-pos+2)/3)
	for i := pos; i < len(s); i += 3 {
		r = append(r, s[i])
	}
	return r
}

// Third is Codon(s, 2).
func Third(s []byte) []byte { return Codon(s, 2) }

// GCCount counts G, g, C and c.
func GCCount(s []byte) int {
	n := 0
	for _, c := range s {
		if isGC[c] {
			n++
		}
	}
	return n
}

// countPos is GCCount(Codon(s, pos)) without the copy.
func countPos(s []byte, pos int) (gc, n int) {
	for i := pos; i < len(s); i += 3 {
		n++
		if isGC[s[i]] {
			gc++
		}
	}
	return gc, n
}

// Percent turns a count into a percentage. The order of operations,
// divide and then multiply by 100, gives the same digits as the
// published tables.
func Percent(gc, n int) (float64, error) {
	if n == 0 {
		return 0, ErrEmpty
	}
	return float64(gc) / float64(n) * 100, nil
}

// GC3 counts GC at third positions and the number of third positions.
func GC3(s []byte) (gc, n int) { return countPos(s, 2) }

// GC3Percent is the GC3 of one sequence as a percentage.
func GC3Percent(s []byte) (float64, error) { return Percent(GC3(s)) }

// Count is a GC tally over some number of positions.
type Count struct {
	GC int
	N  int
}

// Percent of a Count
func (c Count) Percent() (float64, error) { return Percent(c.GC, c.N) }

// Positions has the tallies at the first, second and third codon
// positions.
type Positions [3]Count

// CountPositions fills out the tallies for all three positions.
func CountPositions(s []byte) Positions {
	var p Positions
	for i := range p {
		p[i].GC, p[i].N = countPos(s, i)
	}
	return p
}

// Add adds another set of tallies to p.
func (p *Positions) Add(q Positions) {
	for i := range p {
		p[i].GC += q[i].GC
		p[i].N += q[i].N
	}
}

// Accum collects third position counts for a group of genes, usually
// a chromosome. It gives the same numbers as joining the third
// position strings of every gene and counting once.
type Accum struct {
	Len   int // total third positions
	GC    int // GC at third positions
	Genes int
}

// Add puts one gene into the tally.
func (a *Accum) Add(gc, n int) {
	a.GC += gc
	a.Len += n
	a.Genes++
}

// Percent is the aggregate GC3 over all genes seen so far.
func (a Accum) Percent() (float64, error) { return Percent(a.GC, a.Len) }
