// Package header pulls locations and gene identifiers out of fasta
// headers of the form written by Ensembl for cds files,
//
//	>ENST01.1 cds chromosome:Lin_v1:LR01:10:24:1 gene:G01 transcript:...
//
// Fields are separated by single spaces and the location by colons.
// Primary files sometimes only carry the identifier. Then the CDS
// file for the same assembly is used to find the location.
package header

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoGeneID   = errors.New("no gene identifier in header")
	ErrUnresolved = errors.New("cannot find chromosome for header")
)

// Location is where a gene sits.
// Chrom is the second colon separated piece of the header. Info is
// pieces two to four of the location field, joined with colons again.
// For the example above, Chrom is "Lin_v1" and Info "Lin_v1:LR01:10".
type Location struct {
	Chrom string
	Info  string
}

// Parse tries to get a location out of one header. It reports false
// if there is no colon or fewer than three space separated fields.
func Parse(h string) (Location, bool) {
	cols := strings.Split(h, ":")
	if len(cols) < 2 {
		return Location{}, false
	}
	fields := strings.Split(h, " ")
	if len(fields) < 3 {
		return Location{}, false
	}
	parts := strings.Split(fields[2], ":")
	lo, hi := 1, 4
	if hi > len(parts) {
		hi = len(parts)
	}
	if lo > hi {
		lo = hi
	}
	return Location{Chrom: cols[1], Info: strings.Join(parts[lo:hi], ":")}, true
}

// GeneID returns the gene identifier from a cds header. It is the
// part after the first colon of the fourth field, "G01" above.
func GeneID(h string) (string, error) {
	fields := strings.Split(h, " ")
	if len(fields) < 4 {
		return "", fmt.Errorf("%w: %q", ErrNoGeneID, h)
	}
	parts := strings.Split(fields[3], ":")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: %q", ErrNoGeneID, h)
	}
	return parts[1], nil
}

// Index maps gene identifiers to full cds headers. If a gene has
// more than one transcript, the last one read wins.
type Index map[string]string

// Add puts a cds header into the index.
func (ix Index) Add(h string) error {
	id, err := GeneID(h)
	if err != nil {
		return err
	}
	ix[id] = h
	return nil
}

// Resolve finds the location for a primary record. The header is
// tried first. If that does not work, the full header and then the
// record identifier are looked up in the index and the cds header is
// parsed instead.
func (ix Index) Resolve(id, h string) (Location, error) {
	if loc, ok := Parse(h); ok {
		return loc, nil
	}
	cds, ok := ix[h]
	if !ok {
		if cds, ok = ix[id]; !ok {
			return Location{}, fmt.Errorf("%w: %q not in cds headers", ErrUnresolved, id)
		}
	}
	if loc, ok := Parse(cds); ok {
		return loc, nil
	}
	return Location{}, fmt.Errorf("%w: %q, cds header %q", ErrUnresolved, id, cds)
}
