// 20 Dec 2017, reworked for coding sequences 2024

// Package seq provides fasta records for coding sequences and
// genome files. Parsing is done by biogo. We add the bits that
// biogo does not know about, like the raw first line of a file, a
// quick count of records and transparent gzip.
package seq

import (
	"bytes"
)

// Record is one fasta entry. It only lives while a file is being
// visited.
type Record struct {
	ID   string // first word after the ">"
	Desc string // rest of the header line, may be empty
	Raw  string // header line as written, without ">", if known
	Seq  []byte
}

// Header returns the full header line without the leading ">".
// This is what other tools call the description. The separator
// between ID and Desc is kept as it was in the file, so a tab stays a
// tab. Records not read from a file get a single space.
func (r Record) Header() string {
	if r.Raw != "" {
		return r.Raw
	}
	if r.Desc == "" {
		return r.ID
	}
	return r.ID + " " + r.Desc
}

// Len returns the number of residues
func (r Record) Len() int { return len(r.Seq) }

// StartsATG is true if the sequence begins with an upper case ATG.
// Lower case atg does not count. This is how the outlier report has
// always worked.
func (r Record) StartsATG() bool { return bytes.HasPrefix(r.Seq, []byte("ATG")) }

// String returns a record in fasta format, without line breaks in the
// sequence.
func (r Record) String() string {
	return ">" + r.Header() + "\n" + string(r.Seq)
}
