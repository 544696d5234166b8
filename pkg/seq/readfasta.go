// Reader for fasta format files.

package seq

import (
	"fmt"
	"io"
	"strings"

	"github.com/RiccardoKyriacou/GC3-scrips/pkg/zwrap"
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// RecordFunc is called for every record in a file. Returning an
// error stops the reading and the error is passed back.
type RecordFunc func(Record) error

// headerTee watches the bytes on their way to the fasta parser and
// keeps each header line as written. The parser splits the ID from the
// description on any white space and the separator is lost.
type headerTee struct {
	r     io.Reader
	atBOL bool
	inHdr bool
	cur   []byte
	hdrs  []string
}

func newHeaderTee(r io.Reader) *headerTee { return &headerTee{r: r, atBOL: true} }

func (h *headerTee) endHdr() {
	h.hdrs = append(h.hdrs, strings.TrimRight(string(h.cur), " \t\r"))
	h.cur = h.cur[:0]
	h.inHdr = false
}

func (h *headerTee) Read(p []byte) (int, error) {
	n, err := h.r.Read(p)
	for _, c := range p[:n] {
		switch {
		case h.inHdr && c == NL:
			h.endHdr()
			h.atBOL = true
		case h.inHdr:
			h.cur = append(h.cur, c)
		case h.atBOL && c == cmmtChar:
			h.inHdr = true
		default:
			h.atBOL = c == NL
		}
	}
	if err == io.EOF && h.inHdr {
		h.endHdr()
	}
	return n, err
}

// pop hands back the oldest header line not yet used.
func (h *headerTee) pop() (string, bool) {
	if len(h.hdrs) == 0 {
		return "", false
	}
	s := h.hdrs[0]
	h.hdrs = h.hdrs[1:]
	return s, true
}

// ReadFasta reads fasta formatted data and calls fn on each record
// in the order they appear.
func ReadFasta(rdr io.Reader, fn RecordFunc) error {
	t := linear.NewSeq("", nil, alphabet.DNA)
	tee := newHeaderTee(rdr)
	sc := seqio.NewScanner(fasta.NewReader(tee, t))
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return fmt.Errorf("unexpected sequence type %T", sc.Seq())
		}
		rec := Record{
			ID:   s.Name(),
			Desc: s.Description(),
			Seq:  alphabet.LettersToBytes(s.Seq),
		}
		if raw, ok := tee.pop(); ok && strings.HasPrefix(strings.TrimLeft(raw, " \t"), rec.ID) {
			rec.Raw = raw
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return sc.Error()
}

// Readfile opens a file, plain or gzipped, and calls fn on each
// record.
func Readfile(fname string, fn RecordFunc) error {
	fp, err := zwrap.Open(fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err = ReadFasta(fp, fn); err != nil {
		return fmt.Errorf("reading %s: %w", fname, err)
	}
	return nil
}

// ReadAll is a convenience for small files and testing. It returns
// every record in the file.
func ReadAll(fname string) ([]Record, error) {
	var recs []Record
	err := Readfile(fname, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	return recs, err
}
