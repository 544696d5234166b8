// 3 Aug 2020
// Looking at a file without parsing it. We map the file rather than
// read it. For a genome of a few hundred MB this is much faster than
// going through a buffered reader.

package seq

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/RiccardoKyriacou/GC3-scrips/pkg/zwrap"
	"github.com/edsrzf/mmap-go"
)

var gzMagic = []byte{0x1f, 0x8b}

// mapFile maps a file read-only and calls fn with the contents.
// A zero length file cannot be mapped, so fn gets a nil slice.
func mapFile(fname string, fn func([]byte) error) error {
	var fp *os.File
	var err error
	var mm mmap.MMap
	if fp, err = os.Open(fname); err != nil {
		return err
	}
	defer fp.Close()
	if fi, err := fp.Stat(); err != nil {
		return err
	} else if fi.Size() == 0 {
		return fn(nil)
	}
	if mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
		return err
	}
	defer mm.Unmap()
	return fn(mm)
}

// FirstLine returns the first line of a file, including a leading
// ">", but without the newline. Gzipped files are decompressed.
func FirstLine(fname string) (string, error) {
	var line string
	err := mapFile(fname, func(b []byte) error {
		if !bytes.HasPrefix(b, gzMagic) {
			if ndx := bytes.IndexByte(b, NL); ndx != -1 {
				b = b[:ndx]
			}
			line = string(bytes.TrimSuffix(b, []byte{'\r'}))
			return nil
		}
		fpz, err := zwrap.Open(fname)
		if err != nil {
			return err
		}
		defer fpz.Close()
		line, err = bufio.NewReader(fpz).ReadString(NL)
		if err != nil && err != io.EOF {
			return err
		}
		line = trimNL(line)
		return nil
	})
	return line, err
}

func trimNL(s string) string {
	for len(s) > 0 && (s[len(s)-1] == NL || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// countHeaders counts ">" characters at the start of lines.
func countHeaders(b []byte) int {
	n := bytes.Count(b, []byte("\n>"))
	if len(b) > 0 && b[0] == cmmtChar {
		n++
	}
	return n
}

// CountRecords gives the number of records in a fasta file without
// parsing it. It is used for sizing progress reports.
func CountRecords(fname string) (int, error) {
	var n int
	err := mapFile(fname, func(b []byte) error {
		if !bytes.HasPrefix(b, gzMagic) {
			n = countHeaders(b)
			return nil
		}
		fpz, err := zwrap.Open(fname)
		if err != nil {
			return err
		}
		defer fpz.Close()
		var all []byte
		if all, err = io.ReadAll(fpz); err != nil {
			return err
		}
		n = countHeaders(all)
		return nil
	})
	return n, err
}

const (
	NL       = '\n'
	cmmtChar = '>'
)
