// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file.
// Genome and CDS downloads often arrive gzipped, but keep their .fa
// name, so we look at the stream and not the file name.

package zwrap

import (
	"errors"
	"io"
	"os"

	"github.com/klauspost/pgzip"
)

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	zrdr *pgzip.Reader
}

// Close closes the decompressor, then the underlying backing readCloser.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	var s string
	if e := fc.zrdr.Close(); e != nil { // Close decompressor
		s = e.Error()
	}
	if e := fc.fp.Close(); e != nil { // and backing file
		s = s + " " + e.Error()
	}
	if s == "" {
		return nil
	}
	return errors.New(s)
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.fp.Read(p)
}

// Compressed says whether reads go through the decompressor.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// Wrap takes a source like a file pointer and wraps it so the
// correct Close and Read will be called. It fails if the source does
// not start with a gzip header.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	var fpz FpGzip
	var err error
	fpz.fp = fp
	if fpz.zrdr, err = pgzip.NewReader(fpz.fp); err != nil {
		fpz.zrdr = nil
	}
	return &fpz, err
}

// ReadSeekCloser is what WrapMaybe needs. We have to be able to go
// back to the start if the data was not compressed.
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// WrapMaybe will decide if the underlying stream is compressed
// and wrap the file pointer if necessary.
// If you pass in something which can seek, you get back a ReadCloser
// which cannot seek.
func WrapMaybe(fpIn ReadSeekCloser) (*FpGzip, error) {
	if out, err := Wrap(fpIn); err == nil {
		return out, nil // It was compressed. Return compressed reader.
	}
	_, err := fpIn.Seek(0, io.SeekStart)
	r := &FpGzip{
		fp: fpIn, // Leave the zrdr implicitly nil
	}

	return r, err
}

// Open opens a named file, plain or gzipped.
func Open(fname string) (*FpGzip, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	fpz, err := WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, err
	}
	return fpz, nil
}
