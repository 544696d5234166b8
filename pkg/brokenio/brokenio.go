// brokenio is a wrapper around an io.ReadCloser. It lets us make
// reads fail, either after a given number of bytes or at random, so
// tests can check that a failure in the middle of a file is reported
// and not taken for a normal end of file.

package brokenio

import (
	"errors"
	"io"
	"math/rand"
)

// ErrBroken is what a broken read returns.
var ErrBroken = errors.New("brokenio: artificial read failure")

// A BrknRdrClsr behaves like the reader it wraps until it is told to
// fail.
type BrknRdrClsr struct {
	rdrOrig  io.ReadCloser
	failAt   int // fail once this many bytes have been delivered, -1 never
	probFail float32
	rnd      *rand.Rand
	nCalled  int
	nByte    int
}

// NewReader returns a reader which does not fail until told to.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{rdrOrig: rIn, failAt: -1}
}

// SetFailAt makes reading fail after n bytes. Zero looks like a file
// which cannot be read at all.
func (r *BrknRdrClsr) SetFailAt(n int) { r.failAt = n }

// SetProbFail sets the probability of a read failing. It must be
// between zero and 1. We do not check.
func (r *BrknRdrClsr) SetProbFail(prob float32, seed int64) {
	r.probFail = prob
	r.rnd = rand.New(rand.NewSource(seed))
}

// NByte is the number of bytes delivered so far.
func (r *BrknRdrClsr) NByte() int { return r.nByte }

// Read passes reads through to the original reader, cutting them
// short at the failure point.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.nCalled++
	if r.rnd != nil && r.rnd.Float32() < r.probFail {
		return 0, ErrBroken
	}
	if r.failAt >= 0 {
		left := r.failAt - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	return r.rdrOrig.Close()
}
