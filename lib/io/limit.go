package iolib

import (
	"io"

	"github.com/pkg/errors"
)

var ErrLimitExceeded = errors.New("read limit exceeded")

// LimitReader creates new [LimitedReader]
func LimitReader(r io.Reader, n uint) *LimitedReader { return &LimitedReader{R: r, N: n} }

// LimitedReader is like [io.LimitedReader], but reports [ErrLimitExceeded]
// instead of [io.EOF] once the limit is used up, so that callers can tell
// an oversized input from a stream that ended.
type LimitedReader struct {
	R io.Reader // underlying reader
	N uint      // max bytes remaining

	exceeded bool
}

func (l *LimitedReader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if l.N == 0 {
		l.exceeded = true
		return 0, ErrLimitExceeded
	}
	if uint(len(p)) > l.N {
		p = p[:l.N]
	}
	n, err = l.R.Read(p)
	l.N -= uint(n)
	return
}

// Reset sets a new limit and clears the exceeded state.
func (l *LimitedReader) Reset(n uint) {
	l.N = n
	l.exceeded = false
}

// Exceeded reports whether a read was refused because of the limit.
func (l *LimitedReader) Exceeded() bool { return l.exceeded }
