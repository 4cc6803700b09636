package iolib

import (
	"bytes"
	"io"
)

const readChunkSize = 1024

// LineReader reads LF terminated lines from an underlying reader.
// Bytes read past the last returned line stay buffered and are served by Read,
// so line reads and raw reads can be mixed on the same stream.
type LineReader struct {
	r io.Reader

	buf   []byte // read ahead, not consumed yet.
	chunk []byte
	err   error // sticky error of the underlying reader.
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: r, chunk: make([]byte, readChunkSize)}
}

func (lr *LineReader) Read(p []byte) (n int, err error) {
	if len(lr.buf) > 0 {
		n = copy(p, lr.buf)
		lr.buf = lr.buf[n:]
		return n, nil
	}

	if lr.err != nil {
		return 0, lr.err
	}

	n, err = lr.r.Read(p)
	lr.err = err
	return n, err
}

// ReadLine returns the next line without its terminator.
// Both LF and CRLF are accepted as terminator.
//
// When the stream ends in the middle of a line, the remaining bytes are returned
// as the last line. Calls after that return [io.EOF].
// The returned slice is owned by the caller.
func (lr *LineReader) ReadLine() ([]byte, error) {
	for {
		if idx := bytes.IndexByte(lr.buf, '\n'); idx >= 0 {
			line := bytes.Clone(lr.buf[:idx])
			lr.buf = lr.buf[idx+1:]
			return trimCR(line), nil
		}

		if lr.err != nil {
			if lr.err == io.EOF && len(lr.buf) > 0 {
				line := bytes.Clone(lr.buf)
				lr.buf = nil
				return trimCR(line), nil
			}
			return nil, lr.err
		}

		n, err := lr.r.Read(lr.chunk)
		lr.buf = append(lr.buf, lr.chunk[:n]...)
		lr.err = err
	}
}

// Err returns the error the underlying reader failed with, if any.
// Once set, ReadLine and Read return it without reading further.
func (lr *LineReader) Err() error { return lr.err }

// ClearErr makes the next read go to the underlying reader again,
// e.g. after a deadline expired. Buffered bytes are kept.
func (lr *LineReader) ClearErr() { lr.err = nil }

// Buffered returns the number of bytes read ahead but not consumed yet.
func (lr *LineReader) Buffered() int { return len(lr.buf) }

func trimCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}
