package http

import (
	"strings"
	"unicode"
)

const (
	CR   byte = '\r'
	LF   byte = '\n'
	SP   byte = ' '
	HTAB byte = '\t'
)

var CRLF = []byte{CR, LF}

// LineReader is the stream a message is parsed from.
// ReadLine returns one line without its terminator, and io.EOF once the stream is exhausted.
// Read must serve the bytes following the last returned line, so that a body can be read
// after the header block.
//
// The LineReader of package iolib (lib/io) satisfies it.
type LineReader interface {
	ReadLine() ([]byte, error)
	Read(p []byte) (n int, err error)
}

func containsWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// readHeaderBlock reads field lines until the empty line that ends the header block.
func readHeaderBlock(r LineReader) ([]Field, error) {
	fields := make([]Field, 0)
	for {
		line, err := r.ReadLine()
		if err != nil {
			return nil, fromIOError(err)
		}

		if len(line) == 0 {
			return fields, nil
		}

		field, err := ParseField(line)
		if err != nil {
			return nil, err
		}

		fields = append(fields, field)
	}
}

// readStartLine reads the first line of a message.
func readStartLine(r LineReader) ([]byte, error) {
	line, err := r.ReadLine()
	if err != nil {
		return nil, fromIOError(err)
	}
	return line, nil
}
