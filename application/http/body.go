package http

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
)

// Body is a message payload of known length.
type Body struct {
	content []byte
}

// ParseBody reads exactly length bytes from r.
// The caller picks length, usually from the Content-Length field.
// A stream ending early fails with [ErrTruncated].
func ParseBody(r io.Reader, length uint64) (*Body, error) {
	buf := bytes.NewBuffer(nil)
	n, err := io.CopyN(buf, r, int64(length))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrTruncated
		}
		return nil, ErrIO
	}
	if uint64(n) != length {
		return nil, ErrTruncated
	}

	return &Body{content: buf.Bytes()}, nil
}

// BodyFrom wraps content as a body.
func BodyFrom(content string) *Body {
	return &Body{content: []byte(content)}
}

// NewBody creates a body holding a copy of content.
func NewBody(content []byte) *Body {
	return &Body{content: bytes.Clone(content)}
}

func (b *Body) ContentLength() int { return len(b.content) }

func (b *Body) Bytes() []byte { return bytes.Clone(b.content) }

// String decodes the content as UTF-8. Invalid sequences are replaced with U+FFFD.
func (b *Body) String() string {
	// The decoder substitutes invalid input instead of failing.
	s, _ := unicode.UTF8.NewDecoder().Bytes(b.content)
	return string(s)
}
