package http

import (
	"bytes"
	"io"
	"log/slog"
	"slices"

	"github.com/indigo-web/utils/strcomp"
)

// message holds what requests and responses have in common.
// Fields keep the order they were parsed or added in.
type message struct {
	fields []Field
	body   *Body
}

// Fields returns a copy of the fields in their original order.
func (m *message) Fields() []Field { return slices.Clone(m.fields) }

// Field returns the first field named name. Names are compared case-insensitively.
func (m *message) Field(name string) (Field, bool) {
	for _, f := range m.fields {
		if strcomp.EqualFold(f.name, name) {
			return f, true
		}
	}
	return Field{}, false
}

// Body returns the body, or nil if the message has none.
func (m *message) Body() *Body { return m.body }

func (m *message) text(startLine []byte) []byte {
	buf := bytes.NewBuffer(nil)
	buf.Write(startLine)
	buf.Write(CRLF)
	for _, f := range m.fields {
		buf.Write(f.Text())
		buf.Write(CRLF)
	}
	buf.Write(CRLF)
	if m.body != nil {
		buf.Write(m.body.content)
	}
	return buf.Bytes()
}

func writeText(w io.Writer, text []byte) (int64, error) {
	n, err := w.Write(text)
	if err != nil {
		return int64(n), ErrIO
	}
	return int64(n), nil
}

func (m *message) logAttrs() []slog.Attr {
	attrs := []slog.Attr{slog.Int("fields", len(m.fields))}
	if m.body != nil {
		attrs = append(attrs, slog.Int("content_length", m.body.ContentLength()))
	}
	return attrs
}
