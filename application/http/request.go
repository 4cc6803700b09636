package http

import (
	"io"
	"log/slog"
	"slices"
)

type Request struct {
	line RequestLine
	message
}

// NewRequest creates a request. body may be nil.
func NewRequest(line RequestLine, fields []Field, body *Body) *Request {
	return &Request{
		line:    line,
		message: message{fields: slices.Clone(fields), body: body},
	}
}

// ParseRequest parses a request line and the header block that follows it.
// The body is left in r: the caller decides its length and reads it with [ParseBody].
// No partial request is returned on failure.
func ParseRequest(r LineReader) (*Request, error) {
	startLine, err := readStartLine(r)
	if err != nil {
		return nil, err
	}

	line, err := ParseRequestLine(startLine)
	if err != nil {
		return nil, err
	}

	fields, err := readHeaderBlock(r)
	if err != nil {
		return nil, err
	}

	return &Request{line: line, message: message{fields: fields}}, nil
}

func (r *Request) Line() RequestLine { return r.line }
func (r *Request) Method() Method    { return r.line.method }
func (r *Request) Target() string    { return r.line.target }
func (r *Request) Version() Version  { return r.line.version }

// WithBody returns a copy of r carrying body.
func (r *Request) WithBody(body *Body) *Request {
	return NewRequest(r.line, r.fields, body)
}

// Text renders the request as it goes on the wire.
func (r *Request) Text() []byte { return r.text(r.line.Text()) }

func (r *Request) String() string { return string(r.Text()) }

func (r *Request) WriteTo(w io.Writer) (int64, error) { return writeText(w, r.Text()) }

func (r *Request) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("method", r.line.method.name),
		slog.String("target", r.line.target),
		slog.String("version", r.line.version.String()),
	}
	return slog.GroupValue(append(attrs, r.logAttrs()...)...)
}
