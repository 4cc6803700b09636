package http

import (
	"io"
	"log/slog"
	"slices"

	"http-message/application/http/status"
)

type Response struct {
	line StatusLine
	message
}

// NewResponse creates a response. body may be nil.
func NewResponse(line StatusLine, fields []Field, body *Body) *Response {
	return &Response{
		line:    line,
		message: message{fields: slices.Clone(fields), body: body},
	}
}

// ParseResponse parses a status line and the header block that follows it.
// The body is left in r: the caller decides its length and reads it with [ParseBody].
// No partial response is returned on failure.
func ParseResponse(r LineReader) (*Response, error) {
	startLine, err := readStartLine(r)
	if err != nil {
		return nil, err
	}

	line, err := ParseStatusLine(startLine)
	if err != nil {
		return nil, err
	}

	fields, err := readHeaderBlock(r)
	if err != nil {
		return nil, err
	}

	return &Response{line: line, message: message{fields: fields}}, nil
}

func (r *Response) Line() StatusLine      { return r.line }
func (r *Response) Status() status.Status { return r.line.status }
func (r *Response) Version() Version      { return r.line.version }

// WithBody returns a copy of r carrying body.
func (r *Response) WithBody(body *Body) *Response {
	return NewResponse(r.line, r.fields, body)
}

// Text renders the response as it goes on the wire.
// The canonical reason phrase is written, not the one that was received.
func (r *Response) Text() []byte { return r.text(r.line.Text()) }

func (r *Response) String() string { return string(r.Text()) }

func (r *Response) WriteTo(w io.Writer) (int64, error) { return writeText(w, r.Text()) }

func (r *Response) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("status", int(r.line.status.Code())),
		slog.String("version", r.line.version.String()),
	}
	return slog.GroupValue(append(attrs, r.logAttrs()...)...)
}
