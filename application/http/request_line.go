package http

import (
	"bytes"
	"strings"
)

// RequestLine is the start line of a request.
//
//	request-line = method SP request-target SP HTTP-version
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-3
type RequestLine struct {
	method  Method
	target  string
	version Version
}

// NewRequestLine creates an HTTP/1.1 request line.
// It fails with [ErrInvalidMethod] for the zero Method, and with [ErrInvalidTarget]
// for a target that is empty or holds SP, CR or LF, as neither would parse back.
func NewRequestLine(method Method, target string) (RequestLine, error) {
	if method.IsZero() {
		return RequestLine{}, ErrInvalidMethod
	}
	if target == "" || strings.ContainsAny(target, " \r\n") {
		return RequestLine{}, ErrInvalidTarget
	}
	return RequestLine{method: method, target: target, version: HTTP11}, nil
}

// ParseRequestLine parses a request line.
// The method is validated before the target, and the target before the version.
// The target is opaque and only has to be non-empty.
func ParseRequestLine(line []byte) (RequestLine, error) {
	parts := bytes.Split(line, []byte{SP})
	if len(parts) != 3 {
		return RequestLine{}, ErrInvalidRequest
	}

	method, err := ParseMethod(parts[0])
	if err != nil {
		return RequestLine{}, err
	}

	if len(parts[1]) == 0 {
		return RequestLine{}, ErrInvalidTarget
	}
	target := string(parts[1])

	ver, err := ParseVersion(parts[2])
	if err != nil {
		return RequestLine{}, err
	}

	return RequestLine{method: method, target: target, version: ver}, nil
}

func (l RequestLine) Method() Method   { return l.method }
func (l RequestLine) Target() string   { return l.target }
func (l RequestLine) Version() Version { return l.version }

// WithVersion returns a copy of l using ver.
func (l RequestLine) WithVersion(ver Version) RequestLine {
	l.version = ver
	return l
}

func (l RequestLine) Text() []byte {
	buf := bytes.NewBuffer(nil)
	buf.WriteString(l.method.name)
	buf.WriteByte(SP)
	buf.WriteString(l.target)
	buf.WriteByte(SP)
	buf.Write(l.version.Text())
	return buf.Bytes()
}

func (l RequestLine) String() string { return string(l.Text()) }
