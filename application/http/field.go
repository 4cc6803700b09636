package http

import (
	"bytes"
	"strconv"
	"strings"
	"unicode"
)

// Field is a single header field line.
type Field struct {
	name, value string
}

// NewField creates a field without validating it.
func NewField(name, value string) Field {
	return Field{name: name, value: value}
}

// ContentLength creates a Content-Length field of n.
func ContentLength(n int) Field {
	return Field{name: "Content-Length", value: strconv.Itoa(n)}
}

// ParseField parses a field line.
//
//	field-line = field-name ":" OWS field-value OWS
//
// Obsolete line folding is not supported. A value still holding CR or LF after
// trimming is rejected.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-5
func ParseField(line []byte) (Field, error) {
	name, value, found := bytes.Cut(line, []byte{':'})
	if !found {
		return Field{}, ErrInvalidField
	}

	// No whitespace is allowed in the name, including between the name and the colon.
	// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-5.1-2
	if len(name) == 0 || containsWhitespace(string(name)) {
		return Field{}, ErrInvalidField
	}

	v := strings.TrimFunc(string(value), unicode.IsSpace)
	if strings.ContainsAny(v, "\r\n") {
		return Field{}, ErrInvalidField
	}

	return Field{name: string(name), value: v}, nil
}

// writable reports whether the rendered field parses back into a field of the same name.
func (f Field) writable() bool {
	return f.name != "" && !containsWhitespace(f.name) && !strings.ContainsRune(f.name, ':') &&
		!strings.ContainsAny(f.value, "\r\n")
}

func (f Field) Name() string  { return f.name }
func (f Field) Value() string { return f.value }

// UintValue reads the value as a decimal integer, e.g. for Content-Length.
func (f Field) UintValue() (uint64, error) {
	n, err := strconv.ParseUint(f.value, 10, 64)
	if err != nil {
		return 0, fromIntError(err)
	}
	return n, nil
}

func (f Field) Text() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, len(f.name)+2+len(f.value)))
	buf.WriteString(f.name)
	buf.WriteString(": ")
	buf.WriteString(f.value)
	return buf.Bytes()
}

func (f Field) String() string { return string(f.Text()) }
