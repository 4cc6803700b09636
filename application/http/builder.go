package http

import (
	"bytes"
	"strconv"

	"http-message/application/http/status"
)

// MessageBuilder accumulates a request or a response and renders it once.
//
// Whether a request or a response is built is fixed by the constructor.
// A builder is single-use: after [MessageBuilder.Bytes] any call panics.
// Input that would not parse back, such as an empty target or a field value
// holding CR or LF, panics as well.
type MessageBuilder struct {
	request  *RequestLine
	response *StatusLine

	fields []Field
	body   []byte

	finalized bool
}

// NewRequestBuilder starts an HTTP/1.1 request.
func NewRequestBuilder(method Method, target string) *MessageBuilder {
	line, err := NewRequestLine(method, target)
	if err != nil {
		panic("http: message builder: " + err.Error())
	}
	return &MessageBuilder{request: &line}
}

// NewResponseBuilder starts an HTTP/1.1 response.
func NewResponseBuilder(s status.Status) *MessageBuilder {
	line := NewStatusLine(s)
	return &MessageBuilder{response: &line}
}

func (b *MessageBuilder) Version(ver Version) *MessageBuilder {
	b.mustNotBeFinalized()
	if b.request != nil {
		*b.request = b.request.WithVersion(ver)
	} else {
		*b.response = b.response.WithVersion(ver)
	}
	return b
}

// Field appends a field. Fields are written in the order they were added.
func (b *MessageBuilder) Field(name, value string) *MessageBuilder {
	return b.Fields(NewField(name, value))
}

// Fields appends fields in order.
func (b *MessageBuilder) Fields(fields ...Field) *MessageBuilder {
	b.mustNotBeFinalized()
	for _, f := range fields {
		if !f.writable() {
			panic("http: message builder: " + ErrInvalidField.Error() + ": " + strconv.Quote(f.name))
		}
		b.fields = append(b.fields, f)
	}
	return b
}

// Body sets the raw body. It is written as is, without any terminator.
func (b *MessageBuilder) Body(content []byte) *MessageBuilder {
	b.mustNotBeFinalized()
	b.body = bytes.Clone(content)
	return b
}

func (b *MessageBuilder) BodyString(content string) *MessageBuilder {
	return b.Body([]byte(content))
}

// Bytes finalizes the builder and returns the wire form of the message.
func (b *MessageBuilder) Bytes() []byte {
	b.mustNotBeFinalized()
	b.finalized = true

	var startLine []byte
	if b.request != nil {
		startLine = b.request.Text()
	} else {
		startLine = b.response.Text()
	}

	m := message{fields: b.fields, body: &Body{content: b.body}}
	text := m.text(startLine)

	b.request, b.response = nil, nil
	b.fields, b.body = nil, nil

	return text
}

func (b *MessageBuilder) mustNotBeFinalized() {
	if b.finalized {
		panic("http: message builder used after Bytes")
	}
}
