package http

import (
	"strings"
	"testing"

	"http-message/application/http/status"
	iolib "http-message/lib/io"

	"github.com/stretchr/testify/suite"
)

const (
	responseNoFields = "" +
		"HTTP/1.1 413 Payload Too Large\r\n" +
		"\r\n"
	responseOneField = "" +
		"HTTP/1.1 413 Payload too girthy\r\n" +
		"foo: bar\r\n" +
		"\r\n"
	responseTwoFields = "" +
		"HTTP/1.1 413 omg\r\n" +
		"foo:  bar\r\n" +
		"hum:bug\r\n" +
		"\r\n"
)

type ResponseTestSuite struct {
	suite.Suite
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func parseResponseString(s string) (*Response, error) {
	return ParseResponse(iolib.NewLineReader(strings.NewReader(s)))
}

func (s *ResponseTestSuite) assertResponse(res *Response, fieldNum int) {
	s.Equal(HTTP11, res.Version())
	s.Equal(status.PayloadTooLarge, res.Status())

	expected := []Field{NewField("foo", "bar"), NewField("hum", "bug")}
	s.Equal(expected[:fieldNum], res.Fields())
}

func (s *ResponseTestSuite) TestParse() {
	testcases := []struct {
		desc     string
		input    string
		fieldNum int
		text     string
	}{
		{
			desc:     "no fields",
			input:    responseNoFields,
			fieldNum: 0,
			text:     responseNoFields,
		},
		{
			desc:     "one field",
			input:    responseOneField,
			fieldNum: 1,
			text:     "HTTP/1.1 413 Payload Too Large\r\nfoo: bar\r\n\r\n",
		},
		{
			desc:     "two fields",
			input:    responseTwoFields,
			fieldNum: 2,
			text:     "HTTP/1.1 413 Payload Too Large\r\nfoo: bar\r\nhum: bug\r\n\r\n",
		},
		{
			desc:     "trailing bytes are not consumed",
			input:    responseOneField + responseNoFields,
			fieldNum: 1,
			text:     "HTTP/1.1 413 Payload Too Large\r\nfoo: bar\r\n\r\n",
		},
	}

	for _, tc := range testcases {
		s.Run(tc.desc, func() {
			res, err := parseResponseString(tc.input)
			s.Require().NoError(err)
			s.assertResponse(res, tc.fieldNum)
			s.Equal(tc.text, res.String())
		})
	}
}

func (s *ResponseTestSuite) TestParseFailures() {
	testcases := []struct {
		desc    string
		input   string
		wantErr error
	}{
		{
			desc:    "no bytes",
			input:   "",
			wantErr: ErrUnexpectedEOF,
		},
		{
			desc:    "invalid status",
			input:   "HTTP/1.1 Payload too large\r\nfoo:  bar\r\nhum:bug\r\n\r\n",
			wantErr: ErrInvalidStatus,
		},
		{
			desc:    "invalid field",
			input:   "HTTP/1.1 413 Payload too large\r\nhum :bug\r\n\r\n",
			wantErr: ErrInvalidField,
		},
		{
			desc:    "truncated start line",
			input:   responseOneField[:10],
			wantErr: ErrInvalidResponse,
		},
		{
			desc:    "truncated before blank line",
			input:   responseOneField[:30],
			wantErr: ErrUnexpectedEOF,
		},
		{
			desc:    "truncated inside a field",
			input:   responseOneField[:38],
			wantErr: ErrUnexpectedEOF,
		},
	}

	for _, tc := range testcases {
		s.Run(tc.desc, func() {
			res, err := parseResponseString(tc.input)
			s.Equal(tc.wantErr, err)
			s.Nil(res)
		})
	}
}

func (s *ResponseTestSuite) TestWireReasonIsKept() {
	res, err := parseResponseString(responseOneField)
	s.Require().NoError(err)
	s.Equal("Payload too girthy", res.Line().WireReason())
	s.Equal("Payload Too Large", res.Status().Phrase())
}

func (s *ResponseTestSuite) TestNewResponse() {
	body := BodyFrom("teapot")
	res := NewResponse(
		NewStatusLine(status.ImATeapot),
		[]Field{ContentLength(body.ContentLength())},
		body,
	)

	s.Equal("HTTP/1.1 418 I'm a teapot\r\nContent-Length: 6\r\n\r\nteapot", res.String())

	bare := res.WithBody(nil)
	s.Nil(bare.Body())
	s.Equal("HTTP/1.1 418 I'm a teapot\r\nContent-Length: 6\r\n\r\n", bare.String())
	s.NotNil(res.Body())
}
