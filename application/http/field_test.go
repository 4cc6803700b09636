package http

import (
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	testcases := []struct {
		desc     string
		input    []byte
		expected Field
		wantErr  bool
	}{
		{
			desc:     "simple",
			input:    []byte("Host: example.com"),
			expected: NewField("Host", "example.com"),
		},
		{
			desc:     "asymmetric leading whitespace",
			input:    []byte("foo:  bar"),
			expected: NewField("foo", "bar"),
		},
		{
			desc:     "no whitespace",
			input:    []byte("hum:bug"),
			expected: NewField("hum", "bug"),
		},
		{
			desc:     "leading and trailing whitespace",
			input:    []byte("Content-Type:   text/html\t  "),
			expected: NewField("Content-Type", "text/html"),
		},
		{
			desc:     "inner whitespace is kept",
			input:    []byte("User-Agent: curl/8.0 (x86_64)"),
			expected: NewField("User-Agent", "curl/8.0 (x86_64)"),
		},
		{
			desc:     "split at the first colon",
			input:    []byte("Host: localhost:8080"),
			expected: NewField("Host", "localhost:8080"),
		},
		{
			desc:     "empty value",
			input:    []byte("X-Empty:"),
			expected: NewField("X-Empty", ""),
		},
		{
			desc:    "whitespace before colon",
			input:   []byte("hum :bug"),
			wantErr: true,
		},
		{
			desc:    "whitespace inside name",
			input:   []byte("content type: text/html"),
			wantErr: true,
		},
		{
			desc:    "leading whitespace (folded line)",
			input:   []byte(" continued: value"),
			wantErr: true,
		},
		{
			desc:    "no colon seperator",
			input:   []byte("content-type text/html"),
			wantErr: true,
		},
		{
			desc:    "empty name",
			input:   []byte(": value"),
			wantErr: true,
		},
		{
			desc:    "obsolete line folding",
			input:   []byte("foo: bar\r\n baz"),
			wantErr: true,
		},
		{
			desc:    "bare CR inside value",
			input:   []byte("foo: bar\rbaz"),
			wantErr: true,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			field, err := ParseField(tc.input)
			if tc.wantErr {
				assert.Equal(t, ErrInvalidField, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, field)
		})
	}
}

func TestFieldToText(t *testing.T) {
	field := NewField("Host", "example.com")
	assert.Equal(t, "Host: example.com", string(field.Text()))
	assert.Equal(t, "Host: example.com", field.String())
}

func TestFieldRandomRoundTrip(t *testing.T) {
	for i := 0; i < 50; i++ {
		name, value := uniuri.NewLen(12), uniuri.NewLen(40)

		field, err := ParseField(NewField(name, value).Text())
		require.NoError(t, err)
		assert.Equal(t, name, field.Name())
		assert.Equal(t, value, field.Value())
	}
}

func TestFieldUintValue(t *testing.T) {
	n, err := ContentLength(1234).UintValue()
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), n)

	for _, value := range []string{"", "-1", "12a", "0x10", "99999999999999999999999"} {
		_, err := NewField("Content-Length", value).UintValue()
		assert.Equal(t, ErrIntegerParse, err, "value %q", value)
	}
}
