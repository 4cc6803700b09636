package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCode(t *testing.T) {
	testcases := []struct {
		code     uint16
		expected Status
	}{
		{100, Continue},
		{200, OK},
		{226, IMUsed},
		{306, SwitchProxy},
		{404, NotFound},
		{413, PayloadTooLarge},
		{418, ImATeapot},
		{451, UnavailableForLegalReasons},
		{505, HTTPVersionNotSupported},
		{511, NetworkAuthenticationRequired},
	}

	for _, tc := range testcases {
		t.Run(tc.expected.String(), func(t *testing.T) {
			s, ok := FromCode(tc.code)
			require.True(t, ok)
			assert.Equal(t, tc.expected, s)
			assert.Equal(t, tc.code, s.Code())
		})
	}
}

func TestFromCodeUnregistered(t *testing.T) {
	for _, code := range []uint16{0, 12, 99, 209, 420, 430, 509, 600, 1234} {
		s, ok := FromCode(code)
		assert.False(t, ok, "code %d", code)
		assert.True(t, s.IsZero())
	}
}

func TestRegistry(t *testing.T) {
	all := All()
	require.Len(t, all, 62)

	for i, s := range all {
		if i > 0 {
			assert.Less(t, all[i-1].Code(), s.Code())
		}

		assert.GreaterOrEqual(t, s.Code(), uint16(100))
		assert.LessOrEqual(t, s.Code(), uint16(599))
		assert.NotEmpty(t, s.Phrase())

		found, ok := FromCode(s.Code())
		assert.True(t, ok)
		assert.Equal(t, s, found)
	}
}

func TestPhrase(t *testing.T) {
	assert.Equal(t, "OK", OK.Phrase())
	assert.Equal(t, "Non-Authoritative Information", NonAuthoritativeInformation.Phrase())
	assert.Equal(t, "Payload Too Large", PayloadTooLarge.Phrase())
	assert.Equal(t, "I'm a teapot", ImATeapot.Phrase())
	assert.Equal(t, "413 Payload Too Large", PayloadTooLarge.String())
}

func TestClass(t *testing.T) {
	assert.Equal(t, 1, Continue.Class())
	assert.Equal(t, 2, NoContent.Class())
	assert.Equal(t, 3, Found.Class())
	assert.Equal(t, 4, Gone.Class())
	assert.Equal(t, 5, BadGateway.Class())
}
