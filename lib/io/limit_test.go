package iolib

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitReader(t *testing.T) {
	lr := LimitReader(strings.NewReader("Hello, World!"), 5)

	b := make([]byte, 10)
	n, err := lr.Read(b)
	require.NoError(t, err)
	assert.Equal(t, "Hello", string(b[:n]))
	assert.False(t, lr.Exceeded())

	n, err = lr.Read(b)
	assert.ErrorIs(t, err, ErrLimitExceeded)
	assert.Zero(t, n)
	assert.True(t, lr.Exceeded())

	lr.Reset(100)
	assert.False(t, lr.Exceeded())

	rest, err := io.ReadAll(lr)
	require.NoError(t, err)
	assert.Equal(t, ", World!", string(rest))
}

func TestLimitReaderEmptyRead(t *testing.T) {
	lr := LimitReader(strings.NewReader("abc"), 0)

	n, err := lr.Read(nil)
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.False(t, lr.Exceeded())
}
