package errors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	sentinel := New("lookup failed")
	e := sentinel.Wrap(io.EOF)

	assert.True(t, Is(e, sentinel))
	assert.True(t, Is(e, io.EOF))
	assert.Equal(t, io.EOF, e.Unwrap())
	assert.Equal(t, "lookup failed: EOF", e.Error())

	// the sentinel is not mutated by Wrap
	assert.Nil(t, sentinel.Unwrap())
	assert.Equal(t, "lookup failed", sentinel.Error())
}

func TestErrorWrapf(t *testing.T) {
	sentinel := New("resolution failed")
	other := New("other")
	e := sentinel.Wrapf("id %d", 42)

	require.True(t, Is(e, sentinel))
	assert.False(t, Is(e, other))
	assert.Equal(t, "resolution failed: id 42", e.Error())

	var target *Error
	require.True(t, As(e, &target))
	assert.Equal(t, e, target)
}

func TestErrorRewrap(t *testing.T) {
	sentinel := New("query failed")
	first := sentinel.Wrap(io.EOF)
	second := first.Wrap(io.ErrUnexpectedEOF)

	assert.True(t, Is(second, sentinel))
	assert.True(t, Is(second, io.ErrUnexpectedEOF))
	assert.Equal(t, "query failed: unexpected EOF", second.Error())

	third := second.Wrapf("attempt %d", 3)
	assert.True(t, Is(third, sentinel))
	assert.False(t, Is(third, New("query failed")))
}
