package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errFirst  = New("first")
	errSecond = New("second")
)

func TestIsAny(t *testing.T) {
	wrapped := Wrap(errSecond, "loading favorites")

	assert.True(t, IsAny(wrapped, errFirst, errSecond))
	assert.False(t, IsAny(wrapped, errFirst))
	assert.False(t, IsAny(nil, errFirst))
	assert.False(t, IsAny(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrapf(errFirst, "planet %d", 7)

	assert.Equal(t, "planet 7: first", err.Error())
	assert.Equal(t, errFirst, Cause(err))
	assert.True(t, Is(err, errFirst))
	assert.Nil(t, Wrap(nil, "ignored"))
}
