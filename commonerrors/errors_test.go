package commonerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAny(t *testing.T) {
	assert.True(t, Any(ErrNotImplemented, ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.False(t, Any(ErrNotImplemented, ErrInvalid, ErrUnknown))
	assert.True(t, Any(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.False(t, Any(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrUnknown))
	assert.False(t, Any(ErrOutOfRange, ErrInvalidType))
}

func TestNone(t *testing.T) {
	assert.False(t, None(ErrNotImplemented, ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.True(t, None(ErrNotImplemented, ErrInvalid, ErrUnknown))
	assert.False(t, None(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.True(t, None(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrUnknown))
}

func TestCorrespondTo(t *testing.T) {
	assert.False(t, CorrespondTo(nil, "anything"))
	assert.True(t, CorrespondTo(errors.New("Parameter \"step\" must not be 0"), "must NOT be 0"))
	assert.False(t, CorrespondTo(errors.New("Parameter \"step\" must not be 0"), "is not a number", "must be an integer"))
}

func TestIgnore(t *testing.T) {
	assert.NoError(t, Ignore(ErrEOF, ErrEOF))
	assert.NoError(t, Ignore(fmt.Errorf("wrapped: %w", ErrEOF), ErrUnknown, ErrEOF))
	assert.Equal(t, ErrInvalid, Ignore(ErrInvalid, ErrEOF))
	assert.NoError(t, Ignore(nil, ErrEOF))
}

func TestNew(t *testing.T) {
	msg := faker.Sentence()
	err := New(ErrInvalidType, msg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidType))
	assert.True(t, CorrespondTo(err, msg))
	assert.Equal(t, ErrOutOfRange, New(ErrOutOfRange, "  "))
	assert.Equal(t, msg, New(nil, msg).Error())

	err = Newf(ErrOutOfRange, "Parameter %q must not be negative", "amount")
	assert.True(t, Any(err, ErrOutOfRange))
	assert.Equal(t, "out of range: Parameter \"amount\" must not be negative", err.Error())
}

func TestWrapError(t *testing.T) {
	original := errors.New(faker.Sentence())
	err := WrapError(ErrInvalid, original, "could not load")
	assert.True(t, Any(err, ErrInvalid))
	assert.True(t, CorrespondTo(err, original.Error()))
	assert.True(t, errors.Is(err, original))

	err = WrapError(ErrInvalid, New(ErrInvalid, faker.Word()), "already invalid")
	assert.True(t, Any(err, ErrInvalid))
	assert.True(t, CorrespondTo(err, "already invalid"))

	err = WrapErrorf(ErrUnexpected, nil, "no cause %v", 1)
	assert.True(t, Any(err, ErrUnexpected))
	assert.True(t, CorrespondTo(err, "no cause 1"))
}
