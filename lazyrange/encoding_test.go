package lazyrange

import (
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-lazyrange/commonerrors"
	"github.com/ARM-software/golang-lazyrange/commonerrors/errortest"
	"github.com/ARM-software/golang-lazyrange/logs/logstest"
)

func TestMarshalText(t *testing.T) {
	text, err := mustRange(t, 0, 20, 2).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0:20:2", string(text))

	text, err = Range{}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0:0:1", string(text))

	for _, r := range []Range{New(10), mustRange(t, 10, 1, -3), NewBetween(-4, 4), {}} {
		text, err = r.MarshalText()
		require.NoError(t, err)
		var decoded Range
		require.NoError(t, decoded.UnmarshalText(text))
		assert.True(t, r.Equals(decoded))
		assert.Equal(t, r.String(), decoded.String())
	}
}

func TestUnmarshalText(t *testing.T) {
	var r Range
	require.NoError(t, r.UnmarshalText([]byte("5:25:3")))
	assert.Equal(t, []int{5, 8, 11, 14, 17, 20, 23}, r.Iterate().Collect())

	err := r.UnmarshalText([]byte("10"))
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	assert.Equal(t, 5, r.Start())

	var invalid Range
	err = invalid.UnmarshalText([]byte("0:10:0"))
	errortest.AssertError(t, err, commonerrors.ErrMarshalling)
	errortest.AssertError(t, err, commonerrors.ErrOutOfRange)
	assert.Equal(t, Range{}, invalid)

	var nilRange *Range
	errortest.AssertError(t, nilRange.UnmarshalText([]byte("1")), commonerrors.ErrUndefined)
}

func TestMarshalLog(t *testing.T) {
	var logged string
	logger := funcr.New(func(_, args string) {
		logged = args
	}, funcr.Options{})
	logger.Info("range", "value", mustRange(t, 10, 1, -3))
	assert.Contains(t, logged, `"start":10`)
	assert.Contains(t, logged, `"stop":1`)
	assert.Contains(t, logged, `"step":-3`)
	assert.Contains(t, logged, `"length":3`)

	logstest.NewTestLogger(t).Info("logging a range", "range", New(4))
}
