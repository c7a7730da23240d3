package logrimp

import (
	"bytes"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ARM-software/golang-lazyrange/commonerrors"
)

func TestStdOutLogger(t *testing.T) {
	logger := NewStdOutLogr()
	logger.WithName(faker.Name()).WithValues(faker.Word(), faker.Name()).Error(commonerrors.ErrUnexpected, faker.Sentence())
	logger.Info(faker.Sentence(), faker.Word(), faker.Name())
	assert.False(t, logger.V(1).Enabled())
	assert.True(t, NewStdOutLogrWithVerbosity(1).V(1).Enabled())
}

func TestZapLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core))
	message := faker.Sentence()
	logger.Info(message, "key", faker.Word())
	logger.Error(commonerrors.ErrUnexpected, faker.Sentence())
	assert.Equal(t, 2, recorded.Len())
	assert.Equal(t, 1, recorded.FilterMessage(message).Len())
}

func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()
	logger.Info(faker.Sentence())
	assert.False(t, logger.Enabled())
}

func TestStdLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	message := faker.Sentence()
	logger := NewWriterLogr(buf, "[test] ")
	logger.Info(message, "key", "value")
	assert.Contains(t, buf.String(), message)
	assert.Contains(t, buf.String(), "[test] ")
	assert.Contains(t, buf.String(), `"key"="value"`)

	assert.False(t, NewStdLogr(nil).Enabled())
	assert.False(t, NewWriterLogr(nil, "").Enabled())
}
