package logstest

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ARM-software/golang-lazyrange/commonerrors"
)

func TestLoggers(t *testing.T) {
	NewTestLogger(t).Error(commonerrors.ErrUnexpected, faker.Sentence())
	assert.True(t, NewTestLogger(t).V(1).Enabled())
	NewStdTestLogger().Info(faker.Sentence())
	NewNullTestLogger().Info(faker.Sentence())
}
