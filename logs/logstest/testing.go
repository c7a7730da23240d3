// Package logstest provides loggers for tests.
package logstest

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"

	"github.com/ARM-software/golang-lazyrange/logs/logrimp"
)

// NewNullTestLogger returns a logger to nothing
func NewNullTestLogger() logr.Logger {
	return logrimp.NewNoOpLogger()
}

// NewStdTestLogger returns a test logger to standard output.
func NewStdTestLogger() logr.Logger {
	return logrimp.NewStdOutLogr()
}

// NewTestLogger returns a logger to use in tests. Messages up to verbosity 1 are printed.
func NewTestLogger(t *testing.T) logr.Logger {
	return testr.NewWithOptions(t, testr.Options{Verbosity: 1})
}
