package logrimp

import (
	"io"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// NewStdLogr returns a logr.Logger backed by a standard library logger.
func NewStdLogr(logger *log.Logger) logr.Logger {
	if logger == nil {
		return NewNoOpLogger()
	}
	return stdr.New(logger)
}

// NewWriterLogr returns a logr.Logger writing to `w` with the given prefix.
func NewWriterLogr(w io.Writer, prefix string) logr.Logger {
	if w == nil {
		return NewNoOpLogger()
	}
	return NewStdLogr(log.New(w, prefix, log.LstdFlags))
}
