// Package errortest provides test assertions on errors built with commonerrors.
package errortest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ARM-software/golang-lazyrange/commonerrors"
)

// AssertError asserts that the error is matching one of the `expectedErrors`
// This is a wrapper for commonerrors.Any.
func AssertError(t *testing.T, err error, expectedErrors ...error) bool {
	t.Helper()
	if commonerrors.Any(err, expectedErrors...) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Failed error assertion:\n actual: %v\n expected: %+v", err, expectedErrors))
}

// AssertErrorDescription asserts that the error description corresponds to one of the `expectedErrorDescriptions`
// This is a wrapper for commonerrors.CorrespondTo.
func AssertErrorDescription(t *testing.T, err error, expectedErrorDescriptions ...string) bool {
	t.Helper()
	if commonerrors.CorrespondTo(err, expectedErrorDescriptions...) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Failed error description assertion:\n actual: %v\n expected: %+v", err, expectedErrorDescriptions))
}

// AssertErrorKind asserts both the kind of the error and that its description contains `description`.
func AssertErrorKind(t *testing.T, err error, kind error, description string) bool {
	t.Helper()
	return AssertError(t, err, kind) && AssertErrorDescription(t, err, description)
}

// RequireError requires that the error is matching one of the `expectedErrors`
// This is a wrapper for commonerrors.Any.
func RequireError(t *testing.T, err error, expectedErrors ...error) {
	t.Helper()
	if commonerrors.Any(err, expectedErrors...) {
		return
	}
	t.FailNow()
}

// RequireErrorDescription requires that the error description corresponds to one of the `expectedErrorDescriptions`
// This is a wrapper for commonerrors.CorrespondTo.
func RequireErrorDescription(t *testing.T, err error, expectedErrorDescriptions ...string) {
	t.Helper()
	if commonerrors.CorrespondTo(err, expectedErrorDescriptions...) {
		return
	}
	t.FailNow()
}
