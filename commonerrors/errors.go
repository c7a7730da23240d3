/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines common errors shared across packages so that callers can check error kinds using errors.Is.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoLogger       = errors.New("missing logger")
	ErrUndefined      = errors.New("undefined")
	ErrNotFound       = errors.New("not found")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnknown        = errors.New("unknown")
	ErrInvalid        = errors.New("invalid")
	ErrMarshalling    = errors.New("unserialisable")
	ErrUnexpected     = errors.New("unexpected")
	ErrEOF            = errors.New("end of file")
	// ErrInvalidType is returned when an argument is missing, not a number, or not an integer.
	ErrInvalidType = errors.New("invalid type")
	// ErrOutOfRange is returned when a well-typed argument violates a domain constraint.
	ErrOutOfRange = errors.New("out of range")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo states whether the error description contains one of the descriptions provided (case insensitive).
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(desc, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// Ignore returns nil if `target` is of one of the types `ignore`, otherwise returns `target`.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// New creates a new error of type targetErr with the message msg.
func New(targetErr error, msg string) error {
	if targetErr == nil {
		return errors.New(msg)
	}
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return targetErr
	}
	return fmt.Errorf("%w: %v", targetErr, msg)
}

// Newf is similar to New but with a formatted message.
func Newf(targetErr error, format string, args ...any) error {
	return New(targetErr, fmt.Sprintf(format, args...))
}

// WrapError wraps an error `originalErr` into an error of type `targetErr` with the message msg.
// If originalErr is already of type targetErr, it is simply annotated with msg. The resulting error matches both types.
func WrapError(targetErr, originalErr error, msg string) error {
	if originalErr == nil {
		return New(targetErr, msg)
	}
	if targetErr == nil || Any(originalErr, targetErr) {
		return fmt.Errorf("%v: %w", msg, originalErr)
	}
	return fmt.Errorf("%w: %v: %w", targetErr, msg, originalErr)
}

// WrapErrorf is similar to WrapError but with a formatted message.
func WrapErrorf(targetErr, originalErr error, format string, args ...any) error {
	return WrapError(targetErr, originalErr, fmt.Sprintf(format, args...))
}
