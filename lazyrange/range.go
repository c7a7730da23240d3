/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package lazyrange provides an immutable arithmetic sequence of integers similar to Python's built-in range().
// Elements are computed on demand from the start, stop and step of the range and are never stored.
//
//	Note: The stop value is always exclusive.
package lazyrange

import (
	"fmt"

	"github.com/ARM-software/golang-lazyrange/commonerrors"
	"github.com/ARM-software/golang-lazyrange/safecast"
)

// TypeTag is the canonical name identifying a Range.
const TypeTag = "LazyRange"

// Range is the sequence start, start+step, start+2*step, ... which stops before reaching or crossing stop.
// A Range cannot be modified once constructed and is therefore safe for concurrent reads.
// The zero value is an empty range with a step of 1.
type Range struct {
	start  int
	step   int
	stop   int
	length int
}

// New returns the range [0, stop).
func New(stop int) Range {
	return newRange(0, stop, 1)
}

// NewBetween returns the range [start, stop) with a step of 1.
func NewBetween(start, stop int) Range {
	return newRange(start, stop, 1)
}

// NewWithStep returns the range from start to stop (exclusive) in increments of step.
// An error of type commonerrors.ErrOutOfRange is returned if step is 0.
func NewWithStep(start, stop, step int) (r Range, err error) {
	if step == 0 {
		err = newOutOfRangeError(paramStep, "must not be 0")
		return
	}
	r = newRange(start, stop, step)
	return
}

func newRange(start, stop, step int) Range {
	return Range{
		start:  start,
		step:   step,
		stop:   stop,
		length: determineRangeLength(start, stop, step),
	}
}

// determineRangeLength returns max(0, ceil((stop-start)/step)) without overflowing.
// Lengths which do not fit an int are clamped to math.MaxInt.
func determineRangeLength(start, stop, step int) int {
	var distance uint64
	switch {
	case step > 0 && start < stop:
		distance = uint64(stop) - uint64(start)
	case step < 0 && stop < start:
		distance = uint64(start) - uint64(stop)
	default:
		return 0
	}
	return safecast.ToInt(1 + (distance-1)/magnitude(step))
}

// magnitude returns |i| as an unsigned integer, including for math.MinInt.
func magnitude(i int) uint64 {
	if i < 0 {
		return uint64(-(i + 1)) + 1
	}
	return uint64(i)
}

// IsRange states whether value is a Range (or a non-nil pointer to one).
func IsRange(value any) bool {
	_, ok := asRange(value)
	return ok
}

func asRange(value any) (r Range, ok bool) {
	switch v := value.(type) {
	case Range:
		return v, true
	case *Range:
		if v == nil {
			return
		}
		return *v, true
	}
	return
}

// Start returns the first value of the range, whether the range is empty or not.
func (r Range) Start() int {
	return r.start
}

// Stop returns the exclusive boundary of the range.
func (r Range) Stop() int {
	return r.stop
}

// Step returns the increment between consecutive elements.
func (r Range) Step() int {
	if r.step == 0 {
		return 1
	}
	return r.step
}

// Len returns the number of elements in the range.
func (r Range) Len() int {
	return r.length
}

// IsEmpty states whether the range has no elements.
func (r Range) IsEmpty() bool {
	return r.length == 0
}

// ToStringTag returns TypeTag.
func (r Range) ToStringTag() string {
	return TypeTag
}

// String returns a description of the range starting with its TypeTag e.g. LazyRange(0, 20, 2).
func (r Range) String() string {
	return fmt.Sprintf("%v(%v, %v, %v)", r.ToStringTag(), r.start, r.stop, r.Step())
}

func newInvalidTypeError(parameter, reason string) error {
	return commonerrors.Newf(commonerrors.ErrInvalidType, "Parameter %q %v", parameter, reason)
}

func newOutOfRangeError(parameter, reason string) error {
	return commonerrors.Newf(commonerrors.ErrOutOfRange, "Parameter %q %v", parameter, reason)
}
