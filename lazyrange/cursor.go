/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package lazyrange

import (
	"iter"
	"slices"

	"github.com/ARM-software/golang-lazyrange/collection"
)

// Predicate is evaluated against an element of a range, its logical index and the range it belongs to.
type Predicate func(value, index int, owner Range) bool

// OnValue adapts a predicate which only considers element values.
func OnValue(f collection.Predicate[int]) Predicate {
	return func(value, _ int, _ Range) bool {
		return f(value)
	}
}

// Not returns a predicate negating p.
func Not(p Predicate) Predicate {
	return func(value, index int, owner Range) bool {
		return !p(value, index, owner)
	}
}

type cursorMode uint8

const (
	modeAll cursorMode = iota
	modeFilter
	modeTakeWhile
)

// Cursor produces the elements of a range one at a time, in index order.
// A cursor is single-pass: once exhausted, it stays exhausted. It must not be advanced concurrently.
type Cursor struct {
	owner     Range
	index     int
	limit     int
	predicate Predicate
	mode      cursorMode
	done      bool
}

func newCursor(owner Range, from, limit int, mode cursorMode, predicate Predicate) *Cursor {
	if predicate == nil {
		mode = modeAll
	}
	return &Cursor{
		owner:     owner,
		index:     min(max(from, 0), owner.length),
		limit:     min(max(limit, 0), owner.length),
		predicate: predicate,
		mode:      mode,
	}
}

// Next returns the next element. ok is false once the cursor is exhausted, and for every call afterwards.
func (c *Cursor) Next() (value int, ok bool) {
	if c == nil || c.done {
		return
	}
	for c.index < c.limit {
		index := c.index
		c.index++
		value = c.owner.at(index)
		switch c.mode {
		case modeFilter:
			if !c.predicate(value, index, c.owner) {
				continue
			}
		case modeTakeWhile:
			if !c.predicate(value, index, c.owner) {
				c.done = true
				return 0, false
			}
		}
		return value, true
	}
	c.done = true
	return 0, false
}

// Seq returns a sequence over the elements the cursor has not produced yet.
func (c *Cursor) Seq() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the cursor into a slice.
func (c *Cursor) Collect() []int {
	return slices.Collect(c.Seq())
}

// Iterate returns a cursor over all the elements of the range.
func (r Range) Iterate() *Cursor {
	return newCursor(r, 0, r.length, modeAll, nil)
}

// Values returns a sequence over the elements of the range. Every iteration starts again from the first element.
func (r Range) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < r.length; i++ {
			if !yield(r.at(i)) {
				return
			}
		}
	}
}

// All returns a sequence over the logical indexes and elements of the range, similarly to slices.All.
func (r Range) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i < r.length; i++ {
			if !yield(i, r.at(i)) {
				return
			}
		}
	}
}

// Take returns a cursor over at most n elements from the front of the range. It is empty if n <= 0.
func (r Range) Take(n int) *Cursor {
	return newCursor(r, 0, n, modeAll, nil)
}

// Skip returns a cursor over the elements from logical index n onwards.
// Unlike slicing, a negative n is not resolved from the end and results in an error of type commonerrors.ErrOutOfRange.
func (r Range) Skip(n int) (*Cursor, error) {
	if n < 0 {
		return nil, newOutOfRangeError(paramAmount, "must not be negative")
	}
	return newCursor(r, n, r.length, modeAll, nil), nil
}

// SkipValue is similar to Skip but accepts a loosely typed amount which is validated as in FromValues.
func (r Range) SkipValue(amount any) (*Cursor, error) {
	n, err := toInteger(paramAmount, amount)
	if err != nil {
		return nil, err
	}
	return r.Skip(n)
}

// Filter returns a cursor over the elements for which p holds. A nil predicate holds for every element.
func (r Range) Filter(p Predicate) *Cursor {
	return newCursor(r, 0, r.length, modeFilter, p)
}

// Reject returns a cursor over the elements for which p does not hold.
func (r Range) Reject(p Predicate) *Cursor {
	if p == nil {
		return r.Take(0)
	}
	return r.Filter(Not(p))
}

// TakeWhile returns a cursor over the leading elements for which p holds. The cursor is exhausted as soon as
// p does not hold, even if later elements would satisfy it.
func (r Range) TakeWhile(p Predicate) *Cursor {
	return newCursor(r, 0, r.length, modeTakeWhile, p)
}
