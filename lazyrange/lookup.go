package lazyrange

import "github.com/ARM-software/golang-lazyrange/collection"

// At returns the element at the given logical index. found is false if index is not within [0, Len()).
func (r Range) At(index int) (value int, found bool) {
	if index < 0 || index >= r.length {
		return
	}
	return r.at(index), true
}

func (r Range) at(index int) int {
	return r.start + index*r.step
}

// First returns the first element of the range, if any.
func (r Range) First() (int, bool) {
	return r.At(0)
}

// Last returns the last element of the range, if any.
func (r Range) Last() (int, bool) {
	return r.At(r.length - 1)
}

// Has states whether value is an element of the range.
func (r Range) Has(value int) bool {
	_, found := r.indexOf(value)
	return found
}

// IndexOf returns the logical index of value in the range or -1 if value is not an element of the range.
func (r Range) IndexOf(value int) int {
	index, found := r.indexOf(value)
	if !found {
		return -1
	}
	return index
}

func (r Range) indexOf(value int) (index int, found bool) {
	if r.length == 0 {
		return
	}
	var distance uint64
	if r.step > 0 {
		if value < r.start {
			return
		}
		distance = uint64(value) - uint64(r.start)
	} else {
		if value > r.start {
			return
		}
		distance = uint64(r.start) - uint64(value)
	}
	s := magnitude(r.step)
	if distance%s != 0 {
		return
	}
	q := distance / s
	if q >= uint64(r.length) {
		return
	}
	return int(q), true
}

// Equals states whether other is a range producing exactly the same elements as r.
// Values which are not ranges are never equal to a range. Any two empty ranges are equal.
func (r Range) Equals(other any) bool {
	o, ok := asRange(other)
	if !ok {
		return false
	}
	if r.length != o.length {
		return false
	}
	// Two progressions sharing their length, step and first element are identical.
	if r.length >= 2 && r.step == o.step {
		return r.start == o.start
	}
	return collection.EqualSequences(r.Values(), o.Values())
}
