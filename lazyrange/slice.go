package lazyrange

import (
	"math"

	"github.com/ARM-software/golang-lazyrange/field"
)

// Slice returns the sub-range between the logical indexes start (inclusive) and end (exclusive), following
// Python's slice conventions. stepMult multiplies the step of the range.
//   - nil arguments are omitted: start defaults to 0, end to Len() and stepMult to 1;
//   - negative indexes count from the end. A start before the first element resolves to 0, and so does an end.
//
// The bounds of the returned range are the elements found at the resolved indexes. When no element exists at
// an index, the start (respectively the stop) of r is used as is. The length of the returned range is then
// derived from these bounds and the new step, and may therefore differ from end-start.
// An error of type commonerrors.ErrOutOfRange is returned if the new step is 0 or overflows.
func (r Range) Slice(start, end, stepMult *int) (Range, error) {
	startIndex := r.resolveSliceIndex(start, 0)
	endIndex := r.resolveSliceIndex(end, r.length)

	startValue, endValue := r.start, r.stop
	cursor := r.Iterate()
	for i := 0; ; i++ {
		v, ok := cursor.Next()
		if !ok {
			break
		}
		if i == startIndex {
			startValue = v
		}
		if i == endIndex {
			endValue = v
		}
		if i >= startIndex && i >= endIndex {
			break
		}
	}

	step, ok := multiplyStep(r.Step(), field.OptionalInt(stepMult, 1))
	if !ok {
		return Range{}, newOutOfRangeError(paramStep, "is out of range")
	}
	return NewWithStep(startValue, endValue, step)
}

// resolveSliceIndex resolves a negative index from the end of the range. Indexes before the first element resolve to 0.
func (r Range) resolveSliceIndex(index *int, defaultIndex int) int {
	i := field.OptionalInt(index, defaultIndex)
	switch {
	case i < -r.length:
		return 0
	case i < 0:
		return r.length + i
	default:
		return i
	}
}

// multiplyStep returns step*multiplier unless the product overflows.
func multiplyStep(step, multiplier int) (int, bool) {
	if step == 0 || multiplier == 0 {
		return 0, true
	}
	if (step == -1 && multiplier == math.MinInt) || (multiplier == -1 && step == math.MinInt) {
		return 0, false
	}
	product := step * multiplier
	if product/multiplier != step {
		return 0, false
	}
	return product, true
}
