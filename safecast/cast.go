// Package safecast provides numeric conversions which saturate instead of silently wrapping around.
package safecast

import "math"

// ToInt attempts to convert any [IConvertable] value to an int.
// If the conversion results in a value outside the range of an int,
// the closest boundary value will be returned.
func ToInt[C IConvertable](i C) int {
	if lessThanLowerBoundary(i, math.MinInt) {
		return math.MinInt
	}
	if greaterThanUpperBoundary(i, math.MaxInt) {
		return math.MaxInt
	}
	return int(i)
}

// FitsInt states whether i can be converted to an int without being clamped.
// NaN never fits.
func FitsInt[C IConvertable](i C) bool {
	switch f := any(i).(type) {
	case float64:
		return floatFitsInt(f)
	case float32:
		return floatFitsInt(float64(f))
	}
	return !lessThanLowerBoundary(i, math.MinInt) && !greaterThanUpperBoundary(i, math.MaxInt)
}

func floatFitsInt(f float64) bool {
	return !math.IsNaN(f) && f >= math.MinInt && f < math.MaxInt
}
