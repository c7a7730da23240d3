package lazyrange

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/ARM-software/golang-lazyrange/commonerrors"
	"github.com/ARM-software/golang-lazyrange/safecast"
)

const (
	paramStart  = "start"
	paramStop   = "stop"
	paramStep   = "step"
	paramAmount = "amount"

	// TextSeparator separates the start, stop and step of a range in its textual form.
	TextSeparator = ":"
)

// FromValues creates a range from loosely typed arguments interpreted as (stop), (start, stop) or (start, stop, step).
// start, stop and step are validated in that order. Each must be an integral number:
//   - commonerrors.ErrInvalidType is returned if an argument is missing, is not a number or is not an integer;
//   - commonerrors.ErrOutOfRange is returned if an argument does not fit an int or if step is 0.
//
// A nil stop in the two-argument form and a nil step are treated as omitted.
func FromValues(args ...any) (r Range, err error) {
	var rawStart, rawStop, rawStep any = 0, nil, nil
	switch len(args) {
	case 0:
	case 1:
		rawStop = args[0]
	case 2:
		rawStart, rawStop = args[0], args[1]
		if rawStop == nil {
			rawStart, rawStop = 0, args[0]
		}
	case 3:
		rawStart, rawStop, rawStep = args[0], args[1], args[2]
	default:
		err = commonerrors.Newf(commonerrors.ErrInvalidType, "expected between 1 and 3 arguments but got %v", len(args))
		return
	}
	start, err := toInteger(paramStart, rawStart)
	if err != nil {
		return
	}
	stop, err := toInteger(paramStop, rawStop)
	if err != nil {
		return
	}
	step := 1
	if rawStep != nil {
		step, err = toInteger(paramStep, rawStep)
		if err != nil {
			return
		}
	}
	return NewWithStep(start, stop, step)
}

// Parse creates a range from its textual form `stop`, `start:stop` or `start:stop:step`.
// Each part is validated as in FromValues.
func Parse(text string) (Range, error) {
	parts := strings.Split(strings.TrimSpace(text), TextSeparator)
	args := make([]any, 0, len(parts))
	for i := range parts {
		args = append(args, parseNumber(parts[i]))
	}
	return FromValues(args...)
}

// parseNumber returns an int or a float64 when the text describes a number, nil when it is empty and the text itself otherwise.
func parseNumber(text string) any {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if i, err := strconv.ParseInt(text, 10, strconv.IntSize); err == nil {
		return int(i)
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil || commonerrors.Any(err, strconv.ErrRange) {
		return f
	}
	return text
}

// toInteger converts value into an int if it is an integral number which fits an int.
func toInteger(parameter string, value any) (int, error) {
	if i, ok := value.(int); ok {
		return i, nil
	}
	if value == nil {
		return 0, newInvalidTypeError(parameter, "is not a number")
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		if !safecast.FitsInt(i) {
			return 0, newOutOfRangeError(parameter, "is out of range")
		}
		return safecast.ToInt(i), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if !safecast.FitsInt(u) {
			return 0, newOutOfRangeError(parameter, "is out of range")
		}
		return safecast.ToInt(u), nil
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		switch {
		case math.IsNaN(f):
			return 0, newInvalidTypeError(parameter, "is not a number")
		case math.IsInf(f, 0) || f != math.Trunc(f):
			return 0, newInvalidTypeError(parameter, "must be an integer")
		case !safecast.FitsInt(f):
			return 0, newOutOfRangeError(parameter, "is out of range")
		}
		return safecast.ToInt(f), nil
	default:
		return 0, newInvalidTypeError(parameter, "is not a number")
	}
}
