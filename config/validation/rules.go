// Package validation defines ozzo-validation rules for range configurations.
package validation

import (
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-lazyrange/commonerrors"
	"github.com/ARM-software/golang-lazyrange/lazyrange"
)

// IsRangeDefinition checks that a string describes a range in a form accepted by lazyrange.Parse.
// Empty strings are considered valid; use validation.Required to reject them.
func IsRangeDefinition() validation.Rule {
	return validation.By(func(vRaw any) (err error) {
		var text string
		switch v := vRaw.(type) {
		case string:
			text = v
		case *string:
			if v == nil {
				return
			}
			text = *v
		case []byte:
			text = string(v)
		default:
			return commonerrors.Newf(commonerrors.ErrMarshalling, "unsupported type for range validation: %T", vRaw)
		}
		if text == "" {
			return
		}
		_, err = lazyrange.Parse(text)
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid range definition")
		}
		return
	})
}

// IsStep checks that an integer can be used as the step of a range i.e. is not 0.
func IsStep() validation.Rule {
	return validation.By(func(vRaw any) error {
		val := reflect.Indirect(reflect.ValueOf(vRaw))
		switch val.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if val.Int() == 0 {
				return commonerrors.New(commonerrors.ErrInvalid, "step must not be 0")
			}
			return nil
		case reflect.Invalid:
			return nil
		default:
			return commonerrors.Newf(commonerrors.ErrMarshalling, "unsupported type for step validation: %T", vRaw)
		}
	})
}
