package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-lazyrange/commonerrors"
	"github.com/ARM-software/golang-lazyrange/field"
)

// IValidationError defines a typical structure validation error.
// Such errors are all of type commonerrors.ErrInvalid.
type IValidationError interface {
	error
	fmt.Stringer
	Unwrap() error
	// GetFieldPath returns the path of the faulty field e.g. `Range->Step`.
	GetFieldPath() string
	// GetEnvironmentVariable returns the environment variable corresponding to the faulty field, if known, e.g. `RANGE_STEP`.
	GetEnvironmentVariable() string
	GetReason() string
	RecordField(fieldName string, mapStructureFieldName *string)
	RecordPrefix(envVarPrefix string)
}

// WrapValidationError converts any error resulting from the validation of a structure into an IValidationError.
func WrapValidationError(envVarPrefix *string, err error) IValidationError {
	vErr := newValidationError(err)
	if vErr == nil {
		return nil
	}
	if field.OptionalString(envVarPrefix, "") != "" {
		vErr.RecordPrefix(*envVarPrefix)
	}
	return vErr
}

type validationError struct {
	tree             []string
	mapStructureTree []string
	prefix           *string
	reason           string
}

func (v *validationError) RecordField(fieldName string, mapStructureFieldName *string) {
	v.tree = slices.Insert(v.tree, 0, strings.TrimSpace(fieldName))
	if mapStructureFieldName != nil {
		v.mapStructureTree = slices.Insert(v.mapStructureTree, 0, strings.ToUpper(strings.TrimSpace(*mapStructureFieldName)))
	}
}

func (v *validationError) RecordPrefix(envVarPrefix string) {
	v.prefix = field.ToOptionalString(envVarPrefix)
}

func (v *validationError) GetFieldPath() string {
	return strings.Join(v.tree, "->")
}

func (v *validationError) GetEnvironmentVariable() string {
	if len(v.mapStructureTree) == 0 {
		return ""
	}
	envVar := strings.ReplaceAll(strings.Join(v.mapStructureTree, EnvVarSeparator), "-", EnvVarSeparator)
	if prefix := strings.TrimSpace(field.OptionalString(v.prefix, "")); prefix != "" {
		envVar = strings.ToUpper(prefix) + EnvVarSeparator + envVar
	}
	return envVar
}

func (v *validationError) GetReason() string {
	return v.reason
}

func (v *validationError) Error() string {
	details := ""
	if path := v.GetFieldPath(); path != "" {
		details += fmt.Sprintf(" (%v)", path)
	}
	if envVar := v.GetEnvironmentVariable(); envVar != "" {
		details += fmt.Sprintf(" [%v]", envVar)
	}
	if v.reason != "" {
		details += " " + v.reason
	}
	return commonerrors.Newf(v.Unwrap(), "structure failed validation:%v", details).Error()
}

func (v *validationError) String() string {
	return v.Error()
}

func (v *validationError) Unwrap() error {
	return commonerrors.ErrInvalid
}

func newValidationError(err error) *validationError {
	if err == nil {
		return nil
	}
	var vErr *validationError
	if errors.As(err, &vErr) {
		return vErr
	}
	var oes validation.Errors
	if errors.As(err, &oes) {
		return newValidationErrorFromOzzoValidationErrors(oes)
	}
	var oe validation.Error
	if errors.As(err, &oe) {
		return &validationError{reason: oe.Message()}
	}
	return &validationError{reason: err.Error()}
}

// newValidationErrorFromOzzoValidationErrors only keeps the first faulty field, in alphabetical order.
func newValidationErrorFromOzzoValidationErrors(oes validation.Errors) *validationError {
	params := slices.Sorted(maps.Keys(oes))
	if len(params) == 0 {
		return &validationError{reason: oes.Error()}
	}
	param := params[0]
	vErr := newValidationError(oes[param])
	vErr.RecordField(param, field.ToOptionalString(param))
	return vErr
}
