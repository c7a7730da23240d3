package lazyrange

import (
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-lazyrange/commonerrors"
)

var _ logr.Marshaler = Range{}

// MarshalText encodes the range as `start:stop:step`.
func (r Range) MarshalText() ([]byte, error) {
	return []byte(strings.Join([]string{
		strconv.Itoa(r.start),
		strconv.Itoa(r.stop),
		strconv.Itoa(r.Step()),
	}, TextSeparator)), nil
}

// UnmarshalText decodes a range in any of the forms accepted by Parse.
// Ranges are immutable: only a zero Range can be decoded into.
func (r *Range) UnmarshalText(text []byte) error {
	if r == nil {
		return commonerrors.ErrUndefined
	}
	if *r != (Range{}) {
		return commonerrors.Newf(commonerrors.ErrInvalid, "cannot decode into the already constructed range %v", r)
	}
	decoded, err := Parse(string(text))
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not decode range")
	}
	*r = decoded
	return nil
}

type loggedRange struct {
	Start  int `json:"start"`
	Stop   int `json:"stop"`
	Step   int `json:"step"`
	Length int `json:"length"`
}

// MarshalLog returns the structure to log in place of the range when using logr.
func (r Range) MarshalLog() any {
	return loggedRange{
		Start:  r.start,
		Stop:   r.stop,
		Step:   r.Step(),
		Length: r.length,
	}
}
