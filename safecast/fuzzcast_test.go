package safecast

import (
	"math"
	"testing"
)

func FuzzToInt(f *testing.F) {
	f.Add(0.0)
	f.Add(float64(math.MinInt))
	f.Add(float64(math.MaxInt))
	f.Add(math.Inf(1))
	f.Fuzz(func(t *testing.T, from float64) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic: %v", r)
			}
		}()
		converted := ToInt(from)
		if FitsInt(from) && float64(converted) != math.Trunc(from) {
			t.Fatalf("%v fits an int but was converted to %v", from, converted)
		}
	})
}

func FuzzFitsInt(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(math.MaxInt))
	f.Add(uint64(math.MaxUint64))
	f.Fuzz(func(t *testing.T, from uint64) {
		if FitsInt(from) != (from <= math.MaxInt) {
			t.Fatalf("unexpected boundary for %v", from)
		}
	})
}
