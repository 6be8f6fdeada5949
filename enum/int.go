package enum

import (
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v2"
)

var intKind = kind[int]{
	name:   "int",
	strict: strictInt,
	coerce: coerceInt,
}

// NewInt defines an integer-backed enumeration type under id.
func NewInt(id string, source Source[int], opts ...TypeOption) (*Type[int], error) {
	return define(id, source, intKind, opts)
}

// MustInt is like NewInt but panics on error.
func MustInt(id string, source Source[int], opts ...TypeOption) *Type[int] {
	t, err := NewInt(id, source, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// strictInt accepts every Go integer kind whose value fits in int.
func strictInt(x any) (int, bool) {
	switch n := x.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return fitInt(n)
	case uint:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return fitInt(int64(n))
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return fitInt(int64(n))
	default:
		return 0, false
	}
}

func fitInt(n int64) (int, bool) {
	if n < math.MinInt || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

// coerceInt additionally accepts strings that denote an exact integer in
// decimal or exponent notation, and integral floats such as the float64
// values encoding/json decodes numbers into.
func coerceInt(x any) (int, bool) {
	if n, ok := strictInt(x); ok {
		return n, true
	}

	var s string
	switch v := x.(type) {
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(v), 'g', -1, 32)
	default:
		return 0, false
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return 0, false
	}
	n, err := d.Int64()
	if err != nil {
		return 0, false
	}
	return fitInt(n)
}
