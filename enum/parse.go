package enum

import (
	"strconv"

	"github.com/zero-day-ai/typedenum/strcase"
)

// Parse resolves untyped input to an instance. Input is first tried as a key:
// strings as-is and integers in decimal, compared case-insensitively. Failing
// that, it is coerced to the type's scalar kind and matched against the
// declared values. A key match always wins over a value match.
//
// Integer types coerce Go integers, integral floats and numeric strings
// denoting an exact integer ("2", "+2", "2.0", "2e0"). String types match
// strings exactly.
// Surrounding whitespace is never trimmed.
func (t *Type[V]) Parse(input any) (Value[V], error) {
	tbl, err := t.table("Parse")
	if err != nil {
		return Value[V]{}, err
	}

	if s, ok := keyCandidate(input); ok {
		if _, declared := tbl.byKey[strcase.ToUpper(s)]; declared {
			return t.WithKey(s)
		}
	}

	if v, ok := t.kind.coerce(input); ok {
		if _, declared := tbl.byValue[v]; declared {
			return Value[V]{typ: t, value: v}, nil
		}
	}

	return Value[V]{}, t.fail(newError(t.id, "Parse", CodeParseError,
		"argument could not be parsed to enum: %v", input))
}

// ParseAny is Parse for callers holding only an Enumeration.
func (t *Type[V]) ParseAny(input any) (Instance, error) {
	v, err := t.Parse(input)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func keyCandidate(input any) (string, bool) {
	switch v := input.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	default:
		return "", false
	}
}
