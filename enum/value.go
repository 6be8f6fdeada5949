package enum

import (
	"encoding/json"
	"fmt"
)

// Value is an instance of an enumeration type. It holds one declared scalar and
// the type it was constructed from. Values are immutable and compare equal with
// == exactly when Equals reports true.
//
// The zero Value belongs to no type: it has no key and equals nothing.
type Value[V Scalar] struct {
	typ   *Type[V]
	value V
}

// Type returns the instance's enumeration type, or nil for the zero Value.
func (v Value[V]) Type() *Type[V] {
	return v.typ
}

// Enumeration returns the instance's type as an Enumeration, or nil for the
// zero Value.
func (v Value[V]) Enumeration() Enumeration {
	if v.typ == nil {
		return nil
	}
	return v.typ
}

// Value returns the scalar value.
func (v Value[V]) Value() V {
	return v.value
}

// Scalar returns the scalar value as any.
func (v Value[V]) Scalar() any {
	return v.value
}

// Key returns the key the value is declared under.
func (v Value[V]) Key() string {
	if v.typ == nil {
		return ""
	}
	return v.typ.mustTable().byValue[v.value]
}

// IsZero reports whether v is the zero Value.
func (v Value[V]) IsZero() bool {
	return v.typ == nil
}

// Is reports whether the scalar value equals any of values.
func (v Value[V]) Is(values ...V) bool {
	if v.typ == nil {
		return false
	}
	for _, candidate := range values {
		if v.value == candidate {
			return true
		}
	}
	return false
}

// Equals reports whether any of others is an instance of the same enumeration
// type holding the same value. Instances of different types are never equal,
// even when their keys and scalar values coincide.
func (v Value[V]) Equals(others ...Instance) bool {
	if v.typ == nil {
		return false
	}
	for _, other := range others {
		if other == nil || other.Enumeration() != Enumeration(v.typ) {
			continue
		}
		if other.Scalar() == any(v.value) {
			return true
		}
	}
	return false
}

// SameAs is an alias for Equals.
func (v Value[V]) SameAs(others ...Instance) bool {
	return v.Equals(others...)
}

// String returns the string form of the scalar value.
func (v Value[V]) String() string {
	return fmt.Sprint(v.value)
}

// MarshalJSON encodes the bare scalar value.
func (v Value[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// MarshalYAML encodes the bare scalar value.
func (v Value[V]) MarshalYAML() (any, error) {
	return v.value, nil
}
