package enum

import (
	"fmt"

	"github.com/zero-day-ai/typedenum/strcase"
)

// Scalar is the set of value kinds an enumeration can be backed by.
type Scalar interface {
	int | string
}

// Constant is one declared (key, value) pair.
type Constant[V Scalar] struct {
	Key   string `json:"key" yaml:"key"`
	Value V      `json:"value" yaml:"value"`
}

// Source supplies a type's declared constants in declaration order. It is
// consulted once, when the type is first used.
type Source[V Scalar] interface {
	Constants() ([]Constant[V], error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc[V Scalar] func() ([]Constant[V], error)

// Constants calls f.
func (f SourceFunc[V]) Constants() ([]Constant[V], error) {
	return f()
}

// Table is an explicit, ordered declaration.
//
//	var Color = enum.MustInt("Color", enum.Table[int]{
//		{Key: "YELLOW", Value: 1},
//		{Key: "PURPLE", Value: 2},
//		{Key: "ORANGE", Value: 3},
//	})
type Table[V Scalar] []Constant[V]

// Constants returns t.
func (t Table[V]) Constants() ([]Constant[V], error) {
	return t, nil
}

// table is the populated registry entry for one type.
type table[V Scalar] struct {
	constants []Constant[V]
	byKey     map[string]V
	byValue   map[V]string

	// isMethods and makeMethods map precomputed accessor names ("isDarkBlue",
	// "makeDarkBlue") to their keys. Only keys whose PascalCase form derives the
	// key again are listed.
	isMethods   map[string]string
	makeMethods map[string]string
}

func buildTable[V Scalar](declared []Constant[V]) (*table[V], error) {
	t := &table[V]{
		constants:   make([]Constant[V], 0, len(declared)),
		byKey:       make(map[string]V, len(declared)),
		byValue:     make(map[V]string, len(declared)),
		isMethods:   make(map[string]string, len(declared)),
		makeMethods: make(map[string]string, len(declared)),
	}

	for _, c := range declared {
		key := strcase.ToUpper(c.Key)
		if key == "" {
			return nil, fmt.Errorf("empty key for value %v", c.Value)
		}
		if _, dup := t.byKey[key]; dup {
			return nil, fmt.Errorf("duplicate key %s", key)
		}
		if other, dup := t.byValue[c.Value]; dup {
			return nil, fmt.Errorf("duplicate value %v for keys %s and %s", c.Value, other, key)
		}

		t.constants = append(t.constants, Constant[V]{Key: key, Value: c.Value})
		t.byKey[key] = c.Value
		t.byValue[c.Value] = key

		if strcase.RoundTrips(key) {
			name := strcase.ToPascalCase(key)
			t.isMethods["is"+name] = key
			t.makeMethods["make"+name] = key
		}
	}

	return t, nil
}

func (t *table[V]) keys() []string {
	keys := make([]string, len(t.constants))
	for i, c := range t.constants {
		keys[i] = c.Key
	}
	return keys
}

func (t *table[V]) values() []V {
	values := make([]V, len(t.constants))
	for i, c := range t.constants {
		values[i] = c.Value
	}
	return values
}
