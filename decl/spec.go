package decl

import (
	"fmt"

	"github.com/zero-day-ai/typedenum/enum"
	"gopkg.in/yaml.v3"
)

type entry struct {
	key   string
	value *yaml.Node
}

func (s *Spec) entries() ([]entry, error) {
	if s.Constants.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("enum %s: constants must be a mapping", s.Name)
	}

	content := s.Constants.Content
	entries := make([]entry, 0, len(content)/2)
	for i := 0; i+1 < len(content); i += 2 {
		k, v := content[i], content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("enum %s: constant key on line %d is not a scalar", s.Name, k.Line)
		}
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("enum %s: constant %s on line %d is not a scalar", s.Name, k.Value, v.Line)
		}
		entries = append(entries, entry{key: k.Value, value: v})
	}
	return entries, nil
}

// Keys returns the declared keys in document order, as written.
func (s *Spec) Keys() ([]string, error) {
	entries, err := s.entries()
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}
	return keys, nil
}

// IntTable returns the constants of an int enum.
func (s *Spec) IntTable() (enum.Table[int], error) {
	if s.Kind != KindInt {
		return nil, fmt.Errorf("enum %s: kind is %s, not %s", s.Name, s.Kind, KindInt)
	}

	entries, err := s.entries()
	if err != nil {
		return nil, err
	}

	table := make(enum.Table[int], 0, len(entries))
	for _, e := range entries {
		if e.value.ShortTag() != "!!int" {
			return nil, fmt.Errorf("enum %s: constant %s on line %d is not an integer", s.Name, e.key, e.value.Line)
		}
		var v int
		if err := e.value.Decode(&v); err != nil {
			return nil, fmt.Errorf("enum %s: constant %s on line %d: %w", s.Name, e.key, e.value.Line, err)
		}
		table = append(table, enum.Constant[int]{Key: e.key, Value: v})
	}
	return table, nil
}

// StringTable returns the constants of a string enum.
func (s *Spec) StringTable() (enum.Table[string], error) {
	if s.Kind != KindString {
		return nil, fmt.Errorf("enum %s: kind is %s, not %s", s.Name, s.Kind, KindString)
	}

	entries, err := s.entries()
	if err != nil {
		return nil, err
	}

	table := make(enum.Table[string], 0, len(entries))
	for _, e := range entries {
		if e.value.ShortTag() != "!!str" {
			return nil, fmt.Errorf("enum %s: constant %s on line %d is not a string", s.Name, e.key, e.value.Line)
		}
		table = append(table, enum.Constant[string]{Key: e.key, Value: e.value.Value})
	}
	return table, nil
}

// Define defines the enum as an int or string type according to its kind.
// The constants are read on first use of the type.
func (s *Spec) Define(opts ...enum.TypeOption) (enum.Enumeration, error) {
	spec := *s
	switch s.Kind {
	case KindInt:
		t, err := enum.NewInt(s.Name, enum.SourceFunc[int](func() ([]enum.Constant[int], error) {
			return spec.IntTable()
		}), opts...)
		if err != nil {
			return nil, err
		}
		return t, nil
	case KindString:
		t, err := enum.NewString(s.Name, enum.SourceFunc[string](func() ([]enum.Constant[string], error) {
			return spec.StringTable()
		}), opts...)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("enum %s: unsupported kind %q", s.Name, s.Kind)
	}
}
