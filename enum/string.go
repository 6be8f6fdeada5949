package enum

var stringKind = kind[string]{
	name:   "string",
	strict: strictString,
	coerce: strictString,
}

// NewString defines a string-backed enumeration type under id.
func NewString(id string, source Source[string], opts ...TypeOption) (*Type[string], error) {
	return define(id, source, stringKind, opts)
}

// MustString is like NewString but panics on error.
func MustString(id string, source Source[string], opts ...TypeOption) *Type[string] {
	t, err := NewString(id, source, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func strictString(x any) (string, bool) {
	s, ok := x.(string)
	return s, ok
}
