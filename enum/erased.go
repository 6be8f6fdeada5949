package enum

// Enumeration is the kind-independent view of an enumeration type. *Type[int]
// and *Type[string] implement it.
type Enumeration interface {
	// ID returns the type identity.
	ID() string

	// Kind returns the scalar kind name, "int" or "string".
	Kind() string

	// Keys returns the declared keys in declaration order.
	Keys() []string

	// HasKey reports whether key, compared case-insensitively, is declared.
	HasKey(key string) bool

	// Load populates the declared constants and reports declaration errors.
	Load() error

	// Lookup returns the instance declared under key.
	Lookup(key string) (Instance, error)

	// ParseAny resolves untyped input with the type's Parse policy.
	ParseAny(input any) (Instance, error)
}

// Instance is the kind-independent view of an enumeration value. Value[int]
// and Value[string] implement it.
type Instance interface {
	// Enumeration returns the instance's type.
	Enumeration() Enumeration

	// Key returns the key the value is declared under.
	Key() string

	// Scalar returns the bare scalar value.
	Scalar() any

	// String returns the string form of the scalar value.
	String() string
}

var (
	_ Enumeration = (*Type[int])(nil)
	_ Enumeration = (*Type[string])(nil)
	_ Instance    = Value[int]{}
	_ Instance    = Value[string]{}
)
