package enum

import (
	"bytes"
	"encoding/json"

	"github.com/agnivade/levenshtein"
	"github.com/zero-day-ai/typedenum/strcase"
)

// Type is an enumeration type: a closed set of named constants of scalar kind
// V under one identity. Types are created with NewInt or NewString and are
// safe for concurrent use.
type Type[V Scalar] struct {
	id       string
	source   Source[V]
	kind     kind[V]
	registry *Registry
}

func define[V Scalar](id string, source Source[V], k kind[V], opts []TypeOption) (*Type[V], error) {
	cfg := typeConfig{registry: defaultRegistry}
	for _, opt := range opts {
		opt(&cfg)
	}

	if id == "" {
		return nil, newError(id, "Define", CodeInvalidDeclaration, "type identity is empty")
	}
	if source == nil {
		return nil, newError(id, "Define", CodeInvalidDeclaration, "no constants source")
	}

	t := &Type[V]{
		id:       id,
		source:   source,
		kind:     k,
		registry: cfg.registry,
	}
	if err := cfg.registry.define(t); err != nil {
		return nil, newError(id, "Define", CodeInvalidDeclaration, "").WithCause(err)
	}

	return t, nil
}

// ID returns the type identity.
func (t *Type[V]) ID() string {
	return t.id
}

// Kind returns the scalar kind name, "int" or "string".
func (t *Type[V]) Kind() string {
	return t.kind.name
}

// Registry returns the registry t is defined in.
func (t *Type[V]) Registry() *Registry {
	return t.registry
}

// Load populates t's constants if they are not populated yet and reports any
// declaration error.
func (t *Type[V]) Load() error {
	_, err := t.table("Load")
	return err
}

func (t *Type[V]) table(op string) (*table[V], error) {
	tbl, err := tableFor(t.registry, t)
	if err != nil {
		return nil, t.fail(newError(t.id, op, CodeInvalidDeclaration, "").WithCause(err))
	}
	return tbl, nil
}

// mustTable is used by accessors without an error return. A declaration that
// cannot be loaded is a programming error.
func (t *Type[V]) mustTable() *table[V] {
	tbl, err := t.table("Load")
	if err != nil {
		panic(err)
	}
	return tbl
}

func (t *Type[V]) fail(err *Error) *Error {
	t.registry.metrics.failed(t.id, err.Code)
	return err
}

// Constants returns the declared constants in declaration order. Keys are
// upper-case. It panics if the declaration cannot be loaded.
func (t *Type[V]) Constants() []Constant[V] {
	tbl := t.mustTable()
	out := make([]Constant[V], len(tbl.constants))
	copy(out, tbl.constants)
	return out
}

// Keys returns the declared keys in declaration order.
func (t *Type[V]) Keys() []string {
	return t.mustTable().keys()
}

// Values returns the declared values in declaration order.
func (t *Type[V]) Values() []V {
	return t.mustTable().values()
}

// HasKey reports whether key, compared case-insensitively, is declared.
func (t *Type[V]) HasKey(key string) bool {
	_, ok := t.mustTable().byKey[strcase.ToUpper(key)]
	return ok
}

// Has reports whether v is a declared value.
func (t *Type[V]) Has(v V) bool {
	_, ok := t.mustTable().byValue[v]
	return ok
}

// HasValue reports whether x is a declared value of t's scalar kind. Values of
// another kind are never declared.
func (t *Type[V]) HasValue(x any) bool {
	v, ok := t.kind.strict(x)
	return ok && t.Has(v)
}

// KeyToValue returns the value declared under key, compared case-insensitively.
func (t *Type[V]) KeyToValue(key string) (V, error) {
	return t.resolveKey("KeyToValue", key)
}

func (t *Type[V]) resolveKey(op, key string) (V, error) {
	var zero V

	tbl, err := t.table(op)
	if err != nil {
		return zero, err
	}

	key = strcase.ToUpper(key)
	v, ok := tbl.byKey[key]
	if !ok {
		return zero, t.unknownKey(tbl, op, key)
	}
	return v, nil
}

func (t *Type[V]) unknownKey(tbl *table[V], op, key string) *Error {
	err := newError(t.id, op, CodeUnknownKey, "unknown enum key: %s", key)
	err.Suggestion = suggest(key, tbl.keys())
	return t.fail(err)
}

// suggest returns the declared key closest to key within an edit distance of 2.
func suggest(key string, keys []string) string {
	best, bestDist := "", 3
	for _, k := range keys {
		if d := levenshtein.ComputeDistance(key, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

// ValueToKey returns the key v is declared under.
func (t *Type[V]) ValueToKey(v V) (string, error) {
	tbl, err := t.table("ValueToKey")
	if err != nil {
		return "", err
	}

	key, ok := tbl.byValue[v]
	if !ok {
		return "", t.fail(newError(t.id, "ValueToKey", CodeInvalidValue, "unknown enum value: %v", v))
	}
	return key, nil
}

// New returns the instance holding v. It fails with ErrInvalidValue if v is not declared.
func (t *Type[V]) New(v V) (Value[V], error) {
	return t.construct("New", v)
}

// Make is an alias for New.
func (t *Type[V]) Make(v V) (Value[V], error) {
	return t.construct("Make", v)
}

// Must is like New but panics on error. It is intended for package-level
// variables holding known constants.
func (t *Type[V]) Must(v V) Value[V] {
	value, err := t.construct("Must", v)
	if err != nil {
		panic(err)
	}
	return value
}

func (t *Type[V]) construct(op string, v V) (Value[V], error) {
	tbl, err := t.table(op)
	if err != nil {
		return Value[V]{}, err
	}
	if _, ok := tbl.byValue[v]; !ok {
		return Value[V]{}, t.fail(newError(t.id, op, CodeInvalidValue, "unknown enum value: %v", v))
	}
	return Value[V]{typ: t, value: v}, nil
}

// From validates an untyped scalar strictly and constructs an instance. A nil
// or wrong-kind x fails with ErrTypeMismatch; a well-typed but undeclared
// value fails with ErrInvalidValue.
func (t *Type[V]) From(x any) (Value[V], error) {
	v, ok := t.kind.strict(x)
	if !ok {
		return Value[V]{}, t.typeMismatch("From", x)
	}
	return t.construct("From", v)
}

func (t *Type[V]) typeMismatch(op string, x any) *Error {
	return t.fail(newError(t.id, op, CodeTypeMismatch, "expected %s, got %T", t.kind.name, x))
}

// WithKey returns the instance declared under key, compared case-insensitively.
func (t *Type[V]) WithKey(key string) (Value[V], error) {
	v, err := t.resolveKey("WithKey", key)
	if err != nil {
		return Value[V]{}, err
	}
	return Value[V]{typ: t, value: v}, nil
}

// FromKey is an alias for WithKey.
func (t *Type[V]) FromKey(key string) (Value[V], error) {
	return t.WithKey(key)
}

// Lookup is WithKey for callers holding only an Enumeration.
func (t *Type[V]) Lookup(key string) (Instance, error) {
	v, err := t.WithKey(key)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ParseJSON decodes a bare JSON scalar and constructs the instance it names.
// null and scalars of the wrong kind fail with ErrTypeMismatch.
func (t *Type[V]) ParseJSON(data []byte) (Value[V], error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return Value[V]{}, t.typeMismatch("ParseJSON", nil)
	}

	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return Value[V]{}, t.fail(newError(t.id, "ParseJSON", CodeTypeMismatch,
			"expected %s", t.kind.name).WithCause(err))
	}
	return t.construct("ParseJSON", v)
}
