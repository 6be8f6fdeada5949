package enum

import "github.com/zero-day-ai/typedenum/strcase"

const (
	isPrefix   = "is"
	makePrefix = "make"
)

// Call resolves a dynamic constructor name such as "makePurple" or
// "makeDarkBlue" and returns the instance for the derived key. Names not
// starting with "make" fail with ErrUnknownMethod; a derived key that is not
// declared fails with ErrUnknownKey.
func (t *Type[V]) Call(method string) (Value[V], error) {
	key, err := t.dispatch("Call", method, makePrefix, func(tbl *table[V]) map[string]string {
		return tbl.makeMethods
	})
	if err != nil {
		return Value[V]{}, err
	}
	v, err := t.resolveKey("Call", key)
	if err != nil {
		return Value[V]{}, err
	}
	return Value[V]{typ: t, value: v}, nil
}

// Call resolves a dynamic accessor name such as "isPurple" and reports whether
// v holds the value of the derived key. Names not starting with "is" fail with
// ErrUnknownMethod; a derived key that is not declared fails with ErrUnknownKey.
func (v Value[V]) Call(method string) (bool, error) {
	if v.typ == nil {
		return false, newError("", "Call", CodeUnknownMethod, "unknown method: %s", method)
	}

	t := v.typ
	key, err := t.dispatch("Call", method, isPrefix, func(tbl *table[V]) map[string]string {
		return tbl.isMethods
	})
	if err != nil {
		return false, err
	}
	value, err := t.resolveKey("Call", key)
	if err != nil {
		return false, err
	}
	return v.Is(value), nil
}

// dispatch maps a method name onto a declared key. Precomputed names are
// answered from the type's table; any other spelling carrying prefix is
// derived through the registry's key-case cache.
func (t *Type[V]) dispatch(op, method, prefix string, methods func(*table[V]) map[string]string) (string, error) {
	tbl, err := t.table(op)
	if err != nil {
		return "", err
	}

	if key, ok := methods(tbl)[method]; ok {
		return key, nil
	}

	if !strcase.StartsWith(method, prefix) {
		return "", t.fail(newError(t.id, op, CodeUnknownMethod, "unknown method: %s", method))
	}

	key := t.registry.keyCase.ToConstantsCase(strcase.StringAfter(method, prefix))
	if _, ok := tbl.byKey[key]; !ok {
		return "", t.unknownKey(tbl, op, key)
	}
	return key, nil
}
