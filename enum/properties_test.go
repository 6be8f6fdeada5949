package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zero-day-ai/typedenum/strcase"
)

func TestProperty_WithKeyAgreesWithDeclaration(t *testing.T) {
	f := newFixtures(t)

	for _, c := range f.color.Constants() {
		for _, key := range []string{c.Key, strcase.ToPascalCase(c.Key), "x" + c.Key} {
			v, err := f.color.WithKey(key)
			if !f.color.HasKey(key) {
				assert.Error(t, err)
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, strcase.ToUpper(key), v.Key())
			assert.Equal(t, c.Value, v.Value())
		}
	}
}

func TestProperty_ValueKeyRoundTrip(t *testing.T) {
	f := newFixtures(t)

	for _, v := range f.language.Values() {
		key, err := f.language.ValueToKey(v)
		require.NoError(t, err)

		byKey, err := f.language.FromKey(key)
		require.NoError(t, err)
		byValue, err := f.language.New(v)
		require.NoError(t, err)

		assert.Equal(t, byValue, byKey)
		assert.True(t, byValue.Equals(byKey))
	}
}

func TestProperty_DynamicCallsMatchWithKey(t *testing.T) {
	f := newFixtures(t)

	for _, key := range f.color.Keys() {
		withKey, err := f.color.WithKey(key)
		require.NoError(t, err)

		made, err := f.color.Call("make" + strcase.ToPascalCase(key))
		require.NoError(t, err)
		assert.Equal(t, withKey, made)

		for _, other := range f.color.Keys() {
			is, err := made.Call("is" + strcase.ToPascalCase(other))
			require.NoError(t, err)

			target, err := f.color.WithKey(other)
			require.NoError(t, err)
			assert.Equal(t, made.Equals(target), is)
		}
	}
}

func TestProperty_DeclaredScenario(t *testing.T) {
	f := newFixtures(t)

	assert.Equal(t, []string{"YELLOW", "PURPLE", "ORANGE"}, f.color.Keys())

	byKey, err := f.color.Parse("purple")
	require.NoError(t, err)
	byInt, err := f.color.Parse(2)
	require.NoError(t, err)
	byString, err := f.color.Parse("2")
	require.NoError(t, err)
	assert.True(t, byKey.Equals(byInt))
	assert.True(t, byInt.Equals(byString))

	_, err = f.color.Make(4)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = f.color.WithKey("silver")
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, err = byKey.Call("badDynamicMethod")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}
