package enum

import "testing"

type fixtures struct {
	registry *Registry
	color    *Type[int]
	fruit    *Type[int]
	country  *Type[string]
	language *Type[string]
}

// newFixtures defines the test enumerations in a fresh registry so tests can
// observe population from scratch.
func newFixtures(t *testing.T, opts ...Option) *fixtures {
	t.Helper()

	r := NewRegistry(opts...)
	in := WithRegistry(r)

	return &fixtures{
		registry: r,
		color: MustInt("Color", Table[int]{
			{Key: "YELLOW", Value: 1},
			{Key: "PURPLE", Value: 2},
			{Key: "ORANGE", Value: 3},
		}, in),
		fruit: MustInt("Fruit", Table[int]{
			{Key: "BANANA", Value: 1},
			{Key: "CHERRY", Value: 2},
			{Key: "ORANGE", Value: 3},
		}, in),
		country: MustString("Country", Table[string]{
			{Key: "ISRAEL", Value: "isr"},
			{Key: "FRANCE", Value: "fra"},
			{Key: "POLAND", Value: "pol"},
		}, in),
		language: MustString("Language", Table[string]{
			{Key: "HEBREW", Value: "heb"},
			{Key: "FRENCH", Value: "fre"},
			{Key: "POLISH", Value: "pol"},
		}, in),
	}
}
