package enum

// kind is the scalar-specific behaviour of a specialization.
type kind[V Scalar] struct {
	name string

	// strict accepts x only if it already is a value of the kind.
	strict func(x any) (V, bool)

	// coerce is the value path of Parse.
	coerce func(x any) (V, bool)
}
