// Package enum provides closed, named enumerations backed by int or string
// scalars.
//
// An enumeration type binds a fixed set of upper-case keys to scalar values
// under a stable identity:
//
//	var Color = enum.MustInt("Color", enum.Table[int]{
//	    {Key: "YELLOW", Value: 1},
//	    {Key: "PURPLE", Value: 2},
//	    {Key: "ORANGE", Value: 3},
//	})
//
// Instances are small immutable values created only through validated paths:
//
//	c, err := Color.New(2)           // by value
//	c, err = Color.WithKey("purple") // by key, case-insensitive
//	c, err = Color.Parse("2")        // from untyped input
//	c, err = Color.Call("makePurple")
//
//	c.Key()               // "PURPLE"
//	c.Value()             // 2
//	c.Is(1, 2)            // true
//	c.Call("isPurple")    // true, nil
//
// # Registry
//
// Declared constants are populated into a Registry on first use and cached by
// type identity. Sources are an explicit Table, a YAML declaration file (see
// package decl) or a protobuf enum descriptor (see package protoenum). Types
// are defined in the default registry unless WithRegistry is given.
//
// # Equality
//
// Instances compare by type identity and value. Two enumeration types that
// declare the same key with the same value still produce unequal instances:
//
//	Color.Must(3).Equals(Fruit.Must(3)) // false
//
// # Errors
//
// Every failure is an *Error carrying one of the Code* constants and matching
// the corresponding sentinel through errors.Is:
//
//	_, err := Color.WithKey("silver")
//	errors.Is(err, enum.ErrUnknownKey) // true
//
// Accessors without an error return (Keys, Values, Constants, HasKey, Has)
// panic if the type's declaration cannot be loaded. Call Load to surface that
// error explicitly.
//
// # Thread Safety
//
// Types, values, registries and normalizers are safe for concurrent use.
package enum
