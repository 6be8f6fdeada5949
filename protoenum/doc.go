// Package protoenum defines enumeration types from protobuf enum descriptors.
//
// Descriptors list their values in .proto declaration order, so the keys and
// values of a type defined here follow the schema:
//
//	severity, err := protoenum.Define("acme.v1.Severity",
//	    protoenum.WithTrimPrefix("SEVERITY_"))
//
// Descriptors are resolved lazily: the enum only needs to be registered in the
// resolver (protoregistry.GlobalTypes by default) when the type is first used.
// Enums declared with allow_alias fail population, since an enumeration value
// maps to exactly one key.
package protoenum
