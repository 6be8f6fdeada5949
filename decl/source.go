package decl

import "github.com/zero-day-ai/typedenum/enum"

// IntFile returns a source that reads the int enum name from the declaration
// file at path when the type is first populated.
func IntFile(path, name string) enum.Source[int] {
	return enum.SourceFunc[int](func() ([]enum.Constant[int], error) {
		spec, err := find(path, name)
		if err != nil {
			return nil, err
		}
		return spec.IntTable()
	})
}

// StringFile returns a source that reads the string enum name from the
// declaration file at path when the type is first populated.
func StringFile(path, name string) enum.Source[string] {
	return enum.SourceFunc[string](func() ([]enum.Constant[string], error) {
		spec, err := find(path, name)
		if err != nil {
			return nil, err
		}
		return spec.StringTable()
	})
}

func find(path, name string) (*Spec, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	return f.Find(name)
}
