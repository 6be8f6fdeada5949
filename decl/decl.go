// Package decl loads enumeration declarations from YAML files.
//
// A declaration file lists enumerations with their constants in declaration
// order:
//
//	package: colors
//	enums:
//	  - name: Color
//	    kind: int
//	    constants:
//	      YELLOW: 1
//	      PURPLE: 2
//	      ORANGE: 3
//	  - name: Country
//	    kind: string
//	    constants:
//	      ISRAEL: isr
//	      FRANCE: fra
//
// The constants mapping keeps document order, so Keys and Values of the
// defined types follow the file. Integer constants must be YAML integers and
// string constants YAML strings; "1" under an int enum is rejected.
package decl

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zero-day-ai/typedenum/enum"
	"gopkg.in/yaml.v3"
)

// Supported enumeration kinds.
const (
	KindInt    = "int"
	KindString = "string"
)

// File is a parsed declaration file.
type File struct {
	// Package is the Go package name generated code is emitted into.
	Package string `yaml:"package,omitempty"`

	Enums []Spec `yaml:"enums"`
}

// Spec declares one enumeration.
type Spec struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"`
	Description string `yaml:"description,omitempty"`

	// Constants is a mapping node so that document order is preserved.
	Constants yaml.Node `yaml:"constants"`
}

// Parse decodes a declaration file and validates its structure.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse declaration file: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses a declaration file. If path is a directory, it looks
// for enums.yaml or enums.yml in that directory.
func Load(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	filePath := path
	if info.IsDir() {
		filePath = ""
		for _, name := range []string{"enums.yaml", "enums.yml"} {
			candidate := filepath.Join(path, name)
			if _, err := os.Stat(candidate); err == nil {
				filePath = candidate
				break
			}
		}
		if filePath == "" {
			return nil, fmt.Errorf("no enums.yaml or enums.yml found in %s", path)
		}
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return f, nil
}

// Validate checks names, kinds and the shape of every constants block.
// Constant values are checked when a table is built.
func (f *File) Validate() error {
	seen := make(map[string]bool, len(f.Enums))
	for i, s := range f.Enums {
		if s.Name == "" {
			return fmt.Errorf("enum #%d: name is required", i+1)
		}
		if seen[s.Name] {
			return fmt.Errorf("enum %s: declared more than once", s.Name)
		}
		seen[s.Name] = true

		if s.Kind != KindInt && s.Kind != KindString {
			return fmt.Errorf("enum %s: unsupported kind %q (want %s or %s)", s.Name, s.Kind, KindInt, KindString)
		}
		if s.Constants.Kind != yaml.MappingNode {
			return fmt.Errorf("enum %s: constants must be a mapping", s.Name)
		}
	}
	return nil
}

// Find returns the enum declared under name.
func (f *File) Find(name string) (*Spec, error) {
	for i := range f.Enums {
		if f.Enums[i].Name == name {
			return &f.Enums[i], nil
		}
	}
	return nil, fmt.Errorf("enum %s not declared", name)
}

// Define defines every declared enum. Constants are read on first use of each type.
func (f *File) Define(opts ...enum.TypeOption) ([]enum.Enumeration, error) {
	defined := make([]enum.Enumeration, 0, len(f.Enums))
	for i := range f.Enums {
		e, err := f.Enums[i].Define(opts...)
		if err != nil {
			return nil, err
		}
		defined = append(defined, e)
	}
	return defined, nil
}
