package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/zero-day-ai/typedenum/decl"
	"github.com/zero-day-ai/typedenum/strcase"
)

func generateCmd(logger func() *slog.Logger) *cobra.Command {
	var (
		output  string
		pkgName string
	)

	cmd := &cobra.Command{
		Use:   "generate FILE",
		Short: "Generate Go accessors for a declaration file",
		Long: `Generate writes one typed wrapper per enum declared in FILE, with a
constructor and an Is predicate per key, a Parse function and JSON/YAML
decoding hooks. The package name defaults to the file's package field.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()

			f, err := decl.Load(args[0])
			if err != nil {
				return err
			}
			if failed := check(f, log); len(failed) > 0 {
				for name, err := range failed {
					log.Error("enum failed check", "type", name, "error", err)
				}
				return fmt.Errorf("%d of %d enums failed", len(failed), len(f.Enums))
			}

			if pkgName == "" {
				pkgName = f.Package
			}
			src, err := generate(f, pkgName, filepath.Base(args[0]), log)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(output, src, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			log.Info("generated enum accessors", "file", output, "enums", len(f.Enums))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&pkgName, "package", "", "Go package name of the generated file")

	return cmd
}

type genFile struct {
	Source  string
	Package string
	Enums   []genEnum
}

type genEnum struct {
	Name      string
	ID        string
	Kind      string
	Doc       []string
	Constants []genConstant
}

// Constructor returns the name of the MustInt/MustString constructor.
func (e genEnum) Constructor() string {
	if e.Kind == decl.KindString {
		return "MustString"
	}
	return "MustInt"
}

type genConstant struct {
	Key     string
	Literal string

	// Pascal is empty when the key has no usable accessor name.
	Pascal string
}

// wrapperMethods is the method set the template emits on every wrapper type.
// Key predicates must not shadow any of them.
var wrapperMethods = map[string]bool{
	"Enum":          true,
	"Value":         true,
	"Key":           true,
	"Scalar":        true,
	"Enumeration":   true,
	"String":        true,
	"IsZero":        true,
	"Is":            true,
	"Equals":        true,
	"SameAs":        true,
	"MarshalJSON":   true,
	"MarshalYAML":   true,
	"UnmarshalJSON": true,
	"UnmarshalYAML": true,
}

// enumIdents returns the package-level identifiers the template emits for an
// enum regardless of its keys.
func enumIdents(name string) []string {
	return []string{name, name + "Type", "Parse" + name}
}

var genTemplate = template.Must(template.New("enums").Parse(`// Code generated by enumgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
	"encoding/json"

	"github.com/zero-day-ai/typedenum/enum"
	"gopkg.in/yaml.v3"
)
{{range .Enums}}{{$enum := .}}
// {{.Name}}Type is the registered {{.Name}} enumeration.
var {{.Name}}Type = enum.{{.Constructor}}({{printf "%q" .ID}}, enum.Table[{{.Kind}}]{
{{- range .Constants}}
	{Key: {{printf "%q" .Key}}, Value: {{.Literal}}},
{{- end}}
})

{{range .Doc}}// {{.}}
{{end -}}
type {{.Name}} struct {
	value enum.Value[{{.Kind}}]
}
{{range .Constants}}{{if .Pascal}}
// {{$enum.Name}}{{.Pascal}} returns {{$enum.Name}} {{.Key}}.
func {{$enum.Name}}{{.Pascal}}() {{$enum.Name}} {
	return {{$enum.Name}}{ {{- $enum.Name}}Type.Must({{.Literal}})}
}

// Is{{.Pascal}} reports whether e is {{.Key}}.
func (e {{$enum.Name}}) Is{{.Pascal}}() bool {
	return e.value.Is({{.Literal}})
}
{{end}}{{end}}
// Parse{{.Name}} resolves input as a key, then as a value.
func Parse{{.Name}}(input any) ({{.Name}}, error) {
	parsed, err := {{.Name}}Type.Parse(input)
	if err != nil {
		return {{.Name}}{}, err
	}
	return {{.Name}}{parsed}, nil
}

// Enum returns the underlying enumeration value.
func (e {{.Name}}) Enum() enum.Value[{{.Kind}}] {
	return e.value
}

// Value returns the scalar value.
func (e {{.Name}}) Value() {{.Kind}} {
	return e.value.Value()
}

// Key returns the key the value is declared under.
func (e {{.Name}}) Key() string {
	return e.value.Key()
}

// Scalar returns the scalar value as an any.
func (e {{.Name}}) Scalar() any {
	return e.value.Scalar()
}

// Enumeration returns {{.Name}}Type, or nil for the zero {{.Name}}.
func (e {{.Name}}) Enumeration() enum.Enumeration {
	return e.value.Enumeration()
}

func (e {{.Name}}) String() string {
	return e.value.String()
}

// IsZero reports whether e is the zero {{.Name}}.
func (e {{.Name}}) IsZero() bool {
	return e.value.IsZero()
}

// Is reports whether the scalar value equals any of values.
func (e {{.Name}}) Is(values ...{{.Kind}}) bool {
	return e.value.Is(values...)
}

// Equals reports whether any of others is a {{.Name}} holding the same value.
func (e {{.Name}}) Equals(others ...enum.Instance) bool {
	return e.value.Equals(others...)
}

// SameAs is an alias for Equals.
func (e {{.Name}}) SameAs(others ...enum.Instance) bool {
	return e.value.Equals(others...)
}

// MarshalJSON encodes the bare scalar value.
func (e {{.Name}}) MarshalJSON() ([]byte, error) {
	return e.value.MarshalJSON()
}

// MarshalYAML encodes the bare scalar value.
func (e {{.Name}}) MarshalYAML() (any, error) {
	return e.value.MarshalYAML()
}

// UnmarshalJSON decodes a {{.Name}} key or value, like Parse{{.Name}}.
func (e *{{.Name}}) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := Parse{{.Name}}(raw)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// UnmarshalYAML decodes a {{.Name}} key or value, like Parse{{.Name}}.
func (e *{{.Name}}) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := Parse{{.Name}}(raw)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
{{end}}`))

// generate renders gofmt'ed Go source for every enum in f.
func generate(f *decl.File, pkgName, source string, logger *slog.Logger) ([]byte, error) {
	if !token.IsIdentifier(pkgName) {
		return nil, fmt.Errorf("invalid package name %q", pkgName)
	}

	// taken maps every package-level identifier to what it was emitted for.
	// Enum-level names are reserved first so that no key accessor can take them.
	taken := make(map[string]string)
	for _, s := range f.Enums {
		for _, ident := range enumIdents(s.Name) {
			if owner, dup := taken[ident]; dup {
				return nil, fmt.Errorf("enum %s: generated name %s collides with enum %s", s.Name, ident, owner)
			}
			taken[ident] = s.Name
		}
	}

	data := genFile{Source: source, Package: pkgName}
	for i := range f.Enums {
		e, err := genEnumFor(&f.Enums[i], pkgName, taken, logger)
		if err != nil {
			return nil, err
		}
		data.Enums = append(data.Enums, e)
	}

	var buf bytes.Buffer
	if err := genTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}

func genEnumFor(s *decl.Spec, pkgName string, taken map[string]string, logger *slog.Logger) (genEnum, error) {
	if !token.IsIdentifier(s.Name) || !token.IsExported(s.Name) {
		return genEnum{}, fmt.Errorf("enum %s: name is not an exported Go identifier", s.Name)
	}

	e := genEnum{
		Name: s.Name,
		ID:   pkgName + "." + s.Name,
		Kind: s.Kind,
		Doc:  []string{fmt.Sprintf("%s is a value of the %s enumeration.", s.Name, s.Name)},
	}
	if s.Description != "" {
		e.Doc = strings.Split(strings.TrimSpace(s.Description), "\n")
	}

	var (
		keys     []string
		literals []string
	)
	switch s.Kind {
	case decl.KindInt:
		table, err := s.IntTable()
		if err != nil {
			return genEnum{}, err
		}
		for _, c := range table {
			keys = append(keys, c.Key)
			literals = append(literals, strconv.Itoa(c.Value))
		}
	case decl.KindString:
		table, err := s.StringTable()
		if err != nil {
			return genEnum{}, err
		}
		for _, c := range table {
			keys = append(keys, c.Key)
			literals = append(literals, strconv.Quote(c.Value))
		}
	default:
		return genEnum{}, fmt.Errorf("enum %s: unsupported kind %q", s.Name, s.Kind)
	}

	for i, key := range keys {
		key = strcase.ToUpper(key)
		c := genConstant{Key: key, Literal: literals[i], Pascal: strcase.ToPascalCase(key)}
		constructor, predicate := s.Name+c.Pascal, "Is"+c.Pascal

		switch owner, dup := taken[constructor]; {
		case c.Pascal == "" || !token.IsIdentifier(constructor):
			logger.Warn("no accessor generated for key", "type", s.Name, "key", key)
			c.Pascal = ""
		case dup:
			logger.Warn("accessor name already used", "type", s.Name, "key", key, "name", constructor, "other", owner)
			c.Pascal = ""
		case wrapperMethods[predicate]:
			logger.Warn("accessor name already used", "type", s.Name, "key", key, "name", predicate, "other", "method "+predicate)
			c.Pascal = ""
		default:
			taken[constructor] = s.Name + " " + key
		}
		e.Constants = append(e.Constants, c)
	}
	return e, nil
}
