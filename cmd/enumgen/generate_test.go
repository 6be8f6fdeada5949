package main

import (
	"bytes"
	"encoding/json"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zero-day-ai/typedenum/decl"
	"github.com/zero-day-ai/typedenum/enum"
	"gopkg.in/yaml.v3"
)

// declaredFuncs parses src and lists its top-level function names, with
// methods qualified by receiver type.
func declaredFuncs(t *testing.T, src []byte) (string, []string) {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "enums_gen.go", src, parser.ParseComments)
	require.NoError(t, err)

	var names []string
	for _, d := range file.Decls {
		fn, ok := d.(*ast.FuncDecl)
		if !ok {
			continue
		}
		name := fn.Name.Name
		if fn.Recv != nil {
			switch recv := fn.Recv.List[0].Type.(type) {
			case *ast.Ident:
				name = recv.Name + "." + name
			case *ast.StarExpr:
				name = "*" + recv.X.(*ast.Ident).Name + "." + name
			}
		}
		names = append(names, name)
	}
	return file.Name.Name, names
}

func TestGenerate(t *testing.T) {
	f, err := decl.Parse([]byte(validDecl))
	require.NoError(t, err)

	src, err := generate(f, "palette", "enums.yaml", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	pkg, funcs := declaredFuncs(t, src)
	assert.Equal(t, "palette", pkg)
	assert.Subset(t, funcs, []string{
		"ColorYellow", "Color.IsYellow",
		"ColorPurple", "Color.IsPurple",
		"ColorDarkBlue", "Color.IsDarkBlue",
		"ColorLevel2", "Color.IsLevel2",
		"ParseColor", "Color.Value", "Color.Key", "Color.IsZero",
		"*Color.UnmarshalJSON", "*Color.UnmarshalYAML",
		"CountryIsrael", "Country.IsIsrael",
		"CountryFrance", "Country.IsFrance",
		"ParseCountry", "*Country.UnmarshalJSON", "*Country.UnmarshalYAML",
	})

	code := string(src)
	assert.Contains(t, code, "// Code generated by enumgen from enums.yaml. DO NOT EDIT.")
	assert.Contains(t, code, `var ColorType = enum.MustInt("palette.Color", enum.Table[int]{`)
	assert.Contains(t, code, `{Key: "DARK_BLUE", Value: 3},`)
	assert.Contains(t, code, `var CountryType = enum.MustString("palette.Country", enum.Table[string]{`)
	assert.Contains(t, code, `return e.value.Is("fra")`)
	assert.Contains(t, code, "// Color is a paint colour.\ntype Color struct")
	assert.Contains(t, code, "// Country is a value of the Country enumeration.\ntype Country struct")
}

func TestGenerate_SkipsUnusableAccessorNames(t *testing.T) {
	f, err := decl.Parse([]byte(`enums:
  - name: Mode
    kind: int
    constants:
      READ_ONLY: 1
      READONLY: 2
      "_": 3
      "X-Y": 4
`))
	require.NoError(t, err)

	src, err := generate(f, "modes", "enums.yaml", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, funcs := declaredFuncs(t, src)
	assert.Contains(t, funcs, "ModeReadOnly")
	assert.Contains(t, funcs, "ModeReadonly")

	var constructors []string
	for _, name := range funcs {
		if strings.HasPrefix(name, "Mode") {
			constructors = append(constructors, name)
		}
	}
	assert.ElementsMatch(t, []string{"ModeReadOnly", "ModeReadonly"}, constructors)

	// Every key stays declared even without accessors.
	assert.Contains(t, string(src), `{Key: "_", Value: 3},`)
	assert.Contains(t, string(src), `{Key: "X-Y", Value: 4},`)
}

func TestGenerate_InvalidNames(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f, err := decl.Parse([]byte(validDecl))
	require.NoError(t, err)
	_, err = generate(f, "not-a-package", "enums.yaml", logger)
	assert.ErrorContains(t, err, `invalid package name "not-a-package"`)

	f, err = decl.Parse([]byte("enums:\n  - name: color\n    kind: int\n    constants: {A: 1}\n"))
	require.NoError(t, err)
	_, err = generate(f, "palette", "enums.yaml", logger)
	assert.ErrorContains(t, err, "enum color: name is not an exported Go identifier")
}

const reservedDecl = `package: palette
enums:
  - name: Color
    kind: int
    constants:
      YELLOW: 1
      TYPE: 2
      ZERO: 3
      VALUE: 4
      PURPLE: 5
  - name: ColorRed
    kind: string
    constants:
      DARK: dark
  - name: Country
    kind: string
    constants:
      FRANCE: fra
`

func TestGenerate_ReservedNames(t *testing.T) {
	f, err := decl.Parse([]byte(reservedDecl))
	require.NoError(t, err)

	var logs bytes.Buffer
	src, err := generate(f, "palette", "enums.yaml", slog.New(slog.NewTextHandler(&logs, nil)))
	require.NoError(t, err)

	_, funcs := declaredFuncs(t, src)
	assert.Subset(t, funcs, []string{"ColorYellow", "ColorValue", "ColorPurple", "Color.IsValue"})

	// TYPE would redeclare ColorType and ZERO would replace Color.IsZero.
	assert.NotContains(t, funcs, "Color.IsType")
	assert.NotContains(t, funcs, "ColorZero")
	count := 0
	for _, name := range funcs {
		if name == "Color.IsZero" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, strings.Count(string(src), "ColorType ="))

	assert.Contains(t, logs.String(), "name=ColorType")
	assert.Contains(t, logs.String(), "name=IsZero")
}

func TestGenerate_EnumNameCollision(t *testing.T) {
	f, err := decl.Parse([]byte(`enums:
  - name: Color
    kind: int
    constants: {A: 1}
  - name: ColorType
    kind: int
    constants: {B: 1}
`))
	require.NoError(t, err)

	_, err = generate(f, "palette", "enums.yaml", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorContains(t, err, "enum ColorType: generated name ColorType collides with enum Color")
}

// usage exercises the generated API the way client code would.
const usage = `package palette

import (
	"encoding/json"

	"github.com/zero-day-ai/typedenum/enum"
)

var (
	_ enum.Instance    = Color{}
	_ enum.Enumeration = ColorType
	_ json.Marshaler   = Country{}
	_ json.Unmarshaler = (*Color)(nil)
)

func use() (int, string, string, bool) {
	purple := ColorPurple()
	parsed, _ := ParseColor("type")
	return purple.Value(), CountryFrance().Value(), parsed.Key(),
		purple.IsZero() || purple.IsValue() || purple.Equals(ColorYellow()) || purple.Is(1, 5) ||
			ColorRedDark().Enum().IsZero()
}
`

func TestGenerate_TypeChecks(t *testing.T) {
	if testing.Short() {
		t.Skip("type-checks dependencies from source")
	}

	f, err := decl.Parse([]byte(reservedDecl))
	require.NoError(t, err)
	src, err := generate(f, "palette", "enums.yaml", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	require.NoError(t, typeCheck(t, map[string][]byte{
		"enums_gen.go": src,
		"usage.go":     []byte(usage),
	}))
}

func TestGenerate_TypeChecksDefaultDeclaration(t *testing.T) {
	if testing.Short() {
		t.Skip("type-checks dependencies from source")
	}

	f, err := decl.Parse([]byte(validDecl))
	require.NoError(t, err)
	src, err := generate(f, "palette", "enums.yaml", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	require.NoError(t, typeCheck(t, map[string][]byte{"enums_gen.go": src}))
}

func TestGenerated_JSONAndYAMLAgree(t *testing.T) {
	// Generated UnmarshalJSON and UnmarshalYAML both decode to any and go
	// through Parse<Type>; this checks that path on the library side.
	f, err := decl.Parse([]byte(validDecl))
	require.NoError(t, err)
	spec, err := f.Find("Color")
	require.NoError(t, err)
	color, err := spec.Define(enum.WithRegistry(enum.NewRegistry()))
	require.NoError(t, err)

	for _, input := range []string{`"purple"`, `2`, `"2"`} {
		var fromJSON, fromYAML any
		require.NoError(t, json.Unmarshal([]byte(input), &fromJSON))
		require.NoError(t, yaml.Unmarshal([]byte(input), &fromYAML))

		a, err := color.ParseAny(fromJSON)
		require.NoError(t, err, input)
		b, err := color.ParseAny(fromYAML)
		require.NoError(t, err, input)
		assert.Equal(t, a.Scalar(), b.Scalar(), input)
		assert.Equal(t, 2, a.Scalar(), input)
	}
}

func TestGenerateCommand(t *testing.T) {
	path := writeDecl(t, validDecl)

	t.Run("stdout", func(t *testing.T) {
		out, _, err := execute(t, "generate", path)
		require.NoError(t, err)
		pkg, _ := declaredFuncs(t, []byte(out))
		assert.Equal(t, "palette", pkg)
	})

	t.Run("output file and package override", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "enums_gen.go")
		_, stderr, err := execute(t, "generate", path, "-o", target, "--package", "colors")
		require.NoError(t, err)
		assert.Contains(t, stderr, "generated enum accessors")

		src, err := os.ReadFile(target)
		require.NoError(t, err)
		pkg, _ := declaredFuncs(t, src)
		assert.Equal(t, "colors", pkg)
		assert.Contains(t, string(src), `"colors.Color"`)
	})

	t.Run("broken declaration", func(t *testing.T) {
		_, stderr, err := execute(t, "generate", writeDecl(t, brokenDecl))
		assert.ErrorContains(t, err, "1 of 2 enums failed")
		assert.Contains(t, stderr, "enum declaration rejected")
	})
}
