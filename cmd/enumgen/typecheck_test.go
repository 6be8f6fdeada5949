package main

import (
	"errors"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// typeCheck type-checks files as one package. Files are positioned in the
// working directory so that imports resolve against this module's go.mod.
func typeCheck(t *testing.T, files map[string][]byte) error {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)

	fset := token.NewFileSet()
	var parsed []*ast.File
	for name, src := range files {
		f, err := parser.ParseFile(fset, filepath.Join(wd, name), src, 0)
		require.NoError(t, err, name)
		parsed = append(parsed, f)
	}

	var errs []error
	conf := types.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
		Error:    func(err error) { errs = append(errs, err) },
	}
	_, _ = conf.Check("example.com/palette", fset, parsed, nil)
	return errors.Join(errs...)
}
