package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const validDecl = `package: palette
enums:
  - name: Color
    kind: int
    description: |
      Color is a paint colour.
    constants:
      YELLOW: 1
      PURPLE: 2
      DARK_BLUE: 3
      LEVEL_2: 4
  - name: Country
    kind: string
    constants:
      ISRAEL: isr
      FRANCE: fra
`

const brokenDecl = `package: palette
enums:
  - name: Color
    kind: int
    constants:
      YELLOW: 1
      PURPLE: 1
  - name: Country
    kind: string
    constants:
      ISRAEL: isr
`

func writeDecl(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "enums.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
