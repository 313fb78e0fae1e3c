package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_RequiresTwoArgs(t *testing.T) {
	rootCmd.SetArgs([]string{"onlylib"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	err := rootCmd.Execute()
	assert.Error(t, err)
}

func TestRoot_GeneratesBindings(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "libx.h")
	src := `
typedef enum {
    LIBX_A = 5
} libxEnum;

libxEnum libx_get(void);
`
	require.NoError(t, os.WriteFile(header, []byte(src), 0o644))

	var out bytes.Buffer
	rootCmd.SetArgs([]string{"--std", "c11", "libx", header})
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "cptypedef int Enum 'libxEnum'")
	assert.Contains(t, out.String(), "cpdef int get()")
}

func TestDumpCommand(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "tiny.h")
	require.NoError(t, os.WriteFile(header, []byte("typedef int foo_t;\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetArgs([]string{"dump", "--std", "c11", header})
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "TranslationUnit: tiny.h")
	assert.Contains(t, out.String(), "  TypedefDecl: foo_t")
}
