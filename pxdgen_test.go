package pxdgen

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const libxHeader = `
typedef enum {
    LIBX_A = 5
} libxEnum;

libxEnum libx_get(void);
`

func TestGenerateSource(t *testing.T) {
	var buf bytes.Buffer
	gen := New(
		WithStandard("c11"),
		WithOutput(&buf),
	)

	err := gen.GenerateSource(context.Background(), "libx", "libx.h", []byte(libxHeader))
	require.NoError(t, err)

	want := `cdef extern from *:
    cptypedef int Enum 'libxEnum'

cpdef enum:
    A = 5

cpdef int get()
`
	assert.Equal(t, want, buf.String())
}

func TestGenerateSource_UnknownStandard(t *testing.T) {
	gen := New(WithStandard("c++14a"), WithOutput(&bytes.Buffer{}))

	err := gen.GenerateSource(context.Background(), "libx", "libx.h", []byte(libxHeader))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c++14a")
}

func TestGenerateSource_FilterHidesForeignNames(t *testing.T) {
	src := `
typedef int libxDevice;
typedef int otherThing;
int libx_count(void);
void other_helper(void);
`
	var buf bytes.Buffer
	gen := New(WithStandard("c11"), WithOutput(&buf))

	require.NoError(t, gen.GenerateSource(context.Background(), "libx", "libx.h", []byte(src)))

	out := buf.String()
	assert.Contains(t, out, "cptypedef int Device 'libxDevice'")
	assert.Contains(t, out, "cpdef void count()")
	assert.NotContains(t, out, "otherThing")
	assert.NotContains(t, out, "helper")
}

func TestGenerate_MissingHeader(t *testing.T) {
	gen := New(WithOutput(&bytes.Buffer{}))

	err := gen.Generate(context.Background(), "libx", "testdata/does-not-exist.h")
	assert.Error(t, err)
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	gen := New(WithStandard("c11"), WithOutput(&buf))

	require.NoError(t, gen.Dump(context.Background(), "testdata/libx/libx.h"))

	want := `TranslationUnit: libx.h
  UnexposedDecl: LIBX_H
    EnumDecl: libxEnum
      EnumConstantDecl: LIBX_A
    TypedefDecl: libxEnum
      EnumDecl: libxEnum
        EnumConstantDecl: LIBX_A
    FunctionDecl: libx_get()
      TypeRef: libxEnum
`
	assert.Equal(t, want, buf.String())
}
