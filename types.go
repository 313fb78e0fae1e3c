package pxdgen

import (
	"github.com/jward/pxdgen/internal/decl"
	"github.com/jward/pxdgen/internal/frontend"
)

// Public type aliases for the internal model. These are Go type aliases
// (=) — identical to the internal types at compile time, so external
// consumers need no conversion.

type Cursor = frontend.Cursor
type CursorKind = frontend.CursorKind
type TranslationUnit = frontend.TranslationUnit
type ParseOptions = frontend.Options

type Typedef = decl.Typedef
type Enum = decl.Enum
type EnumMember = decl.EnumMember
type Function = decl.Function
type Param = decl.Param
type Set = decl.Set
type TypeMap = decl.TypeMap
type CyclicAliasError = decl.CyclicAliasError
