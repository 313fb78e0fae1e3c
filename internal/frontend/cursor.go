package frontend

// CursorKind classifies a node in the parsed declaration tree.
type CursorKind int

const (
	KindTranslationUnit CursorKind = iota
	KindUnexposedDecl
	KindTypedefDecl
	KindEnumDecl
	KindEnumConstantDecl
	KindFunctionDecl
	KindParmDecl
	KindTypeRef
)

func (k CursorKind) String() string {
	switch k {
	case KindTranslationUnit:
		return "TranslationUnit"
	case KindTypedefDecl:
		return "TypedefDecl"
	case KindEnumDecl:
		return "EnumDecl"
	case KindEnumConstantDecl:
		return "EnumConstantDecl"
	case KindFunctionDecl:
		return "FunctionDecl"
	case KindParmDecl:
		return "ParmDecl"
	case KindTypeRef:
		return "TypeRef"
	default:
		return "UnexposedDecl"
	}
}

// Cursor is one node of the declaration tree: a syntactic kind, a spelling,
// a display name, a declared type, and ordered children. Cursors are built
// once during parsing and never mutated.
type Cursor struct {
	kind      CursorKind
	spelling  string
	display   string
	typ       Type
	enumValue int64
	children  []*Cursor
}

// Kind returns the cursor's syntactic kind.
func (c *Cursor) Kind() CursorKind { return c.kind }

// Spelling returns the cursor's declared name.
func (c *Cursor) Spelling() string { return c.spelling }

// DisplayName returns the human-readable name; for functions it includes
// the parameter types.
func (c *Cursor) DisplayName() string {
	if c.display != "" {
		return c.display
	}
	return c.spelling
}

// Type returns the cursor's declared type. Invalid for cursors that carry
// no type (containers, the translation unit root).
func (c *Cursor) Type() Type { return c.typ }

// EnumValue returns the constant's value for enum-constant cursors.
func (c *Cursor) EnumValue() int64 { return c.enumValue }

// Children returns the cursor's direct children in source order. The
// returned slice must not be modified.
func (c *Cursor) Children() []*Cursor { return c.children }

// TranslationUnit is the parsed form of one header, plus the type tables
// that back canonical-type resolution. Typedefs and enums register here as
// the builder encounters them, so later references resolve against
// everything declared before them, matching the source language's
// declare-before-use rule.
type TranslationUnit struct {
	root     *Cursor
	typedefs map[string]Type
	enums    map[string]string
}

// Root returns the translation unit's root cursor.
func (tu *TranslationUnit) Root() *Cursor { return tu.root }
