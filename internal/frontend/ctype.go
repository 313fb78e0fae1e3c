package frontend

import "strings"

// TypeKind is the closed set of type shapes the front-end reports. Pointer
// unwrapping and alias chasing switch on these tags rather than on spelling
// strings, so the compiler can check exhaustiveness.
type TypeKind int

const (
	TypeInvalid TypeKind = iota
	TypePrimitive
	TypePointer
	TypeEnumRef
	TypeTypedefRef
	TypeRecord
)

func (k TypeKind) String() string {
	switch k {
	case TypePrimitive:
		return "Primitive"
	case TypePointer:
		return "Pointer"
	case TypeEnumRef:
		return "EnumRef"
	case TypeTypedefRef:
		return "TypedefRef"
	case TypeRecord:
		return "Record"
	default:
		return "Invalid"
	}
}

// maxAliasHops bounds typedef chasing so a malformed alias chain surfaces
// as an Invalid type instead of a hang.
const maxAliasHops = 64

// Type is the declared type of a cursor. Named kinds (EnumRef, TypedefRef)
// resolve against the owning translation unit's type tables.
type Type struct {
	kind     TypeKind
	spelling string
	pointee  *Type
	tu       *TranslationUnit
}

// Kind returns the type's tag.
func (t Type) Kind() TypeKind { return t.kind }

// IsValid reports whether the type carries any information.
func (t Type) IsValid() bool { return t.kind != TypeInvalid }

// Spelling returns the type's name: the primitive spelling for primitives,
// the referenced name for enum and typedef references, and the fixed kind
// spellings "pointer" and "record" for the shapes that have no single name.
func (t Type) Spelling() string {
	switch t.kind {
	case TypePointer:
		return "pointer"
	case TypeRecord:
		return "record"
	default:
		return t.spelling
	}
}

// Pointee returns the pointed-to type for pointers, and an invalid type
// otherwise.
func (t Type) Pointee() Type {
	if t.kind == TypePointer && t.pointee != nil {
		return *t.pointee
	}
	return Type{}
}

// Underlying performs a single resolution hop: the typedef's target for
// typedef references, the storage primitive for enum references. Other
// kinds have no underlying type.
func (t Type) Underlying() Type {
	if t.tu == nil {
		return Type{}
	}
	switch t.kind {
	case TypeTypedefRef:
		u, ok := t.tu.typedefs[t.spelling]
		if !ok {
			return Type{}
		}
		return u
	case TypeEnumRef:
		under, ok := t.tu.enums[t.spelling]
		if !ok {
			return Type{}
		}
		return Type{kind: TypePrimitive, spelling: under, tu: t.tu}
	default:
		return Type{}
	}
}

// Canonical removes top-level typedef indirections, exposing the ultimate
// primitive, enum, pointer, or record shape. Pointees are left alone; the
// caller unwraps pointers itself when it cares about what is behind them.
func (t Type) Canonical() Type {
	for hops := 0; t.kind == TypeTypedefRef; hops++ {
		u := t.Underlying()
		if !u.IsValid() || hops >= maxAliasHops {
			return Type{kind: TypeInvalid, spelling: t.spelling}
		}
		t = u
	}
	return t
}

// renderType formats a type for display names: the base spelling followed
// by one '*' per pointer level.
func renderType(t Type) string {
	depth := 0
	for t.kind == TypePointer && t.pointee != nil {
		depth++
		t = *t.pointee
	}
	return t.Spelling() + strings.Repeat("*", depth)
}
