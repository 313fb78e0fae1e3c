package decl

import "strings"

// Typedef is one extracted type alias. Alias is either a lowercase
// primitive spelling or an enum name resolvable against the typedef/enum
// universe; it is never empty.
type Typedef struct {
	Name  string
	Alias string
}

// EnumMember is one enumerator with its reported value. Values keep
// whatever the header declared: repeats and gaps included.
type EnumMember struct {
	Name  string
	Value int64
}

// Enum is one extracted enumeration.
type Enum struct {
	Name       string
	Underlying string
	Members    []EnumMember
}

// Param is one function parameter: a terminal base-type spelling with one
// '*' per pointer level, and the declared name (possibly empty).
type Param struct {
	Type string
	Name string
}

// Function is one extracted function signature.
type Function struct {
	Name       string
	ReturnType string
	Params     []Param
}

// Set holds the declarations extracted from one translation unit, in
// declaration order. A Set is built once and read-only afterwards;
// filtering produces a new Set.
type Set struct {
	Typedefs  []Typedef
	Enums     []Enum
	Functions []Function
}

// Filter returns a new Set keeping only declarations whose name contains
// the library token, compared case-insensitively. Order is preserved and
// the receiver is untouched, so filtering is a pure projection and
// idempotent.
func (s *Set) Filter(lib string) *Set {
	needle := strings.ToLower(lib)
	out := &Set{}
	for _, td := range s.Typedefs {
		if strings.Contains(strings.ToLower(td.Name), needle) {
			out.Typedefs = append(out.Typedefs, td)
		}
	}
	for _, en := range s.Enums {
		if strings.Contains(strings.ToLower(en.Name), needle) {
			out.Enums = append(out.Enums, en)
		}
	}
	for _, fn := range s.Functions {
		if strings.Contains(strings.ToLower(fn.Name), needle) {
			out.Functions = append(out.Functions, fn)
		}
	}
	return out
}
