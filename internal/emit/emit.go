// Package emit renders the filtered declaration model as Cython-style
// binding declarations: a type-alias block, an enumeration block, and a
// function block. All public-name shaping lives here as pure string
// transforms parameterized by the library token.
package emit

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/jward/pxdgen/internal/decl"
)

// Emitter writes binding declarations for one library.
type Emitter struct {
	// Lib is the library-name token stripped from public names.
	Lib string
}

// Emit writes the three output blocks in fixed order, separated by blank
// lines. The Set is the filtered view; the TypeMap is built from the full
// declaration set so alias chains through internal-only typedefs still
// resolve.
func (e *Emitter) Emit(w io.Writer, set *decl.Set, tm *decl.TypeMap) error {
	if err := e.typedefBlock(w, tm); err != nil {
		return err
	}
	fmt.Fprintln(w)
	e.enumBlock(w, set)
	fmt.Fprintln(w)
	return e.functionBlock(w, set, tm)
}

// typedefBlock binds each library-owned typedef/enum name to its resolved
// type, annotated with the original internal spelling. When the one-hop
// target is itself an alias, the fully canonical type is bound instead.
func (e *Emitter) typedefBlock(w io.Writer, tm *decl.TypeMap) error {
	fmt.Fprintln(w, "cdef extern from *:")
	needle := strings.ToLower(e.Lib)
	for _, name := range tm.Keys() {
		if !strings.Contains(strings.ToLower(name), needle) {
			continue
		}
		target, _ := tm.Lookup(name)
		resolved := target
		if _, chained := tm.Lookup(target); chained {
			var err error
			resolved, err = tm.Canonical(name)
			if err != nil {
				return fmt.Errorf("emit: typedef %s: %w", name, err)
			}
		}
		fmt.Fprintf(w, "    cptypedef %s %s '%s'\n", resolved, StripToken(name, e.Lib), name)
	}
	return nil
}

// enumBlock emits every captured member of the filtered enums, stripping
// the uppercase library prefix from member names and keeping values
// verbatim, in declaration order.
func (e *Emitter) enumBlock(w io.Writer, set *decl.Set) {
	fmt.Fprintln(w, "cpdef enum:")
	for _, en := range set.Enums {
		for _, m := range en.Members {
			fmt.Fprintf(w, "    %s = %d\n", StripMemberPrefix(m.Name, e.Lib), m.Value)
		}
	}
}

// functionBlock emits one binding per function, return types resolved to
// their terminal spelling, names stripped of the library token with the
// first character lower-cased.
func (e *Emitter) functionBlock(w io.Writer, set *decl.Set, tm *decl.TypeMap) error {
	for _, fn := range set.Functions {
		ret, err := tm.Canonical(fn.ReturnType)
		if err != nil {
			return fmt.Errorf("emit: function %s: %w", fn.Name, err)
		}
		fmt.Fprintf(w, "cpdef %s %s(%s)\n", ret, PublicFuncName(fn.Name, e.Lib), renderParams(fn.Params))
	}
	return nil
}

func renderParams(params []decl.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		if p.Name == "" {
			parts = append(parts, p.Type)
			continue
		}
		parts = append(parts, p.Type+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}

// StripToken removes every occurrence of the library token from a name.
func StripToken(name, lib string) string {
	return strings.ReplaceAll(name, lib, "")
}

// StripMemberPrefix removes a leading "<LIB>_" prefix (uppercase library
// token plus underscore) from an enum member name.
func StripMemberPrefix(name, lib string) string {
	return strings.TrimPrefix(name, strings.ToUpper(lib)+"_")
}

// PublicFuncName shapes a function's public name: the library token is
// stripped wherever it occurs, any separator underscore it leaves at the
// front goes too, and the first character is lower-cased.
func PublicFuncName(name, lib string) string {
	return LowerFirst(strings.TrimLeft(StripToken(name, lib), "_"))
}

// LowerFirst lower-cases the first character only.
func LowerFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
