package decl

import (
	"fmt"
	"strings"

	"github.com/jward/pxdgen/internal/frontend"
)

// Extractor is the walker policy that recognizes typedef, enum, and
// function cursors and builds the declaration Set. It owns its accumulator;
// callers receive the finished Set from Extract.
type Extractor struct {
	set *Set
	err error
}

// NewExtractor returns an Extractor with an empty Set.
func NewExtractor() *Extractor {
	return &Extractor{set: &Set{}}
}

// Extract walks the translation unit and returns the declaration Set.
// An unresolvable parameter type aborts the extraction with an error.
func Extract(tu *frontend.TranslationUnit) (*Set, error) {
	ex := NewExtractor()
	Walk(tu.Root(), ex)
	if ex.err != nil {
		return nil, ex.err
	}
	return ex.set, nil
}

// Decide consumes the three recognized declaration kinds directly (their
// children are read here, not re-visited) and descends through everything
// else, since declarations nest inside namespaces, extern blocks, and
// preprocessor conditionals.
func (e *Extractor) Decide(cur *frontend.Cursor) Outcome {
	if e.err != nil {
		return Stop
	}
	switch cur.Kind() {
	case frontend.KindTypedefDecl:
		e.typedef(cur)
		return Stop
	case frontend.KindEnumDecl:
		e.enum(cur)
		return Stop
	case frontend.KindFunctionDecl:
		e.function(cur)
		return Stop
	default:
		return Descend
	}
}

// After implements Visitor; extraction keeps no post-order state.
func (e *Extractor) After(cur *frontend.Cursor) {}

func (e *Extractor) typedef(cur *frontend.Cursor) {
	canon := cur.Type().Canonical()
	var alias string
	if canon.Kind() == frontend.TypeEnumRef {
		alias = canon.Spelling()
		// The nested enum's display name wins when present; for anonymous
		// enums that is the typedef's own name.
		if kids := cur.Children(); len(kids) > 0 {
			alias = kids[0].DisplayName()
		}
	} else {
		alias = strings.ToLower(canon.Spelling())
	}
	e.set.Typedefs = append(e.set.Typedefs, Typedef{
		Name:  cur.Spelling(),
		Alias: alias,
	})
}

func (e *Extractor) enum(cur *frontend.Cursor) {
	en := Enum{
		Name:       cur.Spelling(),
		Underlying: strings.ToLower(cur.Type().Underlying().Spelling()),
	}
	for _, kid := range cur.Children() {
		if kid.Kind() != frontend.KindEnumConstantDecl {
			continue
		}
		en.Members = append(en.Members, EnumMember{
			Name:  kid.DisplayName(),
			Value: kid.EnumValue(),
		})
	}
	e.set.Enums = append(e.set.Enums, en)
}

func (e *Extractor) function(cur *frontend.Cursor) {
	// The first child carries the return type when one exists; a function
	// with no children returns void. For primitive returns with parameters
	// the first child is a parameter, so its type wins — a known
	// simplification of the front-end's child ordering.
	ret := "void"
	kids := cur.Children()
	if len(kids) > 0 {
		ret = kids[0].Type().Spelling()
	}

	fn := Function{Name: cur.Spelling(), ReturnType: ret}
	for _, kid := range kids {
		if kid.Kind() != frontend.KindParmDecl {
			continue
		}
		desc, err := ResolveParam(kid.Type())
		if err != nil {
			e.err = fmt.Errorf("decl: function %s, parameter %q: %w", cur.Spelling(), kid.DisplayName(), err)
			return
		}
		fn.Params = append(fn.Params, Param{Type: desc, Name: kid.DisplayName()})
	}
	e.set.Functions = append(e.set.Functions, fn)
}
