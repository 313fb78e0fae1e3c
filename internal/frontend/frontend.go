// Package frontend parses C/C++ headers with tree-sitter and presents them
// as a libclang-style cursor tree: typed declaration nodes with ordered
// children, backed by per-translation-unit type tables that give canonical
// type resolution. Only the declaration subset the generator consumes is
// exposed; function bodies, macros, and struct layouts are not modeled.
package frontend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Options configure a parse: the language standard revision (selects the
// grammar) and the ordered include search paths.
type Options struct {
	Standard     string
	IncludePaths []string
}

// Parse reads and parses the header at path into a translation unit.
func Parse(ctx context.Context, path string, opts Options) (*TranslationUnit, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("frontend: reading %s: %w", path, err)
	}
	return parse(ctx, path, src, opts)
}

// ParseSource parses header source directly under the given name. Exists so
// tests and callers with in-memory headers skip the filesystem.
func ParseSource(ctx context.Context, name string, src []byte, opts Options) (*TranslationUnit, error) {
	return parse(ctx, name, src, opts)
}

func parse(ctx context.Context, name string, src []byte, opts Options) (*TranslationUnit, error) {
	std := opts.Standard
	if std == "" {
		std = DefaultStandard
	}
	grammar, ok := GrammarForStandard(std)
	if !ok {
		return nil, fmt.Errorf("frontend: unsupported language standard %q", std)
	}

	tu := &TranslationUnit{
		typedefs: make(map[string]Type),
		enums:    make(map[string]string),
	}
	b := &builder{
		ctx:     ctx,
		opts:    opts,
		grammar: grammar,
		tu:      tu,
		visited: make(map[string]bool),
	}
	if abs, err := filepath.Abs(name); err == nil {
		b.visited[abs] = true
	}

	children, err := b.buildSource(name, src, filepath.Dir(name))
	if err != nil {
		return nil, err
	}
	tu.root = &Cursor{
		kind:     KindTranslationUnit,
		spelling: filepath.Base(name),
		children: children,
	}
	return tu, nil
}

// builder converts one tree-sitter parse (plus any spliced includes) into
// cursors, registering typedefs and enums in the translation unit's tables
// as it encounters them.
type builder struct {
	ctx     context.Context
	opts    Options
	grammar *sitter.Language
	tu      *TranslationUnit
	visited map[string]bool

	// current file state; saved and restored around include splicing
	src []byte
	dir string
}

func (b *builder) buildSource(name string, src []byte, dir string) ([]*Cursor, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(b.grammar)

	tree, err := parser.ParseCtx(b.ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("frontend: parsing %s: %w", name, err)
	}
	defer tree.Close()

	prevSrc, prevDir := b.src, b.dir
	b.src, b.dir = src, dir
	defer func() { b.src, b.dir = prevSrc, prevDir }()

	return b.buildItems(tree.RootNode()), nil
}

// buildItems converts the named children of n, skipping anything the
// declaration model does not cover (macros, comments, stray tokens).
func (b *builder) buildItems(n *sitter.Node) []*Cursor {
	var out []*Cursor
	for i := 0; i < int(n.NamedChildCount()); i++ {
		out = append(out, b.buildItem(n.NamedChild(i))...)
	}
	return out
}

func (b *builder) buildItem(n *sitter.Node) []*Cursor {
	switch n.Type() {
	case "preproc_include":
		return b.buildInclude(n)
	case "preproc_if", "preproc_ifdef", "preproc_elif", "preproc_else":
		return []*Cursor{b.buildContainer(n, b.guardSpelling(n))}
	case "linkage_specification":
		spelling := "extern"
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if c := n.NamedChild(i); c.Type() == "string_literal" {
				spelling = "extern " + c.Content(b.src)
				break
			}
		}
		body := n.ChildByFieldName("body")
		if body == nil {
			body = n
		}
		return []*Cursor{b.buildContainer(body, spelling)}
	case "namespace_definition":
		body := n.ChildByFieldName("body")
		if body == nil {
			body = n
		}
		return []*Cursor{b.buildContainer(body, b.fieldText(n, "name"))}
	case "declaration_list":
		return []*Cursor{b.buildContainer(n, "")}
	case "type_definition":
		return b.buildTypedef(n)
	case "enum_specifier":
		if cur := b.buildEnum(n, ""); cur != nil {
			return []*Cursor{cur}
		}
		return nil
	case "declaration":
		return b.buildDeclaration(n)
	default:
		return nil
	}
}

func (b *builder) buildContainer(body *sitter.Node, spelling string) *Cursor {
	return &Cursor{
		kind:     KindUnexposedDecl,
		spelling: spelling,
		children: b.buildItems(body),
	}
}

func (b *builder) guardSpelling(n *sitter.Node) string {
	if name := n.ChildByFieldName("name"); name != nil {
		return name.Content(b.src)
	}
	if cond := n.ChildByFieldName("condition"); cond != nil {
		return cond.Content(b.src)
	}
	return "else"
}

// buildInclude resolves an #include against the current directory (quoted
// form only) and the configured include paths, then splices the included
// header's top-level cursors in place. Unresolvable includes are skipped;
// the walk continues over whatever did parse.
func (b *builder) buildInclude(n *sitter.Node) []*Cursor {
	pathNode := n.ChildByFieldName("path")
	if pathNode == nil {
		return nil
	}
	raw := pathNode.Content(b.src)
	quoted := strings.HasPrefix(raw, `"`)
	name := strings.Trim(raw, `"<>`)

	var search []string
	if quoted {
		search = append(search, b.dir)
	}
	search = append(search, b.opts.IncludePaths...)

	for _, dir := range search {
		full := filepath.Join(dir, name)
		abs, err := filepath.Abs(full)
		if err != nil {
			continue
		}
		if b.visited[abs] {
			return nil
		}
		src, err := os.ReadFile(full)
		if err != nil {
			continue
		}
		b.visited[abs] = true
		kids, err := b.buildSource(full, src, filepath.Dir(full))
		if err != nil {
			return nil
		}
		return kids
	}
	return nil
}

// buildTypedef produces the typedef cursor(s) for a type_definition node.
// When the underlying type is an enum definition, the enum is emitted as a
// preceding sibling cursor and nested as the typedef's first child, the
// same double exposure the front-end AST has always shown for this shape.
func (b *builder) buildTypedef(n *sitter.Node) []*Cursor {
	typeNode := n.ChildByFieldName("type")
	if typeNode == nil {
		return nil
	}

	var out []*Cursor
	var enumChild *Cursor
	var base Type

	if typeNode.Type() == "enum_specifier" && typeNode.ChildByFieldName("body") != nil {
		// Anonymous enums take the typedef's own name, which is how the
		// front-end reports them.
		name := b.fieldText(typeNode, "name")
		if name == "" {
			name = b.firstDeclaratorName(n, typeNode)
		}
		enumChild = b.buildEnum(typeNode, name)
		if enumChild != nil {
			out = append(out, enumChild)
			base = Type{kind: TypeEnumRef, spelling: enumChild.spelling, tu: b.tu}
		}
	}
	if !base.IsValid() {
		base = b.typeFromNode(typeNode)
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		declNode := n.NamedChild(i)
		if declNode.StartByte() < typeNode.EndByte() {
			continue
		}
		inner, depth := unwrapDeclarator(declNode)
		name := b.identifierText(inner)
		if name == "" {
			continue
		}
		t := base
		for d := 0; d < depth; d++ {
			p := t
			t = Type{kind: TypePointer, pointee: &p, tu: b.tu}
		}
		b.tu.typedefs[name] = t
		cur := &Cursor{
			kind:     KindTypedefDecl,
			spelling: name,
			typ:      Type{kind: TypeTypedefRef, spelling: name, tu: b.tu},
		}
		if enumChild != nil {
			cur.children = []*Cursor{enumChild}
		}
		out = append(out, cur)
	}
	return out
}

func (b *builder) firstDeclaratorName(n, typeNode *sitter.Node) string {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		declNode := n.NamedChild(i)
		if declNode.StartByte() < typeNode.EndByte() {
			continue
		}
		inner, _ := unwrapDeclarator(declNode)
		if name := b.identifierText(inner); name != "" {
			return name
		}
	}
	return ""
}

// buildEnum converts an enum_specifier with a body into an EnumDecl cursor
// and registers its storage type. Returns nil for bodiless references.
// Member values are computed the way the front-end reports them: explicit
// integer initializers, otherwise previous value plus one, starting at 0.
func (b *builder) buildEnum(n *sitter.Node, nameOverride string) *Cursor {
	body := n.ChildByFieldName("body")
	if body == nil {
		return nil
	}
	name := b.fieldText(n, "name")
	if name == "" {
		name = nameOverride
	}

	underlying := "int"
	if baseNode := n.ChildByFieldName("base"); baseNode != nil {
		underlying = strings.ToLower(strings.Join(strings.Fields(baseNode.Content(b.src)), " "))
	}

	cur := &Cursor{
		kind:     KindEnumDecl,
		spelling: name,
		typ:      Type{kind: TypeEnumRef, spelling: name, tu: b.tu},
	}
	next := int64(0)
	for i := 0; i < int(body.NamedChildCount()); i++ {
		en := body.NamedChild(i)
		if en.Type() != "enumerator" {
			continue
		}
		mname := b.fieldText(en, "name")
		val := next
		if vNode := en.ChildByFieldName("value"); vNode != nil {
			if v, ok := parseEnumValue(vNode.Content(b.src)); ok {
				val = v
			}
		}
		next = val + 1
		cur.children = append(cur.children, &Cursor{
			kind:      KindEnumConstantDecl,
			spelling:  mname,
			enumValue: val,
		})
	}
	if name != "" {
		b.tu.enums[name] = underlying
	}
	return cur
}

// buildDeclaration handles declaration nodes: function prototypes become
// FunctionDecl cursors, inline enum definitions are surfaced, variable
// declarations are not modeled.
func (b *builder) buildDeclaration(n *sitter.Node) []*Cursor {
	typeNode := n.ChildByFieldName("type")
	if typeNode == nil {
		return nil
	}

	var out []*Cursor
	if typeNode.Type() == "enum_specifier" && typeNode.ChildByFieldName("body") != nil {
		if cur := b.buildEnum(typeNode, ""); cur != nil {
			out = append(out, cur)
		}
	}

	inner, depth := unwrapDeclarator(n.ChildByFieldName("declarator"))
	if inner == nil || inner.Type() != "function_declarator" {
		return out
	}

	retBase := b.typeFromNode(typeNode)
	ret := retBase
	for d := 0; d < depth; d++ {
		p := ret
		ret = Type{kind: TypePointer, pointee: &p, tu: b.tu}
	}

	name := b.identifierText(inner.ChildByFieldName("declarator"))
	fn := &Cursor{kind: KindFunctionDecl, spelling: name, typ: ret}

	// A named return type surfaces as a TypeRef first child; primitive
	// returns leave the parameters (if any) in front. Downstream consumers
	// rely on exactly this child ordering.
	if retBase.kind == TypeTypedefRef || retBase.kind == TypeEnumRef {
		fn.children = append(fn.children, &Cursor{
			kind:     KindTypeRef,
			spelling: retBase.spelling,
			typ:      retBase,
		})
	}

	var paramDisplays []string
	if params := inner.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			p := params.NamedChild(i)
			if p.Type() != "parameter_declaration" {
				continue
			}
			pc := b.buildParam(p)
			if pc == nil {
				continue
			}
			fn.children = append(fn.children, pc)
			paramDisplays = append(paramDisplays, renderType(pc.typ))
		}
	}
	fn.display = name + "(" + strings.Join(paramDisplays, ", ") + ")"

	out = append(out, fn)
	return out
}

func (b *builder) buildParam(n *sitter.Node) *Cursor {
	typeNode := n.ChildByFieldName("type")
	if typeNode == nil {
		return nil
	}
	base := b.typeFromNode(typeNode)
	inner, depth := unwrapDeclarator(n.ChildByFieldName("declarator"))

	// A bare void parameter list declares zero parameters.
	if depth == 0 && inner == nil && base.kind == TypePrimitive && base.spelling == "void" {
		return nil
	}

	t := base
	for d := 0; d < depth; d++ {
		p := t
		t = Type{kind: TypePointer, pointee: &p, tu: b.tu}
	}
	return &Cursor{
		kind:     KindParmDecl,
		spelling: b.identifierText(inner),
		typ:      t,
	}
}

// unwrapDeclarator peels pointer and parenthesis layers off a declarator,
// returning the innermost declarator node and the pointer depth crossed.
func unwrapDeclarator(n *sitter.Node) (*sitter.Node, int) {
	depth := 0
	for n != nil {
		switch n.Type() {
		case "pointer_declarator", "abstract_pointer_declarator":
			depth++
			n = n.ChildByFieldName("declarator")
		case "parenthesized_declarator":
			if n.NamedChildCount() == 0 {
				return nil, depth
			}
			n = n.NamedChild(0)
		default:
			return n, depth
		}
	}
	return nil, depth
}

func (b *builder) typeFromNode(n *sitter.Node) Type {
	switch n.Type() {
	case "primitive_type", "sized_type_specifier":
		spelling := strings.Join(strings.Fields(n.Content(b.src)), " ")
		return Type{kind: TypePrimitive, spelling: spelling, tu: b.tu}
	case "type_identifier", "qualified_identifier":
		return b.namedType(n.Content(b.src))
	case "enum_specifier":
		return Type{kind: TypeEnumRef, spelling: b.fieldText(n, "name"), tu: b.tu}
	case "struct_specifier", "union_specifier", "class_specifier":
		return Type{kind: TypeRecord, spelling: b.fieldText(n, "name"), tu: b.tu}
	default:
		return Type{kind: TypeInvalid, spelling: n.Content(b.src)}
	}
}

// namedType classifies a type name against what has been declared so far.
// Unknown names (size_t and friends) stay primitive spellings, which makes
// them terminal for every consumer.
func (b *builder) namedType(name string) Type {
	if _, ok := b.tu.typedefs[name]; ok {
		return Type{kind: TypeTypedefRef, spelling: name, tu: b.tu}
	}
	if _, ok := b.tu.enums[name]; ok {
		return Type{kind: TypeEnumRef, spelling: name, tu: b.tu}
	}
	return Type{kind: TypePrimitive, spelling: name, tu: b.tu}
}

// identifierText finds the declared identifier inside a declarator.
func (b *builder) identifierText(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case "identifier", "type_identifier", "field_identifier":
		return n.Content(b.src)
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if s := b.identifierText(n.NamedChild(i)); s != "" {
			return s
		}
	}
	return ""
}

func (b *builder) fieldText(n *sitter.Node, field string) string {
	child := n.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return child.Content(b.src)
}

// parseEnumValue evaluates the integer initializers enumerators use in
// practice: decimal, hex, octal, char literals, optional sign, integer
// suffixes. Anything else is reported unparsed and the caller falls back
// to sequential numbering.
func parseEnumValue(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	neg := false
	for strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		if s[0] == '-' {
			neg = !neg
		}
		s = strings.TrimSpace(s[1:])
	}
	if len(s) >= 3 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r := []rune(s[1 : len(s)-1])
		if len(r) != 1 {
			return 0, false
		}
		v := int64(r[0])
		if neg {
			v = -v
		}
		return v, true
	}
	s = strings.TrimRight(s, "uUlL")
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}
