package pxdgen

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jward/pxdgen/internal/decl"
	"github.com/jward/pxdgen/internal/emit"
	"github.com/jward/pxdgen/internal/frontend"
)

// Generator runs the pipeline: parse the header, extract declarations,
// build the type map, filter to the library's names, and emit binding
// declarations.
type Generator struct {
	standard     string
	includePaths []string
	out          io.Writer
}

// Option configures a Generator.
type Option func(*Generator)

// WithStandard sets the language standard revision used to parse headers
// (for example "c99" or "c++11").
func WithStandard(std string) Option {
	return func(g *Generator) {
		g.standard = std
	}
}

// WithIncludePaths sets the directories searched when resolving #include
// directives, in order.
func WithIncludePaths(paths ...string) Option {
	return func(g *Generator) {
		g.includePaths = append(g.includePaths, paths...)
	}
}

// WithOutput redirects generated text away from standard output.
func WithOutput(w io.Writer) Option {
	return func(g *Generator) {
		g.out = w
	}
}

// New creates a Generator. Defaults: the front-end's default language
// standard, no include paths, output to stdout.
func New(opts ...Option) *Generator {
	g := &Generator{
		standard: frontend.DefaultStandard,
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) parseOptions() frontend.Options {
	return frontend.Options{
		Standard:     g.standard,
		IncludePaths: g.includePaths,
	}
}

// Generate parses the header at headerPath and writes binding declarations
// for the library identified by lib.
func (g *Generator) Generate(ctx context.Context, lib, headerPath string) error {
	tu, err := frontend.Parse(ctx, headerPath, g.parseOptions())
	if err != nil {
		return fmt.Errorf("pxdgen: %w", err)
	}
	return g.generate(lib, tu)
}

// GenerateSource is Generate for in-memory header source, labeled by name.
func (g *Generator) GenerateSource(ctx context.Context, lib, name string, src []byte) error {
	tu, err := frontend.ParseSource(ctx, name, src, g.parseOptions())
	if err != nil {
		return fmt.Errorf("pxdgen: %w", err)
	}
	return g.generate(lib, tu)
}

func (g *Generator) generate(lib string, tu *frontend.TranslationUnit) error {
	set, err := decl.Extract(tu)
	if err != nil {
		return fmt.Errorf("pxdgen: %w", err)
	}

	// The type map is built before filtering: public types may alias
	// library-internal typedefs the filter would hide.
	tm := decl.BuildTypeMap(set)
	filtered := set.Filter(lib)

	em := &emit.Emitter{Lib: lib}
	if err := em.Emit(g.out, filtered, tm); err != nil {
		return fmt.Errorf("pxdgen: %w", err)
	}
	return nil
}

// Dump parses the header and prints its cursor tree, one node per line,
// indented by depth. Intended for inspecting what the front-end produces
// for a given header.
func (g *Generator) Dump(ctx context.Context, headerPath string) error {
	tu, err := frontend.Parse(ctx, headerPath, g.parseOptions())
	if err != nil {
		return fmt.Errorf("pxdgen: %w", err)
	}
	decl.Walk(tu.Root(), &printVisitor{w: g.out})
	return nil
}
