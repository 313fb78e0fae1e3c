package pxdgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/jward/pxdgen/internal/decl"
	"github.com/jward/pxdgen/internal/frontend"
)

// printVisitor dumps the cursor tree with two-space indentation per depth.
// The After hook unwinds the indent as the walk leaves each subtree.
type printVisitor struct {
	w      io.Writer
	indent int
}

func (p *printVisitor) Decide(cur *frontend.Cursor) decl.Outcome {
	fmt.Fprintf(p.w, "%s%s: %s\n", strings.Repeat("  ", p.indent), cur.Kind(), cur.DisplayName())
	p.indent++
	return decl.Descend
}

func (p *printVisitor) After(cur *frontend.Cursor) {
	p.indent--
}
