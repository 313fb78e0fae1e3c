// Package decl extracts the declaration model (typedefs, enums, functions)
// from a parsed header and provides the alias-chasing and parameter-type
// resolution the emitter needs.
package decl

import "github.com/jward/pxdgen/internal/frontend"

// Outcome is a visitor's pre-order decision for one cursor.
type Outcome int

const (
	// Descend visits the cursor's children, then the After hook.
	Descend Outcome = iota
	// Stop skips the children and the After hook.
	Stop
)

// Visitor is the walker's policy: a pre-order decision and a post-order
// hook. The walker itself knows nothing about declarations.
type Visitor interface {
	Decide(cur *frontend.Cursor) Outcome
	After(cur *frontend.Cursor)
}

// Walk traverses the cursor tree depth-first. For each cursor it asks the
// visitor to decide; on Descend it walks every child in source order and
// then calls After.
func Walk(cur *frontend.Cursor, v Visitor) {
	if v.Decide(cur) == Stop {
		return
	}
	for _, child := range cur.Children() {
		Walk(child, v)
	}
	v.After(cur)
}
