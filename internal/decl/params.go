package decl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jward/pxdgen/internal/frontend"
)

// ErrUnresolvedParam reports a parameter type that never reaches a terminal
// base type: record types and malformed alias chains. Well-formed C type
// graphs over the supported declaration subset cannot trigger it.
var ErrUnresolvedParam = errors.New("parameter type cannot be resolved to a base type")

// maxParamHops bounds the unwrap loop so a cyclic typedef chain fails
// instead of hanging.
const maxParamHops = 64

// ResolveParam unwraps a parameter's type to a terminal base-type
// descriptor: pointers add one level of depth and continue on the pointee,
// typedefs follow one front-end hop, enums terminate with their own name,
// primitives terminate with their spelling. The descriptor is the base
// spelling followed by one '*' per pointer level.
func ResolveParam(t frontend.Type) (string, error) {
	t = t.Canonical()
	depth := 0
	for hops := 0; hops < maxParamHops; hops++ {
		switch t.Kind() {
		case frontend.TypePointer:
			depth++
			t = t.Pointee()
		case frontend.TypeTypedefRef:
			t = t.Underlying()
		case frontend.TypeEnumRef:
			return t.Spelling() + strings.Repeat("*", depth), nil
		case frontend.TypePrimitive:
			return t.Spelling() + strings.Repeat("*", depth), nil
		default:
			return "", fmt.Errorf("%w: %s type %q", ErrUnresolvedParam, t.Kind(), t.Spelling())
		}
	}
	return "", fmt.Errorf("%w: alias chain exceeds %d hops", ErrUnresolvedParam, maxParamHops)
}
