package decl

import (
	"fmt"
	"strings"
)

// TypeMap maps every typedef and enum name to its immediate (one hop)
// target. Keys keep insertion order so emission is deterministic. Build it
// from the unfiltered Set: public types may alias library-internal ones the
// filter later hides.
type TypeMap struct {
	keys []string
	m    map[string]string
}

// BuildTypeMap builds the one-hop alias map: typedef names map to their
// aliases, enum names map to their storage primitives. A later entry for
// an existing key overwrites the target but keeps the first position,
// which is what resolves a typedef that shares its name with the enum it
// aliases.
func BuildTypeMap(s *Set) *TypeMap {
	tm := &TypeMap{m: make(map[string]string)}
	for _, td := range s.Typedefs {
		tm.put(td.Name, td.Alias)
	}
	for _, en := range s.Enums {
		tm.put(en.Name, en.Underlying)
	}
	return tm
}

func (tm *TypeMap) put(key, target string) {
	if _, ok := tm.m[key]; !ok {
		tm.keys = append(tm.keys, key)
	}
	tm.m[key] = target
}

// Keys returns the map's keys in insertion order.
func (tm *TypeMap) Keys() []string { return tm.keys }

// Lookup returns the immediate target for a name.
func (tm *TypeMap) Lookup(name string) (string, bool) {
	target, ok := tm.m[name]
	return target, ok
}

// CyclicAliasError reports a typedef chain that loops back on itself.
type CyclicAliasError struct {
	Start string
	Chain []string
}

func (e *CyclicAliasError) Error() string {
	return fmt.Sprintf("decl: cyclic type alias chain starting at %s: %s",
		e.Start, strings.Join(e.Chain, " -> "))
}

// Canonical chases name through the alias chain until it is no longer a
// key, returning the terminal primitive or enum spelling. A cycle returns
// a *CyclicAliasError instead of looping forever.
func (tm *TypeMap) Canonical(name string) (string, error) {
	start := name
	seen := make(map[string]bool)
	var chain []string
	for {
		target, ok := tm.m[name]
		if !ok {
			return name, nil
		}
		if seen[name] {
			return "", &CyclicAliasError{Start: start, Chain: append(chain, name)}
		}
		seen[name] = true
		chain = append(chain, name)
		name = target
	}
}
