// Package pxdgen extracts a library's public declarations (typedefs,
// enumerations, function signatures) from a C/C++ header parsed with
// tree-sitter and re-emits them as Cython-style binding declarations,
// stripping the library-name prefix so the generated names read cleanly.
package pxdgen
