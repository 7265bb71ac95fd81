package shapecheck

import (
	"strconv"
	"strings"
)

// Key addresses one entry of a structured container: a field name or a
// zero-based position.
type Key struct {
	name  string
	index int
	pos   bool
}

// Name returns a key addressing a named field.
func Name(name string) Key { return Key{name: name} }

// Index returns a key addressing a zero-based position.
func Index(i int) Key { return Key{index: i, pos: true} }

// IsIndex reports whether the key is positional.
func (k Key) IsIndex() bool { return k.pos }

// Name returns the field name; empty for positional keys.
func (k Key) Name() string { return k.name }

// Index returns the position; -1 for named keys.
func (k Key) Index() int {
	if !k.pos {
		return -1
	}
	return k.index
}

// String renders the key as used in diagnostics.
func (k Key) String() string {
	if k.pos {
		return strconv.Itoa(k.index)
	}
	return k.name
}

// token escapes the key as a JSON Pointer reference token (RFC 6901).
func (k Key) token() string {
	if k.pos {
		return strconv.Itoa(k.index)
	}
	return strings.ReplaceAll(strings.ReplaceAll(k.name, "~", "~0"), "/", "~1")
}
