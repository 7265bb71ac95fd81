package shapecheck

import (
	"slices"
	"sort"

	"github.com/reoring/shapecheck/i18n"
)

// Entry is one schema entry of a Table: either a presence-only marker or a
// check run against the addressed element.
type Entry struct {
	key   Key
	check Validator // nil means presence-only
}

// Key returns the key the entry addresses.
func (e Entry) Key() Key { return e.key }

// PresenceOnly reports whether the entry only requires the element to exist.
func (e Entry) PresenceOnly() bool { return e.check == nil }

// Field checks the named field with v. A nil v makes the entry presence-only.
func Field(name string, v Validator) Entry { return Entry{key: Name(name), check: v} }

// Present requires the named field to be present (not absent).
func Present(name string) Entry { return Entry{key: Name(name)} }

// Elem checks the element at position i with v. A nil v makes the entry
// presence-only.
func Elem(i int, v Validator) Entry { return Entry{key: Index(i), check: v} }

// ElemPresent requires an element at position i.
func ElemPresent(i int) Entry { return Entry{key: Index(i)} }

type tableSchema struct {
	entries []Entry
}

var _ Validator = (*tableSchema)(nil)

// Table builds a structural validator. Entries are checked in declaration
// order and the first failing entry decides the result.
func Table(entries ...Entry) Validator {
	return &tableSchema{entries: slices.Clone(entries)}
}

// Tuple builds a positional Table: vs[i] checks the element at position i.
func Tuple(vs ...Validator) Validator {
	entries := make([]Entry, len(vs))
	for i, v := range vs {
		entries[i] = Elem(i, v)
	}
	return &tableSchema{entries: entries}
}

// Fields builds a Table from a map schema. Keys are checked in ascending order
// for deterministic failure reporting.
func Fields(schema map[string]Validator) Validator {
	keys := make([]string, 0, len(schema))
	for k := range schema {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Field(k, schema[k])
	}
	return &tableSchema{entries: entries}
}

func (t *tableSchema) Validate(value, parent any) Result {
	if !IsTable(value) {
		// A missing nested table is reported by the enclosing Table as a
		// corrupt element, so only the root and wrong-shaped values get the
		// shape message.
		if parent != nil && IsNil(value) {
			return Result{}
		}
		return Result{Message: i18n.T(CodeNotTable, nil), Code: CodeNotTable}
	}
	for _, e := range t.entries {
		elem, found := Lookup(value, e.key)
		var res Result
		if e.check == nil {
			res = Result{OK: found && !IsNil(elem)}
		} else {
			res = e.check.Validate(elem, value)
		}
		if res.OK {
			continue
		}
		if !res.HasMessage() {
			res.Message = i18n.T(CodeCorrupt, map[string]string{"key": e.key.String()})
			if res.Code == "" {
				res.Code = CodeCorrupt
			}
		}
		return res.at(e.key)
	}
	return Pass()
}
