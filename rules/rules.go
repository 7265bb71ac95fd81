// Package rules provides cross-field validators. They read sibling fields from
// the enclosing container that Table passes as the parent argument.
//
// Like predicates, rules produce no diagnostics of their own; wrap them with
// shapecheck.Assert to attach a message.
package rules

import (
	"github.com/reoring/shapecheck"
	"github.com/reoring/shapecheck/fn"
)

// Op defines simple comparison operators for Compare and If(...).Then(...)
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// String returns the operator symbol.
func (o Op) String() string {
	switch o {
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return "?"
	}
}

// Conditional describes a condition over sibling fields.
type Conditional struct {
	key  string
	op   Op
	want any
	all  []Conditional // composite AND
	any  []Conditional // composite OR
}

// If builds a conditional comparing the sibling field key against want.
func If(key string, op Op, want any) Conditional {
	return Conditional{key: key, op: op, want: want}
}

// IfAll builds a conditional that requires all conditions to hold.
func IfAll(conds ...Conditional) Conditional { return Conditional{all: conds} }

// IfAny builds a conditional that requires any condition to hold.
func IfAny(conds ...Conditional) Conditional { return Conditional{any: conds} }

// And combines the receiver with additional conditions using logical AND.
func (c Conditional) And(others ...Conditional) Conditional {
	return IfAll(append([]Conditional{c}, others...)...)
}

// Or combines the receiver with additional conditions using logical OR.
func (c Conditional) Or(others ...Conditional) Conditional {
	return IfAny(append([]Conditional{c}, others...)...)
}

// Holds evaluates the condition against a container.
func (c Conditional) Holds(parent any) bool {
	if len(c.all) > 0 {
		for _, it := range c.all {
			if !it.Holds(parent) {
				return false
			}
		}
		return true
	}
	if len(c.any) > 0 {
		for _, it := range c.any {
			if it.Holds(parent) {
				return true
			}
		}
		return false
	}
	cur, ok := shapecheck.Lookup(parent, shapecheck.Name(c.key))
	if !ok {
		return false
	}
	return compare(cur, c.op, c.want)
}

// Then returns a validator that applies vs only when the condition holds on
// the enclosing container; otherwise the value passes.
func (c Conditional) Then(vs ...shapecheck.Validator) shapecheck.Validator {
	rest := shapecheck.And(vs...)
	return shapecheck.ValidatorFunc(func(value, parent any) shapecheck.Result {
		if !c.Holds(parent) {
			return shapecheck.Pass()
		}
		return rest.Validate(value, parent)
	})
}

// Compare checks value <op> parent[other]. Numbers compare numerically and
// strings lexically; Eq and Ne fall back to deep equality.
func Compare(other string, op Op) shapecheck.Validator {
	return shapecheck.ValidatorFunc(func(value, parent any) shapecheck.Result {
		want, ok := shapecheck.Lookup(parent, shapecheck.Name(other))
		if !ok {
			return shapecheck.Result{}
		}
		return shapecheck.Result{OK: compare(value, op, want)}
	})
}

// RequiredWith requires the value to be present whenever the sibling field
// other is present.
func RequiredWith(other string) shapecheck.Validator {
	return shapecheck.ValidatorFunc(func(value, parent any) shapecheck.Result {
		v, ok := shapecheck.Lookup(parent, shapecheck.Name(other))
		if !ok || shapecheck.IsNil(v) {
			return shapecheck.Pass()
		}
		return shapecheck.Result{OK: !shapecheck.IsNil(value)}
	})
}

// Absent passes when the sibling field other is absent, whatever the value.
func Absent(other string) shapecheck.Validator {
	return shapecheck.ValidatorFunc(func(_, parent any) shapecheck.Result {
		v, ok := shapecheck.Lookup(parent, shapecheck.Name(other))
		return shapecheck.Result{OK: !ok || shapecheck.IsNil(v)}
	})
}

func compare(cur any, op Op, want any) bool {
	switch op {
	case Eq:
		return fn.Eq(cur, want)
	case Ne:
		return !fn.Eq(cur, want)
	}
	c, ok := fn.Compare(cur, want)
	if !ok {
		return false
	}
	switch op {
	case Lt:
		return c < 0
	case Le:
		return c <= 0
	case Gt:
		return c > 0
	case Ge:
		return c >= 0
	default:
		return false
	}
}
