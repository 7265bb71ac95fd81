// Package pred provides primitive predicates for building validators.
//
// Every constructor returns a shapecheck.Predicate, so the result can be used
// wherever a shapecheck.Validator is expected.
package pred

import (
	"encoding/json"
	"reflect"
	"regexp"
	"unicode/utf8"

	"github.com/reoring/shapecheck"
	"github.com/reoring/shapecheck/fn"
)

// Nil matches absent values.
func Nil() shapecheck.Predicate { return shapecheck.IsNil }

// Number matches Go numeric values and valid json.Number values.
func Number() shapecheck.Predicate { return fn.IsNumber }

// Integer matches numbers without a fractional part.
func Integer() shapecheck.Predicate { return fn.IsInteger }

// String matches string values (including named string types). json.Number is
// a number, not a string.
func String() shapecheck.Predicate {
	return func(v any) bool {
		if v == nil {
			return false
		}
		if _, isNum := v.(json.Number); isNum {
			return false
		}
		return reflect.ValueOf(v).Kind() == reflect.String
	}
}

// Bool matches boolean values.
func Bool() shapecheck.Predicate {
	return func(v any) bool {
		return v != nil && reflect.ValueOf(v).Kind() == reflect.Bool
	}
}

// Table matches structured containers.
func Table() shapecheck.Predicate { return shapecheck.IsTable }

// Func matches non-nil functions and validators.
func Func() shapecheck.Predicate {
	return func(v any) bool {
		if shapecheck.IsNil(v) {
			return false
		}
		if _, ok := v.(shapecheck.Validator); ok {
			return true
		}
		return reflect.ValueOf(v).Kind() == reflect.Func
	}
}

// Eq matches values equal to want (see fn.Eq).
func Eq(want any) shapecheck.Predicate { return fn.Curry(fn.Eq)(want) }

// In matches values equal to one of values.
func In(values ...any) shapecheck.Predicate { return fn.HasValue(values...) }

// Match matches strings against a regular expression. It panics when pattern
// does not compile, like regexp.MustCompile.
func Match(pattern string) shapecheck.Predicate {
	re := regexp.MustCompile(pattern)
	isString := String()
	return func(v any) bool {
		return isString(v) && re.MatchString(reflect.ValueOf(v).String())
	}
}

// MinLen matches strings with at least n runes and containers with at least n
// elements.
func MinLen(n int) shapecheck.Predicate {
	return func(v any) bool {
		l, ok := length(v)
		return ok && l >= n
	}
}

// MaxLen matches strings with at most n runes and containers with at most n
// elements.
func MaxLen(n int) shapecheck.Predicate {
	return func(v any) bool {
		l, ok := length(v)
		return ok && l <= n
	}
}

// Between matches numbers in the closed range [lo, hi].
func Between(lo, hi float64) shapecheck.Predicate {
	return func(v any) bool {
		f, ok := fn.Float(v)
		return ok && f >= lo && f <= hi
	}
}

func length(v any) (int, bool) {
	if String()(v) {
		return utf8.RuneCountInString(reflect.ValueOf(v).String()), true
	}
	return shapecheck.Len(v)
}
