// Package fn provides small functional combinators over boolean functions.
package fn

// And returns a function that is true when every p is true. It stops at the
// first false result. An empty And is always true.
func And[T any](ps ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range ps {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or returns a function that is true when at least one p is true. It stops at
// the first true result. An empty Or is always false.
func Or[T any](ps ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range ps {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// Not negates p.
func Not[T any](p func(T) bool) func(T) bool {
	return func(v T) bool { return !p(v) }
}

// Curry turns a two-argument function into a chain of one-argument functions.
func Curry[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R { return f(a, b) }
	}
}

// HasValue returns a predicate reporting whether its argument equals (per Eq)
// one of values.
func HasValue(values ...any) func(any) bool {
	return Curry(contains)(values)
}

func contains(values []any, v any) bool {
	for _, x := range values {
		if Eq(x, v) {
			return true
		}
	}
	return false
}
