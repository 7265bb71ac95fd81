package shapecheck

import (
	"fmt"
	"slices"

	"github.com/agnivade/levenshtein"

	"github.com/reoring/shapecheck/fn"
	"github.com/reoring/shapecheck/i18n"
)

// Assert decorates check with a fallback message and hints. The pass/fail
// outcome of check is returned unchanged; on failure, diagnostics produced by
// check win over the fallback ones.
func Assert(check Validator, message string, hints ...string) Validator {
	hints = slices.Clone(hints)
	return ValidatorFunc(func(value, parent any) Result {
		res := check.Validate(value, parent)
		if res.OK {
			return res
		}
		return mergeDiagnostics(res, message, hints)
	})
}

// And passes when every validator passes. It stops at the first failure and
// returns that failure unchanged. An empty And passes.
func And(vs ...Validator) Validator {
	vs = slices.Clone(vs)
	return ValidatorFunc(func(value, parent any) Result {
		for _, v := range vs {
			if res := v.Validate(value, parent); !res.OK {
				return res
			}
		}
		return Pass()
	})
}

// Or passes when at least one validator passes and returns the first success.
// When every validator fails the last failure is returned. An empty Or fails.
func Or(vs ...Validator) Validator {
	vs = slices.Clone(vs)
	return ValidatorFunc(func(value, parent any) Result {
		var last Result
		for _, v := range vs {
			res := v.Validate(value, parent)
			if res.OK {
				return res
			}
			last = res
		}
		return last
	})
}

// Not inverts v. Diagnostics of v are dropped.
func Not(v Validator) Validator {
	return ValidatorFunc(func(value, parent any) Result {
		return Result{OK: !v.Validate(value, parent).OK}
	})
}

// Optional passes when the value is absent, otherwise when every validator
// passes.
func Optional(vs ...Validator) Validator {
	return Or(Predicate(IsNil), And(vs...))
}

// TableOf passes when value is a container and every element satisfies elem.
// It never produces diagnostics; wrap it with Assert for a message.
func TableOf(elem Validator) Validator {
	return ValidatorFunc(func(value, _ any) Result {
		if !IsTable(value) {
			return Result{}
		}
		ok := true
		Each(value, func(_ Key, e any) bool {
			ok = elem.Validate(e, value).OK
			return ok
		})
		return Result{OK: ok}
	})
}

// OneOf passes when value equals one of allowed. Numbers compare by numeric
// value across Go numeric types and json.Number; everything else by deep
// equality.
func OneOf(allowed ...any) Validator {
	return Predicate(fn.HasValue(allowed...))
}

// Nonempty passes when value is a container with at least one element and
// every check passes on the whole container.
func Nonempty(checks ...Validator) Validator {
	rest := And(checks...)
	return ValidatorFunc(func(value, parent any) Result {
		n, ok := Len(value)
		if !ok || n == 0 {
			return Result{}
		}
		return rest.Validate(value, parent)
	})
}

// Enum is OneOf for strings. Its failure carries the not_allowed message and a
// hint naming the closest allowed value.
func Enum(allowed ...string) Validator {
	allowed = slices.Clone(allowed)
	return ValidatorFunc(func(value, _ any) Result {
		s, isString := value.(string)
		if isString && slices.Contains(allowed, s) {
			return Pass()
		}
		res := Result{Message: i18n.T(CodeNotAllowed, nil), Code: CodeNotAllowed}
		if isString {
			if best, ok := closest(s, allowed); ok {
				res.Hints = []string{fmt.Sprintf("did you mean %q?", best)}
			}
		}
		return res
	})
}

// closest returns the candidate with the smallest edit distance to s, provided
// the distance is at most half the length of s (rounded up).
func closest(s string, candidates []string) (string, bool) {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(s, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > (len(s)+1)/2 {
		return "", false
	}
	return best, true
}
