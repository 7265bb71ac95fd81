package shapecheck

// Validator checks a candidate value. parent is the enclosing container when
// the validator runs as a Table entry, nil otherwise.
//
// Implementations must not mutate shared state: a validator tree is built once
// and may be invoked concurrently.
type Validator interface {
	Validate(value, parent any) Result
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(value, parent any) Result

// Validate calls f(value, parent).
func (f ValidatorFunc) Validate(value, parent any) Result { return f(value, parent) }

// Predicate is a boolean-only check. As a Validator it never produces
// diagnostics.
type Predicate func(value any) bool

// Validate reports p(value) without diagnostics.
func (p Predicate) Validate(value, _ any) Result { return Result{OK: p(value)} }

// Ensure adapters implement Validator.
var (
	_ Validator = ValidatorFunc(nil)
	_ Validator = Predicate(nil)
)
