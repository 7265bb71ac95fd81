package shapecheck

import (
	"errors"
	"fmt"
)

// Failure codes (exported consts for IDE completion and type safety by convention)
const (
	// Shape error: the value is not a structured container.
	CodeNotTable = "not_table"
	// Field error reported with the generic fallback message.
	CodeCorrupt = "corrupt_element"
	// Message supplied by Assert.
	CodeAssertion = "assertion"
	// Value outside an Enum set.
	CodeNotAllowed = "not_allowed"
)

// ValidationError carries a failed Result through error-returning APIs.
type ValidationError struct {
	Result Result
}

// Error renders "message at /path", falling back to a generic text when the
// failing check produced no message.
func (e *ValidationError) Error() string {
	msg := e.Result.Message
	if msg == "" {
		msg = "validation failed"
	}
	if e.Result.Path != "" {
		return fmt.Sprintf("%s at %s", msg, e.Result.Path)
	}
	return msg
}

// Err converts the result into an error; nil when the result passed.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	return &ValidationError{Result: r}
}

// AsValidationError extracts a ValidationError from err using errors.As.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Check validates value against v at the root (no enclosing container) and
// returns the failure as an error.
func Check(v Validator, value any) error {
	return v.Validate(value, nil).Err()
}
