package shapecheck

import "slices"

// Result is the outcome of one validation call: (ok, error, hints).
//
// Message and Hints are only meaningful when OK is false. An empty Message
// means no error message was produced; an empty Hints slice means no hints.
type Result struct {
	OK      bool
	Message string
	Hints   []string
	// Code classifies the failure (see the Code* constants). Optional.
	Code string
	// Path is the JSON Pointer of the failing field relative to the validated
	// value. Empty when the failure is at the root.
	Path string
}

// Pass returns a successful Result.
func Pass() Result { return Result{OK: true} }

// Fail returns a failed Result with the given message and hints.
func Fail(message string, hints ...string) Result {
	return Result{Message: message, Hints: slices.Clone(hints)}
}

// HasMessage reports whether the result carries an error message.
func (r Result) HasMessage() bool { return r.Message != "" }

// HasHints reports whether the result carries remediation hints.
func (r Result) HasHints() bool { return len(r.Hints) > 0 }

// mergeDiagnostics fills the diagnostic fields inner left empty with the
// fallback values. Fields already present on inner always win.
func mergeDiagnostics(inner Result, message string, hints []string) Result {
	out := inner
	if !out.HasMessage() && message != "" {
		out.Message = message
		if out.Code == "" {
			out.Code = CodeAssertion
		}
	}
	if !out.HasHints() && len(hints) > 0 {
		out.Hints = slices.Clone(hints)
	}
	return out
}

// at rebases a failure under key k.
func (r Result) at(k Key) Result {
	r.Path = "/" + k.token() + r.Path
	return r
}
