// Package shapecheck provides composable value-time validators:
//
// - Validators and Predicates as the single unit of composition
// - Structural validation of maps, slices and structs through Table (nesting is composition)
// - Diagnostic decoration through Assert (message + remediation hints)
// - Logical composition through And/Or with short-circuit semantics
//
// Design policy:
// - Validators are immutable once constructed and safe for concurrent use.
// - Failures are values (Result), never panics. Only the first failing field is reported.
// - Predicates live under pred/, functional helpers under fn/, cross-field rules under rules/.
//
// Typical usage:
//
//	person := shapecheck.Table(
//		shapecheck.Field("name", shapecheck.Assert(pred.String(), "name must be a string")),
//		shapecheck.Field("id", shapecheck.Assert(pred.Number(), "id must be a number")),
//	)
//	res := person.Validate(doc, nil)
//	if !res.OK {
//		fmt.Println(res.Message, res.Hints)
//	}
package shapecheck
