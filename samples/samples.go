// Package samples defines small example schemas and registers them for the
// shapecheck command.
package samples

import (
	sc "github.com/reoring/shapecheck"
	"github.com/reoring/shapecheck/pred"
	"github.com/reoring/shapecheck/registry"
	"github.com/reoring/shapecheck/rules"
)

// Person requires a string name and a numeric id.
func Person() sc.Validator {
	return sc.Table(
		sc.Field("name", sc.Assert(pred.String(), "name must be a string")),
		sc.Field("id", sc.Assert(pred.Number(), "id must be a number")),
	)
}

// Gender restricts gender to a small set and hints at the closest value.
func Gender() sc.Validator {
	return sc.Table(
		sc.Field("gender", sc.Assert(
			sc.OneOf("male", "female", "carp"),
			"Gender not recognised!",
			"Perhaps you are a carp?",
		)),
	)
}

// Nested requires a nested table with a numeric val.
func Nested() sc.Validator {
	return sc.Table(
		sc.Field("nested", sc.Table(
			sc.Field("val", sc.Assert(pred.Number(), "val must be a number")),
		)),
	)
}

// Numbers requires a non-empty list of numbers.
func Numbers() sc.Validator {
	return sc.Assert(sc.Nonempty(sc.TableOf(pred.Number())), "expected a non-empty list of numbers")
}

// Order combines structural checks with cross-field rules.
func Order() sc.Validator {
	item := sc.Table(
		sc.Field("sku", sc.Assert(pred.Match(`^[A-Z]{3}-\d+$`), "sku must look like ABC-123")),
		sc.Field("qty", sc.Assert(sc.And(pred.Integer(), pred.Between(1, 1000)), "qty must be an integer between 1 and 1000")),
	)
	return sc.Table(
		sc.Field("id", sc.Assert(pred.String(), "id must be a string")),
		sc.Field("status", sc.Enum("draft", "placed", "shipped")),
		sc.Field("items", sc.Assert(sc.Nonempty(sc.TableOf(item)), "items must be a non-empty list of items")),
		sc.Field("min_total", sc.Optional(pred.Number())),
		sc.Field("total", sc.Assert(
			sc.And(pred.Number(), sc.Or(rules.Absent("min_total"), rules.Compare("min_total", rules.Ge))),
			"total must be a number not below min_total",
		)),
		sc.Field("shipped_at", rules.If("status", rules.Eq, "shipped").
			Then(sc.Assert(pred.String(), "shipped_at is required once shipped"))),
		sc.Field("note", sc.Optional(pred.MaxLen(200))),
	)
}

// Register adds every sample schema to r.
func Register(r *registry.Registry) {
	r.MustRegister("person", Person(), "name (string) and id (number)")
	r.MustRegister("gender", Gender(), "gender in male/female/carp")
	r.MustRegister("nested", Nested(), "nested.val must be a number")
	r.MustRegister("numbers", Numbers(), "non-empty list of numbers")
	r.MustRegister("order", Order(), "order document with items and cross-field rules")
}
