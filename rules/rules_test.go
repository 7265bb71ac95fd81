package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sc "github.com/reoring/shapecheck"
	"github.com/reoring/shapecheck/pred"
	"github.com/reoring/shapecheck/rules"
)

func TestCompare(t *testing.T) {
	schema := sc.Table(
		sc.Field("min", pred.Number()),
		sc.Field("max", sc.Assert(rules.Compare("min", rules.Gt), "max must exceed min")),
	)

	assert.True(t, schema.Validate(map[string]any{"min": 1, "max": 2.5}, nil).OK)

	res := schema.Validate(map[string]any{"min": 3, "max": 2}, nil)
	assert.False(t, res.OK)
	assert.Equal(t, "max must exceed min", res.Message)
	assert.Equal(t, "/max", res.Path)

	assert.False(t, schema.Validate(map[string]any{"min": 3, "max": "z"}, nil).OK)

	strs := sc.Table(sc.Field("to", rules.Compare("from", rules.Ge)))
	assert.True(t, strs.Validate(map[string]any{"from": "a", "to": "b"}, nil).OK)
	assert.False(t, strs.Validate(map[string]any{"to": "b"}, nil).OK)
}

func TestIfThen(t *testing.T) {
	schema := sc.Table(
		sc.Field("status", sc.OneOf("draft", "published")),
		sc.Field("published_at", rules.If("status", rules.Eq, "published").
			Then(sc.Assert(pred.String(), "published_at required when published"))),
	)

	assert.True(t, schema.Validate(map[string]any{"status": "draft"}, nil).OK)
	assert.True(t, schema.Validate(map[string]any{"status": "published", "published_at": "2024-01-01"}, nil).OK)

	res := schema.Validate(map[string]any{"status": "published"}, nil)
	assert.Equal(t, "published_at required when published", res.Message)
}

func TestConditionalComposition(t *testing.T) {
	doc := map[string]any{"kind": "order", "total": 150, "express": true}

	assert.True(t, rules.If("kind", rules.Eq, "order").And(rules.If("total", rules.Gt, 100)).Holds(doc))
	assert.False(t, rules.If("kind", rules.Eq, "order").And(rules.If("total", rules.Lt, 100)).Holds(doc))
	assert.True(t, rules.If("kind", rules.Ne, "order").Or(rules.If("express", rules.Eq, true)).Holds(doc))
	assert.False(t, rules.IfAny(rules.If("missing", rules.Eq, 1)).Holds(doc))
	assert.False(t, rules.If("kind", rules.Eq, "order").Holds(42))
}

func TestRequiredWith(t *testing.T) {
	schema := sc.Table(
		sc.Field("password_confirm", sc.Assert(rules.RequiredWith("password"), "confirm your password")),
	)

	assert.True(t, schema.Validate(map[string]any{}, nil).OK)
	assert.True(t, schema.Validate(map[string]any{"password": "x", "password_confirm": "x"}, nil).OK)
	assert.Equal(t, "confirm your password", schema.Validate(map[string]any{"password": "x"}, nil).Message)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, ">=", rules.Ge.String())
	assert.Equal(t, "?", rules.Op(99).String())
}

func TestAbsent(t *testing.T) {
	total := sc.Or(rules.Absent("min"), rules.Compare("min", rules.Ge))
	schema := sc.Table(sc.Field("total", total))

	assert.True(t, schema.Validate(map[string]any{"total": 1}, nil).OK)
	assert.True(t, schema.Validate(map[string]any{"total": 5, "min": 5}, nil).OK)
	assert.False(t, schema.Validate(map[string]any{"total": 4, "min": 5}, nil).OK)
}
