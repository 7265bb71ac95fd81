package pred_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/shapecheck"
	"github.com/reoring/shapecheck/pred"
)

type label string

func TestPredicates(t *testing.T) {
	var nilMap map[string]any
	cases := []struct {
		name string
		p    shapecheck.Predicate
		yes  []any
		no   []any
	}{
		{"Nil", pred.Nil(), []any{nil, nilMap, (*int)(nil)}, []any{0, "", false}},
		{"Number", pred.Number(), []any{1, 2.5, uint8(1), json.Number("3")}, []any{"1", nil, true}},
		{"Integer", pred.Integer(), []any{1, 4.0, json.Number("-2")}, []any{1.5, "1"}},
		{"String", pred.String(), []any{"", "x", label("y")}, []any{json.Number("1"), 1, nil, []byte("b")}},
		{"Bool", pred.Bool(), []any{true, false}, []any{"true", 0, nil}},
		{"Table", pred.Table(), []any{map[string]any{}, []any{}, struct{}{}, [2]int{}}, []any{nil, nilMap, "t", 1}},
		{"Func", pred.Func(), []any{func() {}, pred.String()}, []any{nil, 1, (func())(nil)}},
		{"Eq", pred.Eq(3), []any{3, 3.0, json.Number("3")}, []any{"3", 4}},
		{"In", pred.In("a", "b"), []any{"a", "b"}, []any{"c", nil}},
		{"Match", pred.Match(`^[a-z]+$`), []any{"abc", label("xyz")}, []any{"ABC", 1}},
		{"MinLen", pred.MinLen(2), []any{"ab", "日本", []any{1, 2}}, []any{"a", []any{}, 5}},
		{"MaxLen", pred.MaxLen(2), []any{"ab", "", map[string]any{"k": 1}}, []any{"abc", []any{1, 2, 3}, nil}},
		{"Between", pred.Between(1, 10), []any{1, 10, 5.5, json.Number("2")}, []any{0, 11, "5"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, v := range tc.yes {
				assert.True(t, tc.p(v), "expected %#v to match", v)
			}
			for _, v := range tc.no {
				assert.False(t, tc.p(v), "expected %#v not to match", v)
			}
		})
	}
}

func TestPredicateAsValidator(t *testing.T) {
	res := pred.String().Validate(1, nil)
	assert.False(t, res.OK)
	assert.Empty(t, res.Message)
	assert.Empty(t, res.Hints)
}
