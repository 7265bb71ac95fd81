package fn_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/shapecheck/fn"
)

func TestAndOrShortCircuit(t *testing.T) {
	var calls []string
	rec := func(name string, out bool) func(int) bool {
		return func(int) bool { calls = append(calls, name); return out }
	}

	assert.False(t, fn.And(rec("a", true), rec("b", false), rec("c", true))(0))
	assert.Equal(t, []string{"a", "b"}, calls)

	calls = nil
	assert.True(t, fn.Or(rec("a", false), rec("b", true), rec("c", true))(0))
	assert.Equal(t, []string{"a", "b"}, calls)

	assert.True(t, fn.And[int]()(0))
	assert.False(t, fn.Or[int]()(0))
	assert.True(t, fn.Not(rec("x", false))(0))
}

func TestCurry(t *testing.T) {
	sub := fn.Curry(func(a, b int) int { return a - b })
	assert.Equal(t, 7, sub(10)(3))
}

func TestEq(t *testing.T) {
	cases := []struct {
		a, b any
		want bool
	}{
		{1, 1.0, true},
		{int8(-1), uint(1), false},
		{json.Number("42"), 42, true},
		{json.Number("0.5"), float32(0.5), true},
		{uint64(math.MaxUint64), int64(-1), false},
		{"a", "a", true},
		{"1", 1, false},
		{nil, nil, true},
		{math.NaN(), math.NaN(), false},
		{[]any{1, "x"}, []any{1, "x"}, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, fn.Eq(tc.a, tc.b), "Eq(%#v, %#v)", tc.a, tc.b)
	}
}

func TestCompare(t *testing.T) {
	c, ok := fn.Compare(2, 10.5)
	assert.True(t, ok)
	assert.Equal(t, -1, c)

	c, ok = fn.Compare("b", "a")
	assert.True(t, ok)
	assert.Equal(t, 1, c)

	_, ok = fn.Compare("1", 1)
	assert.False(t, ok)
	_, ok = fn.Compare(true, false)
	assert.False(t, ok)
}

func TestHasValue(t *testing.T) {
	in := fn.HasValue("male", "female", 3)
	assert.True(t, in("female"))
	assert.True(t, in(3.0))
	assert.False(t, in("crap"))
	assert.False(t, fn.HasValue()(nil))
}

func TestNumbers(t *testing.T) {
	assert.True(t, fn.IsNumber(json.Number("1e3")))
	assert.False(t, fn.IsNumber(json.Number("abc")))
	assert.False(t, fn.IsNumber("1"))
	assert.True(t, fn.IsInteger(2.0))
	assert.False(t, fn.IsInteger(2.5))
	assert.False(t, fn.IsInteger(math.Inf(1)))
	assert.True(t, fn.IsInteger(json.Number("7")))

	f, ok := fn.Float(uint16(9))
	assert.True(t, ok)
	assert.Equal(t, 9.0, f)
}
