package fn

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Eq reports value equality. Numbers compare by numeric value across Go
// numeric kinds and json.Number; other values compare with reflect.DeepEqual.
func Eq(a, b any) bool {
	if c, ok := Compare(a, b); ok {
		return c == 0
	}
	return reflect.DeepEqual(a, b)
}

// Compare orders two numbers or two strings. The boolean is false when the
// values are not comparable (mixed kinds, NaN, non-ordered types).
func Compare(a, b any) (int, bool) {
	if na, ok := toNumber(a); ok {
		nb, ok := toNumber(b)
		if !ok {
			return 0, false
		}
		return na.compare(nb)
	}
	sa, ok := toString(a)
	if !ok {
		return 0, false
	}
	sb, ok := toString(b)
	if !ok {
		return 0, false
	}
	return strings.Compare(sa, sb), true
}

// IsNumber reports whether v is a Go numeric value or a valid json.Number.
func IsNumber(v any) bool {
	_, ok := toNumber(v)
	return ok
}

// IsInteger reports whether v is a number with no fractional part.
func IsInteger(v any) bool {
	n, ok := toNumber(v)
	if !ok {
		return false
	}
	if n.isInt || n.isUint {
		return true
	}
	return !math.IsInf(n.f, 0) && n.f == math.Trunc(n.f)
}

// Float returns v as float64 when it is a number.
func Float(v any) (float64, bool) {
	n, ok := toNumber(v)
	if !ok {
		return 0, false
	}
	switch {
	case n.isInt:
		return float64(n.i), true
	case n.isUint:
		return float64(n.u), true
	default:
		return n.f, true
	}
}

type number struct {
	i      int64
	u      uint64
	f      float64
	isInt  bool
	isUint bool
}

func (n number) compare(o number) (int, bool) {
	switch {
	case n.isInt && o.isInt:
		return cmpOrdered(n.i, o.i), true
	case n.isUint && o.isUint:
		return cmpOrdered(n.u, o.u), true
	case n.isInt && o.isUint:
		if n.i < 0 {
			return -1, true
		}
		return cmpOrdered(uint64(n.i), o.u), true
	case n.isUint && o.isInt:
		if o.i < 0 {
			return 1, true
		}
		return cmpOrdered(n.u, uint64(o.i)), true
	}
	a, _ := Float(n)
	b, _ := Float(o)
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, false
	}
	return cmpOrdered(a, b), true
}

func cmpOrdered[T int64 | uint64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func toNumber(v any) (number, bool) {
	switch t := v.(type) {
	case number:
		return t, true
	case json.Number:
		if i, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return number{i: i, isInt: true}, true
		}
		if f, err := strconv.ParseFloat(string(t), 64); err == nil {
			return number{f: f}, true
		}
		return number{}, false
	case nil:
		return number{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{i: rv.Int(), isInt: true}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{u: rv.Uint(), isUint: true}, true
	case reflect.Float32, reflect.Float64:
		return number{f: rv.Float()}, true
	default:
		return number{}, false
	}
}

func toString(v any) (string, bool) {
	if _, isNum := v.(json.Number); isNum || v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}
