package shapecheck

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Host container primitives. A structured container is a non-nil map, slice,
// array or struct (or a non-nil pointer to one). Byte slices are treated as
// scalar data, not containers.

// IsNil reports whether v represents absence: untyped nil, or a nil pointer,
// map, slice, interface, func or chan.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// IsTable reports whether v is a structured container.
func IsTable(v any) bool {
	switch t := v.(type) {
	case map[string]any:
		return t != nil
	case []any:
		return t != nil
	}
	_, ok := container(v)
	return ok
}

// Len returns the number of elements of a container. Structs count their
// addressable fields.
func Len(v any) (int, bool) {
	switch t := v.(type) {
	case map[string]any:
		return len(t), t != nil
	case []any:
		return len(t), t != nil
	}
	rv, ok := container(v)
	if !ok {
		return 0, false
	}
	if rv.Kind() == reflect.Struct {
		return len(structFields(rv.Type())), true
	}
	return rv.Len(), true
}

// Lookup returns the element of v addressed by k. The boolean is false when v
// is not a container or has no such element.
func Lookup(v any, k Key) (any, bool) {
	switch t := v.(type) {
	case map[string]any:
		if k.pos {
			return nil, false
		}
		val, ok := t[k.name]
		return val, ok
	case []any:
		if !k.pos || k.index < 0 || k.index >= len(t) {
			return nil, false
		}
		return t[k.index], true
	}
	rv, ok := container(v)
	if !ok {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Map:
		return lookupMap(rv, k)
	case reflect.Slice, reflect.Array:
		if !k.pos || k.index < 0 || k.index >= rv.Len() {
			return nil, false
		}
		return rv.Index(k.index).Interface(), true
	case reflect.Struct:
		if k.pos {
			return nil, false
		}
		for _, f := range structFields(rv.Type()) {
			if f.key == k.name {
				return rv.Field(f.index).Interface(), true
			}
		}
	}
	return nil, false
}

// Each calls fn for every element of v until fn returns false. Map iteration
// order is unspecified. Each does nothing when v is not a container.
func Each(v any, fn func(k Key, elem any) bool) {
	switch t := v.(type) {
	case map[string]any:
		for key, val := range t {
			if !fn(Name(key), val) {
				return
			}
		}
		return
	case []any:
		for i, val := range t {
			if !fn(Index(i), val) {
				return
			}
		}
		return
	}
	rv, ok := container(v)
	if !ok {
		return
	}
	switch rv.Kind() {
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if !fn(keyOf(iter.Key()), iter.Value().Interface()) {
				return
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if !fn(Index(i), rv.Index(i).Interface()) {
				return
			}
		}
	case reflect.Struct:
		for _, f := range structFields(rv.Type()) {
			if !fn(Name(f.key), rv.Field(f.index).Interface()) {
				return
			}
		}
	}
}

// container unwraps pointers and interfaces and reports whether the result is
// a non-nil container value.
func container(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		return rv, !rv.IsNil()
	case reflect.Slice:
		if rv.IsNil() || rv.Type().Elem().Kind() == reflect.Uint8 {
			return reflect.Value{}, false
		}
		return rv, true
	case reflect.Array, reflect.Struct:
		return rv, true
	default:
		return reflect.Value{}, false
	}
}

func lookupMap(rv reflect.Value, k Key) (any, bool) {
	kt := rv.Type().Key()
	var key reflect.Value
	switch {
	case kt.Kind() == reflect.String && !k.pos:
		key = reflect.ValueOf(k.name).Convert(kt)
	case isIntKind(kt.Kind()) && k.pos:
		key = reflect.ValueOf(k.index).Convert(kt)
	case isUintKind(kt.Kind()) && k.pos && k.index >= 0:
		key = reflect.ValueOf(uint64(k.index)).Convert(kt)
	case kt.Kind() == reflect.Interface && !k.pos:
		key = reflect.ValueOf(k.name)
	case kt.Kind() == reflect.Interface && k.pos:
		key = reflect.ValueOf(k.index)
	default:
		return nil, false
	}
	if kt.Kind() == reflect.Interface && !key.Type().Implements(kt) {
		return nil, false
	}
	mv := rv.MapIndex(key)
	if !mv.IsValid() {
		return nil, false
	}
	return mv.Interface(), true
}

func keyOf(k reflect.Value) Key {
	for k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	switch {
	case k.Kind() == reflect.String:
		return Name(k.String())
	case isIntKind(k.Kind()):
		return Index(int(k.Int()))
	case isUintKind(k.Kind()):
		return Index(int(k.Uint()))
	default:
		return Name(fmt.Sprint(k.Interface()))
	}
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUintKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

type structField struct {
	key   string
	index int
}

// structFieldsCache maps reflect.Type to []structField.
var structFieldsCache sync.Map

func structFields(t reflect.Type) []structField {
	if c, ok := structFieldsCache.Load(t); ok {
		return c.([]structField)
	}
	fields := make([]structField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := ResolveStructKey(sf)
		if key == "-" {
			continue
		}
		fields = append(fields, structField{key: key, index: i})
	}
	actual, _ := structFieldsCache.LoadOrStore(t, fields)
	return actual.([]structField)
}

// ResolveStructKey returns the key a struct field is addressed by.
// Priority: shapecheck:"name=..." > json tag name > field name; "-" hides the field.
func ResolveStructKey(sf reflect.StructField) string {
	if st := sf.Tag.Get("shapecheck"); st != "" {
		for _, p := range strings.Split(st, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
			if p == "-" {
				return "-"
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if i == 0 {
				return sf.Name
			}
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}
