package fragments

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/dmitrymomot/fieldkit/pkg/messages"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// NonEmptyArrayOf accepts a list of at least one element, each validated by elem.
func NonEmptyArrayOf[T any](elem *validator.Schema[T], label string, override ...messages.Override) *validator.Schema[[]T] {
	t := newText(label, DefaultLabel, override)
	return validator.Array(elem, t.base(messages.KeyArray)...).
		Refine(func(v []T) bool { return len(v) > 0 }, t.msg(messages.KeyNonEmptyArray, nil))
}

// UniqueArrayBy accepts a list whose elements all carry distinct values for
// key. Elements may be maps or structs; struct fields match by name or json
// tag. Elements lacking the key share a single "missing" value.
func UniqueArrayBy[T any](elem *validator.Schema[T], key string, label string, override ...messages.Override) *validator.Schema[[]T] {
	t := newText(label, DefaultLabel, override)
	return validator.Array(elem, t.base(messages.KeyArray)...).
		Refine(func(items []T) bool {
			seen := make(map[string]struct{}, len(items))
			for _, item := range items {
				seen[identity(item, key)] = struct{}{}
			}
			return len(seen) == len(items)
		}, t.msg(messages.KeyUnique, map[string]any{"key": key}))
}

// identity renders the key value so that equal numbers compare equal
// regardless of their Go type, and strings never collide with numbers.
// Numbers go through the same conversion as the Number schema, so
// json.Number("1"), uint8(1) and 1.0 share the key of 1.
func identity(item any, key string) string {
	v, ok := FieldValue(item, key)
	if !ok {
		return "\x00missing"
	}
	if f, ok := validator.AsNumber(v); ok {
		return "n:" + strconv.FormatFloat(f, 'g', -1, 64)
	}
	return fmt.Sprintf("%#v", v)
}

// FieldValue returns the value stored under key in a map or struct.
func FieldValue(item any, key string) (any, bool) {
	switch m := item.(type) {
	case map[string]any:
		v, ok := m[key]
		return v, ok
	case map[string]string:
		v, ok := m[key]
		return v, ok
	}

	rv := reflect.ValueOf(item)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
		rt := rv.Type()
		for i := range rt.NumField() {
			f := rt.Field(i)
			if !f.IsExported() {
				continue
			}
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if f.Name == key || name == key {
				return rv.Field(i).Interface(), true
			}
		}
	}
	return nil, false
}
