package validator

import (
	"maps"
	"reflect"
	"slices"
	"strconv"
)

// Shape maps field names to fragments.
type Shape map[string]Fragment

// Object validates a map against shape. Every field is validated, so one
// parse reports the failures of all fields. Unknown keys are dropped and
// absent optional fields are omitted from the output.
func Object(shape Shape, opts ...Option) *Schema[map[string]any] {
	fields := maps.Clone(shape)
	keys := slices.Sorted(maps.Keys(fields))
	o := newOptions(opts)

	return newSchema(KindObject, func(path string, in any, present bool) (map[string]any, bool, ValidationErrors) {
		if !present {
			return nil, false, failure(path, CodeRequired, o.required)
		}
		m, ok := toMap(in)
		if !ok {
			return nil, false, failure(path, CodeInvalidType, o.invalid)
		}

		out := make(map[string]any, len(keys))
		var errs ValidationErrors
		for _, key := range keys {
			raw, found := m[key]
			v, set, ferrs := fields[key].parse(join(path, key), raw, found)
			if len(ferrs) > 0 {
				errs = append(errs, ferrs...)
				continue
			}
			if set {
				out[key] = v
			}
		}
		if len(errs) > 0 {
			return nil, false, errs
		}
		return out, true, nil
	})
}

// Record validates every value of an open string-keyed map with value.
// A nil value accepted by an optional value schema keeps its key and is
// stored as the zero value of V, so Record(Optional(Any())) preserves nulls.
func Record[V any](value *Schema[V], opts ...Option) *Schema[map[string]V] {
	o := newOptions(opts)

	return newSchema(KindObject, func(path string, in any, present bool) (map[string]V, bool, ValidationErrors) {
		if !present {
			return nil, false, failure(path, CodeRequired, o.required)
		}
		m, ok := toMap(in)
		if !ok {
			return nil, false, failure(path, CodeInvalidType, o.invalid)
		}

		out := make(map[string]V, len(m))
		var errs ValidationErrors
		for _, key := range slices.Sorted(maps.Keys(m)) {
			v, _, ferrs := value.run(join(path, key), m[key], true)
			if len(ferrs) > 0 {
				errs = append(errs, ferrs...)
				continue
			}
			out[key] = v
		}
		if len(errs) > 0 {
			return nil, false, errs
		}
		return out, true, nil
	})
}

// Array validates every element with elem. The output keeps the input
// length: a nil element accepted by an optional element schema is stored as
// the zero value of T. Use a Required element schema to reject nulls.
func Array[T any](elem *Schema[T], opts ...Option) *Schema[[]T] {
	o := newOptions(opts)

	return newSchema(KindArray, func(path string, in any, present bool) ([]T, bool, ValidationErrors) {
		if !present {
			return nil, false, failure(path, CodeRequired, o.required)
		}
		items, ok := toSlice(in)
		if !ok {
			return nil, false, failure(path, CodeInvalidType, o.invalid)
		}

		out := make([]T, 0, len(items))
		var errs ValidationErrors
		for i, item := range items {
			v, _, ierrs := elem.run(join(path, strconv.Itoa(i)), item, item != nil)
			if len(ierrs) > 0 {
				errs = append(errs, ierrs...)
				continue
			}
			out = append(out, v)
		}
		if len(errs) > 0 {
			return nil, false, errs
		}
		return out, true, nil
	})
}

// ArrayOf is Array for a type-erased element fragment.
func ArrayOf(elem Fragment, opts ...Option) *Schema[[]any] {
	return Array(erase(elem), opts...)
}

// Union accepts the output of the first fragment that succeeds. When none
// does, a single InvalidType error is reported.
func Union(fragments ...Fragment) *Schema[any] {
	return UnionWith(nil, fragments...)
}

// UnionWith is Union with custom Required and InvalidType messages.
func UnionWith(opts []Option, fragments ...Fragment) *Schema[any] {
	members := slices.Clone(fragments)
	o := newOptions(opts)

	return newSchema(KindAny, func(path string, in any, present bool) (any, bool, ValidationErrors) {
		if !present {
			return nil, false, failure(path, CodeRequired, o.required)
		}
		for _, f := range members {
			if v, set, errs := f.parse(path, in, true); len(errs) == 0 {
				return v, set, nil
			}
		}
		return nil, false, failure(path, CodeInvalidType, o.invalid)
	})
}

func erase(f Fragment) *Schema[any] {
	return newSchema(f.Kind(), func(path string, in any, present bool) (any, bool, ValidationErrors) {
		return f.parse(path, in, present)
	})
}

func toMap(in any) (map[string]any, bool) {
	switch m := in.(type) {
	case map[string]any:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, true
	}

	rv := reflect.ValueOf(in)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func toSlice(in any) ([]any, bool) {
	if s, ok := in.([]any); ok {
		return s, true
	}

	rv := reflect.ValueOf(in)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
