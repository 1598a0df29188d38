package validator

import (
	"encoding/json"
	"math"
	"reflect"
	"slices"
)

// Option configures the messages of a base schema.
type Option func(*options)

type options struct {
	required   Message
	invalid    Message
	validation Message
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRequired sets the message reported when the value is absent.
func WithRequired(m Message) Option {
	return func(o *options) { o.required = m }
}

// WithInvalidType sets the message reported when the value has the wrong type.
func WithInvalidType(m Message) Option {
	return func(o *options) { o.invalid = m }
}

// WithValidation sets the message of a constructor's built-in check,
// currently Enum membership.
func WithValidation(m Message) Option {
	return func(o *options) { o.validation = m }
}

func typed[T any](o options, decode func(any) (T, bool)) source[T] {
	return func(path string, in any, present bool) (T, bool, ValidationErrors) {
		var zero T
		if !present {
			return zero, false, failure(path, CodeRequired, o.required)
		}
		v, ok := decode(in)
		if !ok {
			return zero, false, failure(path, CodeInvalidType, o.invalid)
		}
		return v, true, nil
	}
}

// String accepts Go strings.
func String(opts ...Option) *Schema[string] {
	return newSchema(KindString, typed(newOptions(opts), func(in any) (string, bool) {
		s, ok := in.(string)
		return s, ok
	}))
}

// Number accepts any Go integer or float kind and json.Number, yielding float64.
// NaN is a type error.
func Number(opts ...Option) *Schema[float64] {
	return newSchema(KindNumber, typed(newOptions(opts), toFloat))
}

// Int accepts numbers with no fractional part that fit in an int.
// Values outside [math.MinInt, math.MaxInt] are a type error.
func Int(opts ...Option) *Schema[int] {
	return newSchema(KindNumber, typed(newOptions(opts), func(in any) (int, bool) {
		f, ok := toFloat(in)
		if !ok || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, false
		}
		// -math.MinInt is 2^63 (2^31 on 32-bit), the first float past MaxInt.
		if f < math.MinInt || f >= -math.MinInt {
			return 0, false
		}
		return int(f), true
	}))
}

// Bool accepts Go booleans only.
func Bool(opts ...Option) *Schema[bool] {
	return newSchema(KindBoolean, typed(newOptions(opts), func(in any) (bool, bool) {
		b, ok := in.(bool)
		return b, ok
	}))
}

// Any accepts every present value unchanged.
func Any(opts ...Option) *Schema[any] {
	return newSchema(KindAny, typed(newOptions(opts), func(in any) (any, bool) {
		return in, true
	}))
}

// Enum accepts one of options. Panics when options is empty.
func Enum(options []string, opts ...Option) *Schema[string] {
	if len(options) == 0 {
		panic("validator: Enum requires at least one option")
	}
	allowed := slices.Clone(options)
	o := newOptions(opts)
	return String(WithRequired(o.required), WithInvalidType(o.invalid)).
		Refine(func(v string) bool { return slices.Contains(allowed, v) }, o.validation)
}

// AsNumber reports the float64 value Number would decode in to.
func AsNumber(in any) (float64, bool) {
	return toFloat(in)
}

func toFloat(in any) (float64, bool) {
	var f float64
	switch v := in.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		rv := reflect.ValueOf(in)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			f = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			f = float64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			f = rv.Float()
		default:
			return 0, false
		}
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
