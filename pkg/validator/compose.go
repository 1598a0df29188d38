package validator

import (
	"regexp"
	"unicode/utf8"
)

// Optional returns a copy of s that passes absent values through unset.
func Optional[T any](s *Schema[T]) *Schema[T] {
	c := s.clone()
	c.optional = true
	return c
}

// Required returns a copy of s that reports absent values again.
func Required[T any](s *Schema[T]) *Schema[T] {
	c := s.clone()
	c.optional = false
	c.hasDefault = false
	return c
}

// Default returns a copy of s that substitutes v for absent values.
// The default is fed through the schema like any other input.
func Default[T any](s *Schema[T], v T) *Schema[T] {
	c := s.clone()
	c.hasDefault = true
	c.def = v
	return c
}

// Preprocess returns a copy of s that runs fn on the raw input first.
// fn receives nil for absent values and may return nil to mark a value absent.
func Preprocess[T any](fn func(any) any, s *Schema[T]) *Schema[T] {
	c := s.clone()
	c.pre = append([]func(any) any{fn}, c.pre...)
	return c
}

// Map starts a new stage whose input is the output of s converted by fn.
func Map[T, R any](s *Schema[T], fn func(T) R) *Schema[R] {
	return newSchema(s.kind, func(path string, in any, present bool) (R, bool, ValidationErrors) {
		var zero R
		v, set, errs := s.run(path, in, present)
		if len(errs) > 0 || !set {
			return zero, false, errs
		}
		return fn(v), true, nil
	})
}

// MapCheck is Map for conversions that can fail; a failure is reported as
// a Validation error with msg.
func MapCheck[T, R any](s *Schema[T], fn func(T) (R, bool), msg Message) *Schema[R] {
	return newSchema(s.kind, func(path string, in any, present bool) (R, bool, ValidationErrors) {
		var zero R
		v, set, errs := s.run(path, in, present)
		if len(errs) > 0 || !set {
			return zero, false, errs
		}
		out, ok := fn(v)
		if !ok {
			return zero, false, failure(path, CodeValidation, msg)
		}
		return out, true, nil
	})
}

// Pipe feeds the output of s into next.
func Pipe[T, R any](s *Schema[T], next *Schema[R]) *Schema[R] {
	return newSchema(next.kind, func(path string, in any, present bool) (R, bool, ValidationErrors) {
		var zero R
		v, set, errs := s.run(path, in, present)
		if len(errs) > 0 {
			return zero, false, errs
		}
		if !set {
			return next.run(path, nil, false)
		}
		return next.run(path, v, true)
	})
}

// MinLen requires at least n characters.
func MinLen(s *Schema[string], n int, msg Message) *Schema[string] {
	return s.Refine(func(v string) bool { return utf8.RuneCountInString(v) >= n }, msg)
}

// MaxLen allows at most n characters.
func MaxLen(s *Schema[string], n int, msg Message) *Schema[string] {
	return s.Refine(func(v string) bool { return utf8.RuneCountInString(v) <= n }, msg)
}

// Matches requires re to match the whole value as written by the caller.
func Matches(s *Schema[string], re *regexp.Regexp, msg Message) *Schema[string] {
	return s.Refine(re.MatchString, msg)
}
