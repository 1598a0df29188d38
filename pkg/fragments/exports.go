package fragments

import (
	"github.com/dmitrymomot/fieldkit/pkg/messages"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Runtime types, re-exported so callers compose fragments with one import.
type (
	Schema[T any]    = validator.Schema[T]
	Fragment         = validator.Fragment
	Shape            = validator.Shape
	Message          = validator.Message
	Option           = validator.Option
	ParseOption      = validator.ParseOption
	ValidationError  = validator.ValidationError
	ValidationErrors = validator.ValidationErrors

	Override = messages.Override
	Uniform  = messages.Uniform
	PerClass = messages.PerClass
)

// Runtime sentinel errors.
var (
	ErrValidationFailed = validator.ErrValidationFailed
	ErrFieldRequired    = validator.ErrFieldRequired
	ErrInvalidType      = validator.ErrInvalidType
	ErrInvalidValue     = validator.ErrInvalidValue
)

// Runtime constructors and helpers without type parameters.
var (
	String    = validator.String
	Number    = validator.Number
	Int       = validator.Int
	Bool      = validator.Bool
	Any       = validator.Any
	Object    = validator.Object
	ArrayOf   = validator.ArrayOf
	Union     = validator.Union
	UnionWith = validator.UnionWith
	MinLen    = validator.MinLen
	MaxLen    = validator.MaxLen
	Matches   = validator.Matches

	WithRequired    = validator.WithRequired
	WithInvalidType = validator.WithInvalidType
	WithValidation  = validator.WithValidation
	WithLogger      = validator.WithLogger

	ExtractValidationErrors = validator.ExtractValidationErrors
	IsValidationError       = validator.IsValidationError
)

func Optional[T any](s *Schema[T]) *Schema[T] { return validator.Optional(s) }

func Required[T any](s *Schema[T]) *Schema[T] { return validator.Required(s) }

func Default[T any](s *Schema[T], v T) *Schema[T] { return validator.Default(s, v) }

func Preprocess[T any](fn func(any) any, s *Schema[T]) *Schema[T] {
	return validator.Preprocess(fn, s)
}

func Map[T, R any](s *Schema[T], fn func(T) R) *Schema[R] { return validator.Map(s, fn) }

func MapCheck[T, R any](s *Schema[T], fn func(T) (R, bool), msg Message) *Schema[R] {
	return validator.MapCheck(s, fn, msg)
}

func Pipe[T, R any](s *Schema[T], next *Schema[R]) *Schema[R] { return validator.Pipe(s, next) }

func Array[T any](elem *Schema[T], opts ...Option) *Schema[[]T] { return validator.Array(elem, opts...) }

func Record[V any](value *Schema[V], opts ...Option) *Schema[map[string]V] {
	return validator.Record(value, opts...)
}
