package validator

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

// Kind tags the base type a schema validates.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindObject  Kind = "object"
	KindArray   Kind = "array"
	KindAny     Kind = "any"
)

// Fragment is the type-erased view of a Schema used by Object, ArrayOf and Union.
type Fragment interface {
	Kind() Kind
	IsOptional() bool
	parse(path string, in any, present bool) (any, bool, ValidationErrors)
}

// source produces the stage value. It is responsible for reporting absence
// and type mismatches; present is false when the input is missing or nil.
type source[T any] func(path string, in any, present bool) (T, bool, ValidationErrors)

type check[T any] struct {
	ok   func(T) bool
	code string
	at   string
	msg  Message
}

// Schema is an immutable validation rule producing values of type T.
//
// Execution order is fixed: preprocess, absence handling, base decode,
// checks, transforms. Checks always see the value before any transform of
// the same stage. Every method returns a new Schema; the receiver is never
// modified, so a Schema can be shared across goroutines.
type Schema[T any] struct {
	kind       Kind
	optional   bool
	hasDefault bool
	def        T
	pre        []func(any) any
	src        source[T]
	checks     []check[T]
	transforms []func(T) T
}

func newSchema[T any](kind Kind, src source[T]) *Schema[T] {
	return &Schema[T]{kind: kind, src: src}
}

func (s *Schema[T]) clone() *Schema[T] {
	c := *s
	c.pre = slices.Clip(s.pre)
	c.checks = slices.Clip(s.checks)
	c.transforms = slices.Clip(s.transforms)
	return &c
}

func (s *Schema[T]) Kind() Kind { return s.kind }

// IsOptional reports whether an absent value is accepted.
func (s *Schema[T]) IsOptional() bool { return s.optional || s.hasDefault }

// HasDefault reports whether absent values are replaced by a default.
func (s *Schema[T]) HasDefault() bool { return s.hasDefault }

// Refine adds a Validation check.
func (s *Schema[T]) Refine(ok func(T) bool, msg Message) *Schema[T] {
	return s.Check(CodeValidation, ok, msg)
}

// RefineAt adds a Validation check whose failure is reported on a child path.
// It is meant for cross-field rules on object schemas.
func (s *Schema[T]) RefineAt(field string, ok func(T) bool, msg Message) *Schema[T] {
	c := s.clone()
	c.checks = append(c.checks, check[T]{ok: ok, code: CodeValidation, at: field, msg: msg})
	return c
}

// Check adds a check reported with the given failure code.
func (s *Schema[T]) Check(code string, ok func(T) bool, msg Message) *Schema[T] {
	c := s.clone()
	c.checks = append(c.checks, check[T]{ok: ok, code: code, msg: msg})
	return c
}

// Transform adds a same-type normalization applied after all checks.
func (s *Schema[T]) Transform(fn func(T) T) *Schema[T] {
	c := s.clone()
	c.transforms = append(c.transforms, fn)
	return c
}

// Parse validates input and returns the normalized output.
// A nil input is treated as an absent value.
func (s *Schema[T]) Parse(input any, opts ...ParseOption) (T, error) {
	v, _, errs := s.run("", input, input != nil)
	if len(errs) > 0 {
		var zero T
		s.log(errs, opts)
		return zero, errs
	}
	return v, nil
}

// Validate runs Parse and discards the output.
func (s *Schema[T]) Validate(input any, opts ...ParseOption) error {
	_, err := s.Parse(input, opts...)
	return err
}

func (s *Schema[T]) parse(path string, in any, present bool) (any, bool, ValidationErrors) {
	v, set, errs := s.run(path, in, present)
	if !set {
		return nil, false, errs
	}
	return v, true, errs
}

func (s *Schema[T]) run(path string, in any, present bool) (T, bool, ValidationErrors) {
	var zero T

	for _, p := range s.pre {
		in = p(in)
	}
	if in == nil {
		present = false
	}

	if !present {
		switch {
		case s.hasDefault:
			in, present = any(s.def), true
		case s.optional:
			return zero, false, nil
		}
	}

	v, set, errs := s.src(path, in, present)
	if len(errs) > 0 || !set {
		return zero, false, errs
	}

	for _, c := range s.checks {
		if !c.ok(v) {
			p := path
			if c.at != "" {
				p = join(path, c.at)
			}
			return zero, false, failure(p, c.code, c.msg)
		}
	}

	for _, t := range s.transforms {
		v = t(v)
	}

	return v, true, nil
}

// ParseOption configures a single Parse call.
type ParseOption func(*parseConfig)

type parseConfig struct {
	logger *slog.Logger
}

// WithLogger logs failed parses at debug level.
func WithLogger(l *slog.Logger) ParseOption {
	return func(c *parseConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

func (s *Schema[T]) log(errs ValidationErrors, opts []ParseOption) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		return
	}

	attrs := make([]slog.Attr, 0, len(errs))
	for _, e := range errs {
		attrs = append(attrs, logger.Failure(e.Field, e.Code, e.Message))
	}
	cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "validation failed",
		logger.Kind(string(s.kind)),
		logger.Error(errs),
		logger.Group("failures", attrs...),
	)
}
