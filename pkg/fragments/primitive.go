package fragments

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fieldkit/pkg/messages"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

func nonEmpty(v string) bool { return v != "" }

func notBlank(v string) bool { return strings.TrimSpace(v) != "" }

// RequiredString accepts a non-empty string.
// Failures: Required when absent, InvalidType for non-strings, Validation for "".
func RequiredString(label string, override ...messages.Override) *validator.Schema[string] {
	t := newText(label, DefaultLabel, override)
	return validator.String(t.base(messages.KeyString)...).
		Refine(nonEmpty, t.msg(messages.KeyEmpty, nil))
}

// OptionalString accepts any string or an absent value.
func OptionalString(label string, override ...messages.Override) *validator.Schema[string] {
	t := newText(label, DefaultLabel, override)
	return validator.Optional(validator.String(t.base(messages.KeyString)...))
}

// RequiredNumber accepts any number.
func RequiredNumber(label string, override ...messages.Override) *validator.Schema[float64] {
	t := newText(label, DefaultLabel, override)
	return validator.Number(t.base(messages.KeyNumber)...)
}

// PositiveNumber accepts numbers strictly greater than zero.
func PositiveNumber(label string, override ...messages.Override) *validator.Schema[float64] {
	t := newText(label, DefaultLabel, override)
	return validator.Number(t.base(messages.KeyNumber)...).
		Refine(func(v float64) bool { return v > 0 }, t.msg(messages.KeyPositive, nil))
}

// OptionalNumber accepts any number or an absent value.
func OptionalNumber(label string, override ...messages.Override) *validator.Schema[float64] {
	t := newText(label, DefaultLabel, override)
	return validator.Optional(validator.Number(t.base(messages.KeyNumber)...))
}

// Boolean accepts true or false.
func Boolean(label string, override ...messages.Override) *validator.Schema[bool] {
	t := newText(label, DefaultLabel, override)
	return validator.Bool(t.base(messages.KeyBoolean)...)
}

// OptionalBoolean accepts a boolean or an absent value.
func OptionalBoolean(label string, override ...messages.Override) *validator.Schema[bool] {
	t := newText(label, DefaultLabel, override)
	return validator.Optional(validator.Bool(t.base(messages.KeyBoolean)...))
}

// UUID accepts a canonical 8-4-4-4-12 hex UUID. The default label is "ID".
// A malformed string is a Validation failure, not a type failure.
func UUID(label string, override ...messages.Override) *validator.Schema[string] {
	t := newText(label, IDLabel, override)
	return validator.String(t.base(messages.KeyString)...).
		Refine(nonEmpty, t.msg(messages.KeyEmpty, nil)).
		Refine(IsUUID, t.msg(messages.KeyUUID, nil))
}

// OptionalUUID is UUID for optional fields.
func OptionalUUID(label string, override ...messages.Override) *validator.Schema[string] {
	t := newText(label, IDLabel, override)
	return validator.Optional(validator.String(t.base(messages.KeyString)...)).
		Refine(IsUUID, t.msg(messages.KeyUUID, nil))
}

// IsUUID reports whether s is a UUID in its canonical textual form.
func IsUUID(s string) bool {
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
