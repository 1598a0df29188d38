package fragments

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/fieldkit/pkg/messages"
	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

var (
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// RequiredStringTrimmed accepts a string with non-whitespace content and
// outputs it trimmed.
func RequiredStringTrimmed(label string, override ...messages.Override) *validator.Schema[string] {
	t := newText(label, DefaultLabel, override)
	return validator.String(t.base(messages.KeyString)...).
		Refine(notBlank, t.msg(messages.KeyEmpty, nil)).
		Transform(sanitizer.NormalizeText)
}

// OptionalStringTrimmed accepts any string or an absent value and outputs it trimmed.
func OptionalStringTrimmed(label string, override ...messages.Override) *validator.Schema[string] {
	return OptionalString(label, override...).Transform(sanitizer.NormalizeText)
}

// MaxLengthString accepts an optional string of at most max characters and
// outputs it trimmed. The length is checked on the value as submitted.
func MaxLengthString(max int, label string, override ...messages.Override) *validator.Schema[string] {
	t := newText(label, DefaultLabel, override)
	return validator.MaxLen(OptionalString(label, override...), max, t.msg(messages.KeyMaxLength, map[string]any{"max": max})).
		Transform(sanitizer.NormalizeText)
}

// Slug accepts lowercase words separated by single hyphens. Surrounding
// whitespace and upper case are tolerated and normalized away.
func Slug(label string, override ...messages.Override) *validator.Schema[string] {
	t := newText(label, DefaultLabel, override)
	return validator.String(t.base(messages.KeyString)...).
		Refine(notBlank, t.msg(messages.KeyEmpty, nil)).
		Refine(func(v string) bool { return slugRegex.MatchString(sanitizer.TrimToLower(v)) }, t.msg(messages.KeySlug, nil)).
		Transform(sanitizer.TrimToLower)
}

// SlugFrom accepts any text that contains at least one letter or digit and
// outputs it converted to a slug ("Hello, World!" becomes "hello-world").
func SlugFrom(label string, override ...messages.Override) *validator.Schema[string] {
	t := newText(label, DefaultLabel, override)
	return validator.String(t.base(messages.KeyString)...).
		Refine(notBlank, t.msg(messages.KeyEmpty, nil)).
		Refine(func(v string) bool { return sanitizer.ToSlug(v) != "" }, t.msg(messages.KeySlug, nil)).
		Transform(sanitizer.ToSlug)
}

// IsEmail reports whether s has the shape local@domain.tld.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// Email accepts an email address and outputs it normalized (trimmed,
// lowercased, repeated dots in the local part collapsed).
func Email(label string, override ...messages.Override) *validator.Schema[string] {
	t := newText(label, DefaultLabel, override)
	return validator.String(t.base(messages.KeyString)...).
		Refine(notBlank, t.msg(messages.KeyEmpty, nil)).
		Refine(func(v string) bool { return IsEmail(strings.TrimSpace(v)) }, t.msg(messages.KeyEmail, nil)).
		Transform(sanitizer.NormalizeEmail)
}
