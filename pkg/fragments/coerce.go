package fragments

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/fieldkit/pkg/messages"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Decimal notation only: no hex, no "Inf", no "NaN".
var numericRegex = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// CoerceNumber turns numeric text into a float64 and blank text into nil
// (absent). Anything else is returned unchanged so the number type check
// reports it.
func CoerceNumber(in any) any {
	s, ok := in.(string)
	if !ok {
		return in
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !numericRegex.MatchString(s) {
		return in
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return in
	}
	return f
}

// CoerceBool maps common textual and numeric spellings to a boolean:
// "true", "1", "yes", "on" and the number 1 are true; "false", "0", "no",
// "off" and the number 0 are false; blank text is absent. Anything else is
// returned unchanged so the boolean type check reports it.
func CoerceBool(in any) any {
	switch v := in.(type) {
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "":
			return nil
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	case int:
		switch v {
		case 1:
			return true
		case 0:
			return false
		}
	case float64:
		switch v {
		case 1:
			return true
		case 0:
			return false
		}
	}
	return in
}

// OptionalNumberCoerce is OptionalNumber that also accepts numeric text.
func OptionalNumberCoerce(label string, override ...messages.Override) *validator.Schema[float64] {
	return validator.Preprocess(CoerceNumber, OptionalNumber(label, override...))
}

// NumberCoerce is RequiredNumber that also accepts numeric text.
func NumberCoerce(label string, override ...messages.Override) *validator.Schema[float64] {
	return validator.Preprocess(CoerceNumber, RequiredNumber(label, override...))
}

// BooleanCoerce is Boolean that also accepts the spellings handled by CoerceBool.
func BooleanCoerce(label string, override ...messages.Override) *validator.Schema[bool] {
	return validator.Preprocess(CoerceBool, Boolean(label, override...))
}

// OptionalBooleanCoerce is OptionalBoolean with CoerceBool applied.
func OptionalBooleanCoerce(label string, override ...messages.Override) *validator.Schema[bool] {
	return validator.Preprocess(CoerceBool, OptionalBoolean(label, override...))
}

// PositiveIntCoerce accepts a whole number greater than zero, written as a
// number or as numeric text.
func PositiveIntCoerce(label string, override ...messages.Override) *validator.Schema[int] {
	t := newText(label, DefaultLabel, override)
	return validator.Preprocess(CoerceNumber,
		validator.Int(validator.WithRequired(t.required()), validator.WithInvalidType(t.msg(messages.KeyInteger, nil))).
			Refine(func(v int) bool { return v > 0 }, t.msg(messages.KeyPositive, nil)),
	)
}

// BoundedIntCoerce is PositiveIntCoerce with an inclusive upper bound.
func BoundedIntCoerce(max int, label string, override ...messages.Override) *validator.Schema[int] {
	t := newText(label, DefaultLabel, override)
	return PositiveIntCoerce(label, override...).
		Refine(func(v int) bool { return v <= max }, t.msg(messages.KeyMaxValue, map[string]any{"max": max}))
}
