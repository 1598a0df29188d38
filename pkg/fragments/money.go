package fragments

import (
	"math"

	"github.com/dmitrymomot/fieldkit/pkg/messages"
	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Money accepts a non-negative amount given as a number or numeric text and
// outputs it rounded to two decimal places, half away from zero
// ("12.345" becomes 12.35). Blank text counts as absent; other text and
// non-finite numbers are type failures.
func Money(label string, override ...messages.Override) *validator.Schema[float64] {
	if label == "" {
		label = "Amount"
	}
	t := newText(label, DefaultLabel, override)
	return validator.Preprocess(CoerceNumber, validator.Number(t.base(messages.KeyNumber)...)).
		Check(validator.CodeInvalidType, func(v float64) bool { return !math.IsInf(v, 0) }, t.msg(messages.KeyFinite, nil)).
		Refine(func(v float64) bool { return v >= 0 }, t.msg(messages.KeyNonNegative, nil)).
		Transform(sanitizer.RoundMoney)
}

// OptionalMoney is Money for optional fields.
func OptionalMoney(label string, override ...messages.Override) *validator.Schema[float64] {
	return validator.Optional(Money(label, override...))
}
