package fragments

import (
	"regexp"

	"golang.org/x/net/idna"

	"github.com/dmitrymomot/fieldkit/pkg/messages"
	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

var (
	// Indian Permanent Account Number: five letters, four digits, one letter.
	panRegex = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

	// GSTIN: state code, PAN, entity number, "Z", checksum character.
	gstinRegex = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

	hostnameRegex = regexp.MustCompile(`^(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+(?:[a-z]{2,63}|xn--[a-z0-9-]{1,59})$`)

	currencyCodes = map[string]bool{
		"USD": true, "EUR": true, "GBP": true, "JPY": true, "AUD": true, "CAD": true,
		"CHF": true, "CNY": true, "SEK": true, "NZD": true, "MXN": true, "SGD": true,
		"HKD": true, "NOK": true, "KRW": true, "TRY": true, "INR": true, "BRL": true,
		"ZAR": true, "PLN": true, "CZK": true, "HUF": true, "ILS": true, "CLP": true,
		"PHP": true, "AED": true, "COP": true, "SAR": true, "MYR": true, "RON": true,
		"THB": true, "BGN": true, "ISK": true, "DKK": true, "IDR": true, "BDT": true,
		"LKR": true, "NPR": true, "PKR": true, "VND": true, "EGP": true, "NGN": true,
	}
)

func upperPattern(re *regexp.Regexp) func(string) bool {
	return func(v string) bool { return re.MatchString(sanitizer.TrimToUpper(v)) }
}

// PAN accepts an Indian Permanent Account Number in any letter case and
// outputs it trimmed and upper-cased.
func PAN(label string, override ...messages.Override) *validator.Schema[string] {
	if label == "" {
		label = "PAN"
	}
	t := newText(label, DefaultLabel, override)
	return validator.String(t.base(messages.KeyString)...).
		Refine(notBlank, t.msg(messages.KeyEmpty, nil)).
		Refine(upperPattern(panRegex), t.msg(messages.KeyPAN, nil)).
		Transform(sanitizer.TrimToUpper)
}

// GSTIN accepts an Indian GST identification number in any letter case and
// outputs it trimmed and upper-cased.
func GSTIN(label string, override ...messages.Override) *validator.Schema[string] {
	if label == "" {
		label = "GSTIN"
	}
	t := newText(label, DefaultLabel, override)
	return validator.String(t.base(messages.KeyString)...).
		Refine(notBlank, t.msg(messages.KeyEmpty, nil)).
		Refine(upperPattern(gstinRegex), t.msg(messages.KeyGSTIN, nil)).
		Transform(sanitizer.TrimToUpper)
}

func toASCIIDomain(v string) (string, bool) {
	ascii, err := idna.Lookup.ToASCII(sanitizer.NormalizeDomain(v))
	if err != nil {
		return "", false
	}
	return ascii, hostnameRegex.MatchString(ascii)
}

// IsDomain reports whether s is a fully qualified domain name. Internationalized
// names are accepted in Unicode or punycode form.
func IsDomain(s string) bool {
	_, ok := toASCIIDomain(s)
	return ok
}

// Domain accepts a domain name and outputs its lowercase ASCII (punycode) form
// without a trailing dot.
func Domain(label string, override ...messages.Override) *validator.Schema[string] {
	t := newText(label, DefaultLabel, override)
	return validator.String(t.base(messages.KeyString)...).
		Refine(notBlank, t.msg(messages.KeyEmpty, nil)).
		Refine(IsDomain, t.msg(messages.KeyDomain, nil)).
		Transform(func(v string) string {
			ascii, _ := toASCIIDomain(v)
			return ascii
		})
}

// CurrencyCode accepts an ISO 4217 code from the supported subset in any
// letter case and outputs it upper-cased.
func CurrencyCode(label string, override ...messages.Override) *validator.Schema[string] {
	if label == "" {
		label = "Currency"
	}
	t := newText(label, DefaultLabel, override)
	return validator.String(t.base(messages.KeyString)...).
		Refine(notBlank, t.msg(messages.KeyEmpty, nil)).
		Refine(func(v string) bool { return currencyCodes[sanitizer.TrimToUpper(v)] }, t.msg(messages.KeyCurrency, nil)).
		Transform(sanitizer.TrimToUpper)
}
