package fragments

import (
	"regexp"

	"github.com/dmitrymomot/fieldkit/pkg/messages"
	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// IndiaCountryCode is stripped from mobile numbers before validation.
const IndiaCountryCode = "+91"

var (
	// Any ten digits. Used by the region-neutral EmailOrMobile.
	anyMobileRegex = regexp.MustCompile(`^[0-9]{10}$`)

	// Indian mobile numbers start with 6-9.
	indiaMobileRegex = regexp.MustCompile(`^[6-9][0-9]{9}$`)
)

// normalizeMobile drops spaces, hyphens and a leading IndiaCountryCode.
var normalizeMobile = sanitizer.Compose(
	sanitizer.StripSeparators,
	func(v string) string { return sanitizer.StripCountryCode(v, IndiaCountryCode) },
)

// Contact types returned by EmailOrMobileNormalized.
const (
	ContactEmail  = "email"
	ContactMobile = "mobile"
)

// Contact is the output of EmailOrMobileNormalized.
type Contact struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// EmailOrMobile accepts either an email address or exactly ten digits.
// The value is returned unchanged. Empty text gets the same message as any
// other mismatch.
func EmailOrMobile(label string, override ...messages.Override) *validator.Schema[string] {
	t := newText(label, DefaultLabel, override)
	return validator.String(t.base(messages.KeyString)...).
		Refine(func(v string) bool {
			return IsEmail(v) || anyMobileRegex.MatchString(v)
		}, t.msg(messages.KeyEmailOrMobile, nil))
}

// EmailOrMobileNormalized accepts an email address (trimmed and lower-cased)
// or an Indian mobile number (first digit 6-9) written with any spacing,
// hyphens or +91 prefix. Separators are only stripped on the mobile branch,
// so hyphens inside an email address are kept. The output is a Contact, not
// a string.
func EmailOrMobileNormalized(label string, override ...messages.Override) *validator.Schema[Contact] {
	t := newText(label, DefaultLabel, override)

	return validator.MapCheck(validator.String(t.base(messages.KeyString)...), func(v string) (Contact, bool) {
		if email := sanitizer.TrimToLower(v); IsEmail(email) {
			return Contact{Type: ContactEmail, Value: email}, true
		}
		if mobile := normalizeMobile(v); indiaMobileRegex.MatchString(mobile) {
			return Contact{Type: ContactMobile, Value: mobile}, true
		}
		return Contact{}, false
	}, t.msg(messages.KeyEmailOrMobile, nil))
}

// Mobile accepts an Indian mobile number written with any spacing, hyphens
// or +91 prefix and outputs the bare ten digits.
func Mobile(label string, override ...messages.Override) *validator.Schema[string] {
	if label == "" {
		label = "Mobile number"
	}
	t := newText(label, DefaultLabel, override)
	return validator.String(t.base(messages.KeyString)...).
		Refine(notBlank, t.msg(messages.KeyEmpty, nil)).
		Refine(func(v string) bool {
			return indiaMobileRegex.MatchString(normalizeMobile(v))
		}, t.msg(messages.KeyMobile, nil)).
		Transform(normalizeMobile)
}
