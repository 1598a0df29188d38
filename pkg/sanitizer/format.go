package sanitizer

import "strings"

// NormalizeEmail prevents common email input errors but preserves original for invalid formats.
// Consolidates consecutive dots which can cause delivery issues with some email providers.
func NormalizeEmail(email string) string {
	email = TrimToLower(email)

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// StripCountryCode removes a leading international prefix such as "+91".
// The input is expected to be free of separators already.
func StripCountryCode(phone, code string) string {
	if code == "" {
		return phone
	}
	if !strings.HasPrefix(code, "+") {
		code = "+" + code
	}
	return strings.TrimPrefix(phone, code)
}

// NormalizeMobile strips separators and the country code, returning the
// bare subscriber number. Non-digit input is returned with only separators removed.
func NormalizeMobile(phone, code string) string {
	return Apply(phone,
		StripSeparators,
		func(s string) string { return StripCountryCode(s, code) },
	)
}

// NormalizeDomain trims, lowercases and drops a single trailing dot.
func NormalizeDomain(domain string) string {
	return strings.TrimSuffix(TrimToLower(domain), ".")
}
