package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower lowercases using Unicode case mapping rather than per-rune ToLower,
// so characters like the final sigma are handled.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ToUpper uppercases using Unicode case mapping.
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return ToLower(strings.TrimSpace(s))
}

// TrimToUpper removes leading and trailing whitespace and converts to uppercase.
func TrimToUpper(s string) string {
	return ToUpper(strings.TrimSpace(s))
}

// NormalizeText trims and converts to NFC so visually equal input compares equal.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// RemoveExtraWhitespace collapses whitespace runs into single spaces and trims.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// StripSeparators removes whitespace and hyphens anywhere in the string.
func StripSeparators(s string) string {
	return separatorRegex.ReplaceAllString(s, "")
}

// Transliterate drops combining marks after canonical decomposition,
// turning "Crème brûlée" into "Creme brulee". Characters with no
// decomposition are kept as is.
func Transliterate(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// ToSlug converts free text into a lowercase ASCII slug with single hyphens
// between words. Returns an empty string when nothing usable remains.
func ToSlug(s string) string {
	s = ToLower(Transliterate(strings.TrimSpace(s)))
	return strings.Trim(nonSlugRegex.ReplaceAllString(s, "-"), "-")
}
