// Package sanitizer provides the normalizers fieldkit fragments apply after a
// value has passed validation: trimming, Unicode-aware case mapping, slug
// and identifier cleanup, email and phone normalization, and money rounding.
//
// All helpers are pure functions of their input and safe for concurrent use.
// They never fail; input that cannot be normalized is returned in the most
// sensible partially cleaned form. Apply and Compose chain helpers into a
// single pipeline:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.ToLower,
//	)
//
//	clean("  Mixed CASE  ") // "mixed case"
package sanitizer
