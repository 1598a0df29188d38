package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Email local part cleanup
	dotRegex = regexp.MustCompile(`\.+`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Formatting characters people type into phone numbers and identifiers
	separatorRegex = regexp.MustCompile(`[\s\-]+`)

	// Anything a URL slug cannot contain
	nonSlugRegex = regexp.MustCompile(`[^a-z0-9]+`)
)
