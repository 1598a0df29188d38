package messages

import (
	"fmt"
	"maps"
	"strings"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Key identifies one catalog entry. Entries may contain {name} placeholders
// filled from the values attached to the failure.
type Key string

const (
	KeyRequired Key = "required"

	KeyString  Key = "string"
	KeyNumber  Key = "number"
	KeyInteger Key = "integer"
	KeyBoolean Key = "boolean"
	KeyObject  Key = "object"
	KeyArray   Key = "array"
	KeyFinite  Key = "finite"

	KeyEmpty         Key = "empty"
	KeyUUID          Key = "uuid"
	KeyPositive      Key = "positive"
	KeyNonNegative   Key = "non_negative"
	KeyMaxValue      Key = "max_value"
	KeyMaxLength     Key = "max_length"
	KeyDate          Key = "date"
	KeyDateAfter     Key = "date_after"
	KeyDateOrder     Key = "date_order"
	KeyEnum          Key = "enum"
	KeyEmail         Key = "email"
	KeyMobile        Key = "mobile"
	KeyEmailOrMobile Key = "email_or_mobile"
	KeySlug          Key = "slug"
	KeyPAN           Key = "pan"
	KeyGSTIN         Key = "gstin"
	KeyDomain        Key = "domain"
	KeyURL           Key = "url"
	KeyURLScheme     Key = "url_scheme"
	KeyURLExtension  Key = "url_extension"
	KeyCurrency      Key = "currency"
	KeyNonEmptyArray Key = "non_empty_array"
	KeyUnique        Key = "unique"
	KeySortKey       Key = "sort_key"
)

// TranslationPrefix namespaces catalog keys in ValidationError.TranslationKey.
const TranslationPrefix = "validation."

var classes = map[Key]FailureClass{
	KeyRequired: Required,
	KeyString:   InvalidType,
	KeyNumber:   InvalidType,
	KeyInteger:  InvalidType,
	KeyBoolean:  InvalidType,
	KeyObject:   InvalidType,
	KeyArray:    InvalidType,
	KeyFinite:   InvalidType,
}

// Class returns the failure class the key belongs to.
func (k Key) Class() FailureClass {
	if c, ok := classes[k]; ok {
		return c
	}
	return Validation
}

// TranslationKey returns the key as stored in ValidationError.TranslationKey.
func (k Key) TranslationKey() string {
	return TranslationPrefix + string(k)
}

var defaults = map[Key]string{
	KeyRequired: "is required",

	KeyString:  "must be a string",
	KeyNumber:  "must be a number",
	KeyInteger: "must be a whole number",
	KeyBoolean: "must be a boolean",
	KeyObject:  "must be an object",
	KeyArray:   "must be a list",
	KeyFinite:  "must be a finite number",

	KeyEmpty:         "cannot be empty",
	KeyUUID:          "must be a valid UUID",
	KeyPositive:      "must be greater than 0",
	KeyNonNegative:   "cannot be negative",
	KeyMaxValue:      "must be at most {max}",
	KeyMaxLength:     "must be at most {max} characters",
	KeyDate:          "must be a valid date",
	KeyDateAfter:     "must be after {after}",
	KeyDateOrder:     "must not be before {start}",
	KeyEnum:          "must be one of: {options}",
	KeyEmail:         "must be a valid email address",
	KeyMobile:        "must be a valid 10-digit mobile number",
	KeyEmailOrMobile: "must be a valid email address or 10-digit mobile number",
	KeySlug:          "must contain only lowercase letters, numbers and hyphens",
	KeyPAN:           "must be a valid PAN (e.g. ABCDE1234F)",
	KeyGSTIN:         "must be a valid GSTIN",
	KeyDomain:        "must be a valid domain name",
	KeyURL:           "must be a valid URL",
	KeyURLScheme:     "must be a URL with scheme: {schemes}",
	KeyURLExtension:  "must be a URL ending in: {extensions}",
	KeyCurrency:      "must be a valid ISO 4217 currency code",
	KeyNonEmptyArray: "must contain at least one item",
	KeyUnique:        "must not contain duplicate {key} values",
	KeySortKey:       "can only sort by: {keys}",
}

// Catalog maps keys to default message suffixes.
// The zero value behaves like Default.
type Catalog struct {
	entries map[Key]string
}

// Default is the built-in English catalog.
var Default = Catalog{entries: defaults}

// NewCatalog returns a catalog with entries layered over Default.
func NewCatalog(entries map[Key]string) Catalog {
	merged := maps.Clone(defaults)
	for k, v := range entries {
		if v != "" {
			merged[k] = v
		}
	}
	return Catalog{entries: merged}
}

// Entries returns a copy of every entry.
func (c Catalog) Entries() map[Key]string {
	if c.entries == nil {
		return maps.Clone(defaults)
	}
	return maps.Clone(c.entries)
}

// Suffix returns the entry for key with placeholders filled from values.
// Missing entries fall back to Default, then to the class default.
func (c Catalog) Suffix(key Key, values map[string]any) string {
	text, ok := c.entries[key]
	if !ok {
		text, ok = defaults[key]
	}
	if !ok {
		return key.Class().suffix()
	}
	if len(values) == 0 || !strings.Contains(text, "{") {
		return text
	}

	pairs := make([]string, 0, len(values)*2)
	for name, v := range values {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Message resolves the text for key, honoring the override.
func (c Catalog) Message(label string, key Key, o Override, values map[string]any) string {
	return Resolve(label, key.Class(), o, c.Suffix(key, values))
}

// Localize re-renders every error whose text came from a catalog default,
// i.e. whose TranslationKey carries TranslationPrefix. Errors with custom
// text have no TranslationKey and are returned unchanged.
func (c Catalog) Localize(errs validator.ValidationErrors) validator.ValidationErrors {
	if errs == nil {
		return nil
	}
	out := make(validator.ValidationErrors, len(errs))
	for i, e := range errs {
		out[i] = e
		name, ok := strings.CutPrefix(e.TranslationKey, TranslationPrefix)
		if !ok {
			continue
		}
		label, _ := e.TranslationValues["field"].(string)
		out[i].Message = Resolve(label, Key(name).Class(), nil, c.Suffix(Key(name), e.TranslationValues))
	}
	return out
}

// Message resolves key against the Default catalog.
func Message(label string, key Key, o Override, values map[string]any) string {
	return Default.Message(label, key, o, values)
}
