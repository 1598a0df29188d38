package fragments

import (
	"net/url"
	"path"
	"slices"
	"strings"

	"github.com/dmitrymomot/fieldkit/pkg/messages"
	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

func parseURL(v string) (*url.URL, bool) {
	u, err := url.ParseRequestURI(strings.TrimSpace(v))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	return u, true
}

// IsURL reports whether s is an absolute URL with a scheme and host.
func IsURL(s string) bool {
	_, ok := parseURL(s)
	return ok
}

// URL accepts an absolute URL and outputs it trimmed.
func URL(label string, override ...messages.Override) *validator.Schema[string] {
	t := newText(label, DefaultLabel, override)
	return validator.String(t.base(messages.KeyString)...).
		Refine(notBlank, t.msg(messages.KeyEmpty, nil)).
		Refine(IsURL, t.msg(messages.KeyURL, nil)).
		Transform(sanitizer.Trim)
}

// OptionalURL is URL for optional fields.
func OptionalURL(label string, override ...messages.Override) *validator.Schema[string] {
	t := newText(label, DefaultLabel, override)
	return validator.Optional(validator.String(t.base(messages.KeyString)...)).
		Refine(IsURL, t.msg(messages.KeyURL, nil)).
		Transform(sanitizer.Trim)
}

// URLWithScheme accepts an absolute URL whose scheme is one of schemes
// (compared case-insensitively).
func URLWithScheme(schemes []string, label string, override ...messages.Override) *validator.Schema[string] {
	allowed := make([]string, len(schemes))
	for i, s := range schemes {
		allowed[i] = strings.ToLower(s)
	}
	t := newText(label, DefaultLabel, override)
	return URL(label, override...).
		Refine(func(v string) bool {
			u, _ := parseURL(v)
			return slices.Contains(allowed, strings.ToLower(u.Scheme))
		}, t.msg(messages.KeyURLScheme, map[string]any{"schemes": strings.Join(allowed, ", ")}))
}

// HTTPSURL accepts only https URLs.
func HTTPSURL(label string, override ...messages.Override) *validator.Schema[string] {
	return URLWithScheme([]string{"https"}, label, override...)
}

// URLWithExtension accepts an absolute URL whose path ends in one of
// extensions, e.g. ".png". The leading dot is optional and matching is
// case-insensitive; the query string is ignored.
func URLWithExtension(extensions []string, label string, override ...messages.Override) *validator.Schema[string] {
	allowed := make([]string, len(extensions))
	for i, e := range extensions {
		allowed[i] = "." + strings.TrimPrefix(strings.ToLower(e), ".")
	}
	t := newText(label, DefaultLabel, override)
	return URL(label, override...).
		Refine(func(v string) bool {
			u, _ := parseURL(v)
			return slices.Contains(allowed, strings.ToLower(path.Ext(u.Path)))
		}, t.msg(messages.KeyURLExtension, map[string]any{"extensions": strings.Join(allowed, ", ")}))
}

// ImageURL accepts URLs of common web image formats.
func ImageURL(label string, override ...messages.Override) *validator.Schema[string] {
	return URLWithExtension([]string{"jpg", "jpeg", "png", "gif", "webp", "svg", "avif"}, label, override...)
}
