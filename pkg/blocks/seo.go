package blocks

import (
	"maps"

	"github.com/dmitrymomot/fieldkit/pkg/fragments"
	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
)

// Length limits of StrictSEOFields.
const (
	SEOTitleMaxLength       = 60
	SEODescriptionMaxLength = 160
)

// Title and Description are ready-made fields for content forms.
var (
	Title       = fragments.RequiredStringTrimmed("Title")
	Description = fragments.OptionalStringTrimmed("Description")
)

var (
	seo = Block{
		"seo_title":       fragments.OptionalString("SEO title"),
		"seo_description": fragments.OptionalString("SEO description"),
		"seo_image":       fragments.OptionalString("SEO image"),
	}

	strictSEO = Block{
		"seo_title":       fragments.MaxLengthString(SEOTitleMaxLength, "SEO title").Transform(sanitizer.RemoveExtraWhitespace),
		"seo_description": fragments.MaxLengthString(SEODescriptionMaxLength, "SEO description").Transform(sanitizer.RemoveExtraWhitespace),
		"seo_image":       fragments.OptionalURL("SEO image"),
	}
)

// SEOFields returns optional seo_title, seo_description and seo_image strings.
func SEOFields() Block {
	return maps.Clone(seo)
}

// StrictSEOFields is SEOFields with length limits on the title (60) and
// description (160) and a URL check on the image. Title and description are
// output with whitespace runs collapsed.
func StrictSEOFields() Block {
	return maps.Clone(strictSEO)
}
