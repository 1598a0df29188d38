package fragments_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/fragments"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

type stringCase struct {
	input   any
	want    string
	message string
}

func runStringCases(t *testing.T, s *fragments.Schema[string], cases []stringCase) {
	t.Helper()
	for _, tc := range cases {
		out, err := s.Parse(tc.input)
		if tc.message != "" {
			assert.Equal(t, tc.message, only(t, err).Message, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, out, "input %q", tc.input)
	}
}

func TestRequiredStringTrimmed(t *testing.T) {
	t.Parallel()

	runStringCases(t, fragments.RequiredStringTrimmed("Title"), []stringCase{
		{input: "  Hello  ", want: "Hello"},
		{input: "Café", want: "Café"},
		{input: "   ", message: "Title cannot be empty"},
		{input: "", message: "Title cannot be empty"},
	})
}

func TestMaxLengthString(t *testing.T) {
	t.Parallel()

	runStringCases(t, fragments.MaxLengthString(5, "Code"), []stringCase{
		{input: "héllo", want: "héllo"},
		{input: " abc ", want: "abc"},
		{input: "abcdef", message: "Code must be at most 5 characters"},
		{input: "  abcd  ", message: "Code must be at most 5 characters"},
	})
}

func TestSlug(t *testing.T) {
	t.Parallel()

	runStringCases(t, fragments.Slug("Slug"), []stringCase{
		{input: "hello-world", want: "hello-world"},
		{input: " Hello-World ", want: "hello-world"},
		{input: "post-2024", want: "post-2024"},
		{input: "hello world", message: "Slug must contain only lowercase letters, numbers and hyphens"},
		{input: "hello--world", message: "Slug must contain only lowercase letters, numbers and hyphens"},
		{input: "-hello", message: "Slug must contain only lowercase letters, numbers and hyphens"},
		{input: " ", message: "Slug cannot be empty"},
	})

	runStringCases(t, fragments.SlugFrom("Slug"), []stringCase{
		{input: "Hello, World!", want: "hello-world"},
		{input: "Crème Brûlée", want: "creme-brulee"},
		{input: "!!!", message: "Slug must contain only lowercase letters, numbers and hyphens"},
	})
}

func TestEmail(t *testing.T) {
	t.Parallel()

	runStringCases(t, fragments.Email("Email"), []stringCase{
		{input: " John..Doe@Example.COM ", want: "john.doe@example.com"},
		{input: "a@b.co", want: "a@b.co"},
		{input: "a@b", message: "Email must be a valid email address"},
		{input: "a b@c.io", message: "Email must be a valid email address"},
		{input: "", message: "Email cannot be empty"},
	})
}

func TestEmailOrMobile(t *testing.T) {
	t.Parallel()

	runStringCases(t, fragments.EmailOrMobile("Login"), []stringCase{
		{input: "user@example.com", want: "user@example.com"},
		{input: "0123456789", want: "0123456789"},
		{input: "12345", message: "Login must be a valid email address or 10-digit mobile number"},
		{input: "98765 43210", message: "Login must be a valid email address or 10-digit mobile number"},
		{input: "", message: "Login must be a valid email address or 10-digit mobile number"},
		{input: "   ", message: "Login must be a valid email address or 10-digit mobile number"},
	})
}

func TestEmailOrMobileNormalized(t *testing.T) {
	t.Parallel()

	s := fragments.EmailOrMobileNormalized("Login")

	tests := []struct {
		input any
		want  fragments.Contact
	}{
		{input: " +91 98765-43210 ", want: fragments.Contact{Type: fragments.ContactMobile, Value: "9876543210"}},
		{input: "6000000000", want: fragments.Contact{Type: fragments.ContactMobile, Value: "6000000000"}},
		{input: "A@B.com", want: fragments.Contact{Type: fragments.ContactEmail, Value: "a@b.com"}},
		{input: " First-Last@Example.com ", want: fragments.Contact{Type: fragments.ContactEmail, Value: "first-last@example.com"}},
		{input: "first-last@example.com", want: fragments.Contact{Type: fragments.ContactEmail, Value: "first-last@example.com"}},
	}
	for _, tt := range tests {
		out, err := s.Parse(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, out)
	}

	for _, input := range []string{"12345", "0123456789", "5876543210", "+1 9876543210", "", "  ", "first last@example.com"} {
		_, err := s.Parse(input)
		e := only(t, err)
		assert.Equal(t, validator.CodeValidation, e.Code, input)
		assert.Equal(t, "Login must be a valid email address or 10-digit mobile number", e.Message)
	}

	_, err := s.Parse(7)
	assert.Equal(t, validator.CodeInvalidType, only(t, err).Code)
}

func TestMobile(t *testing.T) {
	t.Parallel()

	runStringCases(t, fragments.Mobile(""), []stringCase{
		{input: "+91-98765-43210", want: "9876543210"},
		{input: "9876543210", want: "9876543210"},
		{input: "1234567890", message: "Mobile number must be a valid 10-digit mobile number"},
		{input: " ", message: "Mobile number cannot be empty"},
	})
}

func TestIdentifiers(t *testing.T) {
	t.Parallel()

	runStringCases(t, fragments.PAN(""), []stringCase{
		{input: " abcde1234f ", want: "ABCDE1234F"},
		{input: "ABCDE12345", message: "PAN must be a valid PAN (e.g. ABCDE1234F)"},
	})

	runStringCases(t, fragments.GSTIN(""), []stringCase{
		{input: "27aapfu0939f1zv", want: "27AAPFU0939F1ZV"},
		{input: "27AAPFU0939F1AV", message: "GSTIN must be a valid GSTIN"},
	})

	runStringCases(t, fragments.CurrencyCode(""), []stringCase{
		{input: "inr", want: "INR"},
		{input: " usd ", want: "USD"},
		{input: "XYZ", message: "Currency must be a valid ISO 4217 currency code"},
	})
}

func TestDomain(t *testing.T) {
	t.Parallel()

	runStringCases(t, fragments.Domain("Domain"), []stringCase{
		{input: "Example.COM.", want: "example.com"},
		{input: "sub.example.co.in", want: "sub.example.co.in"},
		{input: "bücher.de", want: "xn--bcher-kva.de"},
		{input: "localhost", message: "Domain must be a valid domain name"},
		{input: "-bad-.com", message: "Domain must be a valid domain name"},
		{input: "exa mple.com", message: "Domain must be a valid domain name"},
		{input: strings.Repeat("a", 64) + ".com", message: "Domain must be a valid domain name"},
	})
}

func TestURL(t *testing.T) {
	t.Parallel()

	runStringCases(t, fragments.URL("Website"), []stringCase{
		{input: " https://example.com/path?q=1 ", want: "https://example.com/path?q=1"},
		{input: "ftp://files.example.com", want: "ftp://files.example.com"},
		{input: "example.com", message: "Website must be a valid URL"},
		{input: "/relative", message: "Website must be a valid URL"},
		{input: " ", message: "Website cannot be empty"},
	})

	runStringCases(t, fragments.HTTPSURL("Callback"), []stringCase{
		{input: "HTTPS://example.com", want: "HTTPS://example.com"},
		{input: "http://example.com", message: "Callback must be a URL with scheme: https"},
	})

	runStringCases(t, fragments.ImageURL("Avatar"), []stringCase{
		{input: "https://cdn.example.com/me.PNG?v=2", want: "https://cdn.example.com/me.PNG?v=2"},
		{input: "https://cdn.example.com/me.pdf", message: "Avatar must be a URL ending in: .jpg, .jpeg, .png, .gif, .webp, .svg, .avif"},
	})

	runStringCases(t, fragments.URLWithExtension([]string{".PDF"}, "Invoice"), []stringCase{
		{input: "https://example.com/a.pdf", want: "https://example.com/a.pdf"},
		{input: "https://example.com/a", message: "Invoice must be a URL ending in: .pdf"},
	})
}
