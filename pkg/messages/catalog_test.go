package messages_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/messages"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

func TestKeyClass(t *testing.T) {
	t.Parallel()

	assert.Equal(t, messages.Required, messages.KeyRequired.Class())
	assert.Equal(t, messages.InvalidType, messages.KeyNumber.Class())
	assert.Equal(t, messages.InvalidType, messages.KeyFinite.Class())
	assert.Equal(t, messages.Validation, messages.KeyEmail.Class())
	assert.Equal(t, messages.Validation, messages.Key("custom").Class())
	assert.Equal(t, "validation.max_length", messages.KeyMaxLength.TranslationKey())
}

func TestCatalogSuffix(t *testing.T) {
	t.Parallel()

	c := messages.Default
	assert.Equal(t, "must be at most 5 characters", c.Suffix(messages.KeyMaxLength, map[string]any{"max": 5}))
	assert.Equal(t, "must be one of: a, b", c.Suffix(messages.KeyEnum, map[string]any{"options": "a, b"}))
	assert.Equal(t, "is required", c.Suffix(messages.KeyRequired, map[string]any{"unused": 1}))
	assert.Equal(t, "is invalid", c.Suffix(messages.Key("custom"), nil))

	var zero messages.Catalog
	assert.Equal(t, "must be a valid email address", zero.Suffix(messages.KeyEmail, nil))
}

func TestMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Role must be one of: a, b",
		messages.Message("Role", messages.KeyEnum, nil, map[string]any{"options": "a, b"}))
	assert.Equal(t, "Pick one",
		messages.Message("Role", messages.KeyEnum, messages.Uniform("Pick one"), map[string]any{"options": "a, b"}))
	assert.Equal(t, "This field is required", messages.Message("", messages.KeyRequired, nil, nil))
}

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	c := messages.NewCatalog(map[messages.Key]string{
		messages.KeyRequired: "est obligatoire",
		messages.KeyEmail:    "",
	})
	assert.Equal(t, "Nom est obligatoire", c.Message("Nom", messages.KeyRequired, nil, nil))
	assert.Equal(t, "must be a valid email address", c.Suffix(messages.KeyEmail, nil))

	entries := c.Entries()
	entries[messages.KeyRequired] = "changed"
	assert.Equal(t, "est obligatoire", c.Suffix(messages.KeyRequired, nil))
	assert.Equal(t, "is required", messages.Default.Suffix(messages.KeyRequired, nil))
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		key     messages.Key
		want    string
		wantErr bool
	}{
		{name: "flat", doc: "required: est obligatoire\n", key: messages.KeyRequired, want: "est obligatoire"},
		{name: "nested", doc: "validation:\n  max_length: \"au plus {max} caractères\"\n", key: messages.KeyMaxLength, want: "au plus {max} caractères"},
		{name: "untouched keys keep defaults", doc: "required: est obligatoire\n", key: messages.KeyEmail, want: "must be a valid email address"},
		{name: "empty", doc: "", wantErr: true},
		{name: "not a map", doc: "- a\n- b\n", wantErr: true},
		{name: "non string entry", doc: "required:\n  nested: true\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := messages.LoadCatalog([]byte(tt.doc))
			if tt.wantErr {
				require.ErrorIs(t, err, messages.ErrInvalidCatalog)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Entries()[tt.key])
		})
	}
}

func TestLoadCatalogFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "fr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("validation:\n  required: est obligatoire\n"), 0o600))

	c, err := messages.LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Email est obligatoire", c.Message("Email", messages.KeyRequired, nil, nil))

	_, err = messages.LoadCatalogFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, messages.ErrReadCatalog)
}

func TestLocalize(t *testing.T) {
	t.Parallel()

	fr := messages.NewCatalog(map[messages.Key]string{
		messages.KeyRequired:  "est obligatoire",
		messages.KeyMaxLength: "au plus {max} caractères",
	})

	errs := validator.ValidationErrors{
		{
			Field:             "name",
			Code:              validator.CodeRequired,
			Message:           "Name is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": "Name"},
		},
		{
			Field:             "bio",
			Code:              validator.CodeValidation,
			Message:           "Bio must be at most 10 characters",
			TranslationKey:    "validation.max_length",
			TranslationValues: map[string]any{"field": "Bio", "max": 10},
		},
		{
			Field:   "email",
			Code:    validator.CodeValidation,
			Message: "Use your work email",
		},
	}

	out := fr.Localize(errs)
	require.Len(t, out, 3)
	assert.Equal(t, "Name est obligatoire", out[0].Message)
	assert.Equal(t, "Bio au plus 10 caractères", out[1].Message)
	assert.Equal(t, "Use your work email", out[2].Message)
	assert.Equal(t, "Name is required", errs[0].Message, "input is not modified")
	assert.Nil(t, fr.Localize(nil))
}
