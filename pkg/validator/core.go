package validator

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Code              string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Is reports whether target is the sentinel matching the failure code.
func (e ValidationError) Is(target error) bool {
	return target == ErrValidationFailed || target == codeError(e.Code)
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) true for any collection, and
// errors.Is(err, ErrFieldRequired) true when at least one error has that code.
func (ve ValidationErrors) Is(target error) bool {
	if target == ErrValidationFailed {
		return true
	}
	for _, err := range ve {
		if err.Is(target) {
			return true
		}
	}
	return false
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// Message describes the text attached to one failure. Key and Values are
// carried into the emitted ValidationError for later translation.
type Message struct {
	Text   string
	Key    string
	Values map[string]any
}

var defaultText = map[string]string{
	CodeRequired:    "field is required",
	CodeInvalidType: "invalid type",
	CodeValidation:  "invalid value",
}

func failure(path, code string, m Message) ValidationErrors {
	text := m.Text
	if text == "" {
		text = defaultText[code]
	}
	return ValidationErrors{{
		Field:             path,
		Code:              code,
		Message:           text,
		TranslationKey:    m.Key,
		TranslationValues: maps.Clone(m.Values),
	}}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
