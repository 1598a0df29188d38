package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is matched by every ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is absent.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidType is returned when a value has the wrong primitive type.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidValue is returned when a value fails a semantic or format check.
	ErrInvalidValue = errors.New("invalid value")
)

// Failure codes stored in ValidationError.Code.
const (
	CodeRequired    = "required"
	CodeInvalidType = "invalid_type"
	CodeValidation  = "validation"
)

func codeError(code string) error {
	switch code {
	case CodeRequired:
		return ErrFieldRequired
	case CodeInvalidType:
		return ErrInvalidType
	default:
		return ErrInvalidValue
	}
}
