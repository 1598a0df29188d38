package messages

// FailureClass is the category of a validation failure.
type FailureClass int

const (
	// Required: the value is absent where one is mandatory.
	Required FailureClass = iota + 1
	// InvalidType: the value is present but of the wrong primitive type.
	InvalidType
	// Validation: the value has the right type but fails a format or semantic check.
	Validation
)

// String returns the failure code used by the validation runtime.
func (c FailureClass) String() string {
	switch c {
	case Required:
		return "required"
	case InvalidType:
		return "invalid_type"
	case Validation:
		return "validation"
	default:
		return "unknown"
	}
}

// suffix is the last-resort text for a class with no catalog entry.
func (c FailureClass) suffix() string {
	switch c {
	case Required:
		return "is required"
	case InvalidType:
		return "has an invalid type"
	default:
		return "is invalid"
	}
}
