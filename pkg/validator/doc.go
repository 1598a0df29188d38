// Package validator is the validation runtime behind fieldkit fragments:
// immutable, generic Schema values that parse untrusted input into typed
// output and report failures as ValidationErrors.
//
// A Schema is built once and never modified. Every method and combinator
// (Refine, Transform, Optional, Default, Preprocess, Map, Pipe) returns a new
// Schema, so schemas can be shared freely between goroutines and reused as
// building blocks of larger Object schemas.
//
// # Execution model
//
// Each parse runs the same stages in order:
//
//  1. preprocess functions on the raw input (coercion);
//  2. absence handling: a missing key or nil is absent; required schemas
//     report CodeRequired, optional ones pass it through, defaulted ones
//     substitute their default;
//  3. base decode, reporting CodeInvalidType;
//  4. checks in declaration order, stopping at the first failure;
//  5. transforms in declaration order.
//
// Checks always observe the value before the transforms of the same stage.
// Map, MapCheck and Pipe start a new stage whose checks see the converted
// value.
//
// # Usage
//
//	user := validator.Object(validator.Shape{
//	    "email": validator.String().Refine(isEmail, validator.Message{Text: "Email is invalid"}),
//	    "age":   validator.Optional(validator.Int()),
//	})
//
//	out, err := user.Parse(input)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("email"), verrs.Fields(), ...
//	}
//
// # Error Handling
//
// Object and Array collect the failures of every field and element in one
// pass. ValidationErrors implements Is, so errors.Is(err, ErrValidationFailed)
// detects any validation failure and errors.Is(err, ErrFieldRequired) detects
// a missing value. Each ValidationError carries a TranslationKey and
// TranslationValues for later localization.
package validator
