// Package fragments provides validation fragment factories: functions that
// take a human-readable field label and an optional message override and
// return a ready-to-use, immutable validator.Schema.
//
// # Messages
//
// Every fragment reports three classes of failure: a missing value
// (Required), a value of the wrong type (InvalidType) and a value that fails
// a format or semantic check (Validation). The default text is the label
// followed by a catalog suffix, e.g. "Email is required". An override
// replaces it:
//
//	fragments.RequiredString("Name")                                  // "Name is required"
//	fragments.RequiredString("Name", fragments.Uniform("Enter a name")) // every class
//	fragments.RequiredString("Name", fragments.PerClass{Validation: "Name cannot be blank"})
//
// An empty label selects the fragment's default ("This field", "ID" for
// UUIDs, "Date" for dates).
//
// # Composition
//
// Composite fragments validate first and normalize last: RequiredStringTrimmed
// checks for content, then trims; Money checks the sign, then rounds;
// EmailOrMobileNormalized strips formatting, validates, and returns a Contact
// instead of a string. Fragments compose with the runtime re-exported here:
//
//	signup := fragments.Object(fragments.Shape{
//	    "name":    fragments.RequiredStringTrimmed("Name"),
//	    "contact": fragments.EmailOrMobileNormalized("Email or mobile"),
//	    "role":    fragments.Enum([]string{"admin", "member"}, "Role"),
//	})
//	out, err := signup.Parse(input)
//
// Factories have no side effects and share no state between calls, so the
// returned schemas may be stored in package variables and used concurrently.
package fragments
