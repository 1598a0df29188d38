// Package messages decides which text is shown for each validation failure.
//
// Every failure belongs to a FailureClass (Required, InvalidType, Validation).
// The default text is "<label> <suffix>", where the suffix comes from a
// Catalog entry such as "is required" or "must be a string". Callers can
// replace it with an Override:
//
//	messages.Uniform("Please enter your email")                 // every class
//	messages.PerClass{Validation: "That email looks wrong"}     // one class
//
// Resolve is a pure function and never returns an empty string.
//
// # Catalogs
//
// Default holds the built-in English suffixes. LoadCatalog reads a YAML
// document of key: suffix pairs layered over Default, and Catalog.Localize
// re-renders ValidationErrors produced with default text, leaving
// caller-supplied overrides alone.
package messages
