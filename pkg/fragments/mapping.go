package fragments

import (
	"github.com/dmitrymomot/fieldkit/pkg/messages"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// RecordOf accepts a string-keyed map whose values all pass value.
// Absent and non-map input are reported with label.
func RecordOf[V any](value *validator.Schema[V], label string, override ...messages.Override) *validator.Schema[map[string]V] {
	t := newText(label, DefaultLabel, override)
	return validator.Record(value, t.base(messages.KeyObject)...)
}

// OpenMapping accepts any string-keyed map. Values are passed through
// unchanged, null included.
func OpenMapping(label string, override ...messages.Override) *validator.Schema[map[string]any] {
	return RecordOf(validator.Optional(validator.Any()), label, override...)
}
