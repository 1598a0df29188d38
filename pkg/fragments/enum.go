package fragments

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/fieldkit/pkg/messages"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Enum accepts exactly one of options. Every failure (absent, not a string,
// not a member) reports the same message, by default
// "<label> must be one of: a, b". Panics when options is empty.
func Enum(options []string, label string, override ...messages.Override) *validator.Schema[string] {
	if len(options) == 0 {
		panic("fragments: Enum requires at least one option")
	}
	t := newText(label, DefaultLabel, override)
	opts := t.unified(messages.KeyEnum, map[string]any{"options": strings.Join(options, ", ")})
	return validator.Enum(slices.Clone(options), opts...)
}

// Labeled is the output of EnumWithLabels.
type Labeled struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// EnumWithLabels is Enum whose output carries a display label looked up in
// labels. A missing entry uses the value itself.
func EnumWithLabels(options []string, labels map[string]string, label string, override ...messages.Override) *validator.Schema[Labeled] {
	lookup := make(map[string]string, len(labels))
	for k, v := range labels {
		lookup[k] = v
	}
	return validator.Map(Enum(options, label, override...), func(v string) Labeled {
		display, ok := lookup[v]
		if !ok {
			display = v
		}
		return Labeled{Value: v, Label: display}
	})
}
