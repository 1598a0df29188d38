package fragments

import (
	"maps"

	"github.com/dmitrymomot/fieldkit/pkg/messages"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Default labels used when the caller passes an empty label.
const (
	DefaultLabel = messages.DefaultLabel
	IDLabel      = "ID"
	DateLabel    = "Date"
)

// text resolves the messages of one fragment.
type text struct {
	label    string
	override messages.Override
}

func newText(label, fallback string, override []messages.Override) text {
	if label == "" {
		label = fallback
	}
	t := text{label: label}
	if len(override) > 0 {
		t.override = override[0]
	}
	return t
}

// msg builds the runtime message for key. Text coming from the catalog keeps
// its translation key so it can be localized later; override text does not.
func (t text) msg(key messages.Key, values map[string]any) validator.Message {
	vals := maps.Clone(values)
	if vals == nil {
		vals = make(map[string]any, 1)
	}
	vals["field"] = t.label

	m := validator.Message{
		Text:   messages.Message(t.label, key, t.override, values),
		Values: vals,
	}
	if !messages.IsOverridden(t.override, key.Class()) {
		m.Key = key.TranslationKey()
	}
	return m
}

// unified resolves key as a Validation message and uses it for every class.
func (t text) unified(key messages.Key, values map[string]any) []validator.Option {
	m := t.msg(key, values)
	return []validator.Option{
		validator.WithRequired(m),
		validator.WithInvalidType(m),
		validator.WithValidation(m),
	}
}

func (t text) required() validator.Message {
	return t.msg(messages.KeyRequired, nil)
}

func (t text) base(typeKey messages.Key) []validator.Option {
	return []validator.Option{
		validator.WithRequired(t.required()),
		validator.WithInvalidType(t.msg(typeKey, nil)),
	}
}
