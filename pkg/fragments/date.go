package fragments

import (
	"time"

	"github.com/dmitrymomot/fieldkit/pkg/messages"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Accepted date grammar: ISO-8601 calendar dates, optionally followed by a
// time of day ("T" or a space as separator), with optional fractional
// seconds and zone. Bare years, week dates and locale formats are rejected.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDate parses s with the accepted date grammar. Values without a zone
// are interpreted as UTC.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsDate reports whether s is accepted by ParseDate.
func IsDate(s string) bool {
	_, ok := ParseDate(s)
	return ok
}

// DateString accepts a non-empty date string; the output is the input text.
// The default label is "Date".
func DateString(label string, override ...messages.Override) *validator.Schema[string] {
	t := newText(label, DateLabel, override)
	return validator.String(t.base(messages.KeyString)...).
		Refine(nonEmpty, t.msg(messages.KeyEmpty, nil)).
		Refine(IsDate, t.msg(messages.KeyDate, nil))
}

// OptionalDate is DateString for optional fields.
func OptionalDate(label string, override ...messages.Override) *validator.Schema[string] {
	t := newText(label, DateLabel, override)
	return validator.Optional(validator.String(t.base(messages.KeyString)...)).
		Refine(IsDate, t.msg(messages.KeyDate, nil))
}

// DateAfter accepts a date strictly later than threshold.
func DateAfter(threshold time.Time, label string, override ...messages.Override) *validator.Schema[string] {
	t := newText(label, DateLabel, override)
	values := map[string]any{"after": threshold.Format(time.DateOnly)}
	return DateString(label, override...).
		Refine(func(v string) bool {
			d, _ := ParseDate(v)
			return d.After(threshold)
		}, t.msg(messages.KeyDateAfter, values))
}

// DateRange accepts an object {start, end} whose end is not before its start.
// The ordering failure is reported on the "end" field.
func DateRange(startLabel, endLabel string, override ...messages.Override) *validator.Schema[map[string]any] {
	if startLabel == "" {
		startLabel = "Start date"
	}
	if endLabel == "" {
		endLabel = "End date"
	}
	t := newText(endLabel, DateLabel, override)

	return validator.Object(validator.Shape{
		"start": DateString(startLabel, override...),
		"end":   DateString(endLabel, override...),
	}, t.base(messages.KeyObject)...).
		RefineAt("end", func(m map[string]any) bool {
			start, _ := ParseDate(m["start"].(string))
			end, _ := ParseDate(m["end"].(string))
			return !end.Before(start)
		}, t.msg(messages.KeyDateOrder, map[string]any{"start": startLabel}))
}
