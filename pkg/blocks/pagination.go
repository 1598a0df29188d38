package blocks

import (
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/fieldkit/pkg/fragments"
	"github.com/dmitrymomot/fieldkit/pkg/messages"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Defaults of the fixed pagination block.
const (
	DefaultPage     = 1
	DefaultLimit    = 10
	DefaultMaxLimit = 100
)

// Sort directions accepted by list-query sort maps.
var SortDirections = []string{"asc", "desc"}

var (
	pagination = Block{
		"page":  validator.Default(fragments.PositiveIntCoerce("Page"), DefaultPage),
		"limit": validator.Default(fragments.PositiveIntCoerce("Limit"), DefaultLimit),
	}

	listQuery = Merge(pagination, Block{
		"filters": validator.Default(fragments.OpenMapping("Filters"), map[string]any{}),
		"sort":    validator.Default(fragments.OpenMapping("Sort"), map[string]any{}),
		"search":  fragments.OptionalStringTrimmed("Search"),
	})
)

// PaginationFields returns {page, limit}: positive integers defaulting to 1
// and 10. Numeric text such as a query-string "2" is accepted.
func PaginationFields() Block {
	return maps.Clone(pagination)
}

// ListQueryFields returns the pagination fields plus open filters and sort
// maps (default empty) and an optional trimmed search string.
func ListQueryFields() Block {
	return maps.Clone(listQuery)
}

// Option configures BuildPagination and BuildListQuery.
type Option func(*options)

type options struct {
	defaultLimit int
	maxLimit     int
	sortKeys     []string
}

func newOptions(opts []Option) options {
	o := options{defaultLimit: DefaultLimit, maxLimit: DefaultMaxLimit}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxLimit < 1 {
		o.maxLimit = DefaultMaxLimit
	}
	if o.defaultLimit < 1 || o.defaultLimit > o.maxLimit {
		o.defaultLimit = min(DefaultLimit, o.maxLimit)
	}
	return o
}

// WithMaxLimit sets the largest accepted limit.
func WithMaxLimit(n int) Option {
	return func(o *options) { o.maxLimit = n }
}

// WithDefaultLimit sets the limit used when none is given.
// It is clamped to the max limit.
func WithDefaultLimit(n int) Option {
	return func(o *options) { o.defaultLimit = n }
}

// WithSortKeys restricts the sort map to the given field names.
func WithSortKeys(keys ...string) Option {
	return func(o *options) { o.sortKeys = slices.Clone(keys) }
}

// BuildPagination returns {page, limit} with a caller-chosen limit ceiling.
func BuildPagination(opts ...Option) Block {
	o := newOptions(opts)
	return Block{
		"page":  validator.Default(fragments.PositiveIntCoerce("Page"), DefaultPage),
		"limit": validator.Default(fragments.BoundedIntCoerce(o.maxLimit, "Limit"), o.defaultLimit),
	}
}

// BuildListQuery returns BuildPagination plus filters, sort and search. When
// sort keys are configured, the sort map may only name those keys and each
// direction must be "asc" or "desc".
func BuildListQuery(opts ...Option) Block {
	o := newOptions(opts)

	sort := validator.Default(fragments.OpenMapping("Sort"), map[string]any{})
	if len(o.sortKeys) > 0 {
		keys := o.sortKeys
		msg := messages.Message("Sort", messages.KeySortKey, nil, map[string]any{"keys": strings.Join(keys, ", ")})
		direction := fragments.Enum(SortDirections, "Sort direction")
		sort = validator.Default(
			validator.Map(fragments.RecordOf(direction, "Sort").Refine(func(m map[string]string) bool {
				for k := range m {
					if !slices.Contains(keys, k) {
						return false
					}
				}
				return true
			}, validator.Message{
				Text:   msg,
				Key:    messages.KeySortKey.TranslationKey(),
				Values: map[string]any{"field": "Sort", "keys": strings.Join(keys, ", ")},
			}), func(m map[string]string) map[string]any {
				out := make(map[string]any, len(m))
				for k, v := range m {
					out[k] = v
				}
				return out
			}),
			map[string]any{},
		)
	}

	return Merge(BuildPagination(opts...), Block{
		"filters": validator.Default(fragments.OpenMapping("Filters"), map[string]any{}),
		"sort":    sort,
		"search":  fragments.OptionalStringTrimmed("Search"),
	})
}
