// Package blocks provides reusable groups of fields for list endpoints and
// content forms.
//
// A Block is a validator.Shape. Blocks are spread into larger objects with
// Merge or turned into a schema directly with Object:
//
//	query := blocks.Object(blocks.ListQueryFields())
//	out, err := query.Parse(map[string]any{"page": "2"})
//	// out["page"] == 2, out["limit"] == 10, out["filters"] == map[string]any{}
//
//	article := blocks.Object(blocks.StrictSEOFields(), blocks.Block{
//	    "title":       blocks.Title,
//	    "description": blocks.Description,
//	})
//
// BuildPagination and BuildListQuery accept options for the limit ceiling and
// the allowed sort keys. LoadConfig reads the limits from
// FIELDKIT_DEFAULT_LIMIT and FIELDKIT_MAX_LIMIT.
package blocks
