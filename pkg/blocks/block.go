package blocks

import (
	"maps"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Block is a named group of fields meant to be spread into larger objects.
type Block = validator.Shape

// Merge combines blocks into a new one. Later blocks win on duplicate names.
func Merge(blocks ...Block) Block {
	out := make(Block)
	for _, b := range blocks {
		maps.Copy(out, b)
	}
	return out
}

// Object builds an object schema from the merged blocks.
func Object(blocks ...Block) *validator.Schema[map[string]any] {
	return validator.Object(Merge(blocks...))
}
