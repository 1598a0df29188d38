package messages

import "errors"

var (
	// ErrInvalidCatalog is returned when a catalog document has the wrong shape.
	ErrInvalidCatalog = errors.New("invalid message catalog")

	// ErrReadCatalog is returned when a catalog file cannot be read.
	ErrReadCatalog = errors.New("failed to read message catalog")
)
