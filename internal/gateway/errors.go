package gateway

import "errors"

var (
	// ErrUnsupportedFormat is returned when a file extension cannot be decoded
	// for the requested collection.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrIncompleteSource is returned when a split data source lacks one of its part paths.
	ErrIncompleteSource = errors.New("sellers, products and purchase records paths are all required")
)
