package analyzer

import "errors"

var (
	// ErrInvalidOptions is returned when the strategy options are missing or incomplete.
	ErrInvalidOptions = errors.New("invalid options")
	// ErrInvalidInput is returned when the dataset lacks a required non-empty collection.
	ErrInvalidInput = errors.New("invalid input data")
	// ErrUnknownStrategy is returned when a strategy name is not registered.
	ErrUnknownStrategy = errors.New("unknown strategy")
)
