package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested document does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidName indicates a name that cannot identify a document
	ErrInvalidName = errors.New("invalid document name")
)
