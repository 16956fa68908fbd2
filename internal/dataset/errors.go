package dataset

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist
	// in the loaded dataset.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput is returned when an input record fails parsing
	// or validation. The wrapping error names the record and field.
	ErrInvalidInput = errors.New("invalid input")
)
