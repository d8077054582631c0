package field

import "errors"

var (
	// ErrMissingIdentifier is returned when options carry no unique
	// identifier.
	ErrMissingIdentifier = errors.New("field: unique identifier is required")
	// ErrUnknownItem is returned when a radios selection names no configured
	// item.
	ErrUnknownItem = errors.New("field: unknown item")
)
