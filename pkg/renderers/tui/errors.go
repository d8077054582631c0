package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrTooManyAttempts is returned when a field is still invalid after the
	// configured number of attempts.
	ErrTooManyAttempts = errors.New("tui: too many invalid attempts")
	// ErrNoItems is returned when a radios field has nothing to choose from.
	ErrNoItems = errors.New("tui: radios field has no items")
)
