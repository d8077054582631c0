// Package model defines the configuration surface of a single form field and
// the values derived from it. Options carries the raw, host-supplied strings
// (width selection, input type, length and numeric limits, toggles, prefix and
// suffix copy) exactly as they arrive from the host form. Resolve turns them
// into a Configuration: a normalised, internally consistent constraint set the
// validation pipeline consumes without re-deriving anything per rule. Outcome
// is the immutable result of one validation pass.
//
// Resolution never fails. Missing or malformed options degrade to "no
// constraint" so a misconfigured field still renders and validates the rules it
// can make sense of.
package model
