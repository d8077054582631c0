// Package orchestrator wires option files, field controls, the page registry
// and the renderer registry together so callers can render or validate a
// field, or submit a whole page, from a single entry point.
package orchestrator
