// Package template defines the engine seam the HTML renderers execute their
// templates through. The gotemplate subpackage provides the pongo2-backed
// implementation.
package template
