package govuk

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.njk
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in template bundle rooted at its template
// directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
