package formfield

import (
	"embed"
	"io/fs"
)

//go:embed pkg/runtime/assets/*.js
var embeddedRuntimeAssets embed.FS

// RuntimeAssetsFS exposes the browser helpers the rendered markup expects,
// such as the scrollToAndFocus target of error summary links.
//
// Typical mount:
//
//	mux.Handle("/formfield/",
//	  http.StripPrefix("/formfield/",
//	    http.FileServerFS(formfield.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedRuntimeAssets, "pkg/runtime/assets")
	if err != nil {
		return embeddedRuntimeAssets
	}
	return sub
}
