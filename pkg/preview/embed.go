package preview

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded page template bundle for consumers that
// want to restyle the built-in preview.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
