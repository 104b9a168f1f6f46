package render

import (
	"context"

	"github.com/goliatone/go-formfill/internal/model"
)

// TextRenderer emits the filled template as plain text.
type TextRenderer struct{}

// Name reports the renderer identifier.
func (TextRenderer) Name() string { return "text" }

// ContentType reports the MIME type of the rendered output.
func (TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render fills the template with the response values.
func (TextRenderer) Render(_ context.Context, form model.Form, resp model.Response) ([]byte, error) {
	return []byte(Text(form, resp)), nil
}

// HTMLRenderer emits the filled template as an HTML fragment with line
// breaks converted to <br> tags.
type HTMLRenderer struct{}

// Name reports the renderer identifier.
func (HTMLRenderer) Name() string { return "html" }

// ContentType reports the MIME type of the rendered output.
func (HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

// Render fills the template and rewrites line breaks for inline display.
func (HTMLRenderer) Render(_ context.Context, form model.Form, resp model.Response) ([]byte, error) {
	return []byte(HTML(form, resp)), nil
}

// NewDefaultRegistry returns a registry preloaded with the built-in text and
// html renderers.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.MustRegister(TextRenderer{})
	registry.MustRegister(HTMLRenderer{})
	return registry
}
