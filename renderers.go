package formfill

import (
	"github.com/goliatone/go-formfill/pkg/preview"
	"github.com/goliatone/go-formfill/pkg/render"
)

// Renderer is the pluggable output stage shared by the registry and the CLI.
type Renderer = render.Renderer

// NewDefaultRegistry builds a registry holding every built-in renderer:
// "text", "html", and the sanitized "page" preview. Preview options configure
// the page renderer only.
func NewDefaultRegistry(previewOpts ...preview.Option) (*render.Registry, error) {
	registry := render.NewDefaultRegistry()

	page, err := preview.New(previewOpts...)
	if err != nil {
		return nil, err
	}
	if err := registry.Register(page); err != nil {
		return nil, err
	}

	return registry, nil
}
