package render

import (
	"context"

	"github.com/goliatone/go-formfill/internal/model"
)

// Renderer converts a form plus one captured response into a byte
// representation (plain text, an HTML fragment, a full preview page, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.Form, resp model.Response) ([]byte, error)
}
