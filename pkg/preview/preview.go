// Package preview wraps a rendered response in a complete HTML document.
//
// The filled template is sanitized before it is embedded, so untrusted
// response values cannot smuggle markup into the page. Theming is optional:
// a go-theme selection contributes CSS custom properties, a stylesheet link
// and data attributes on the document body.
package preview

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formfill/internal/model"
	"github.com/goliatone/go-formfill/pkg/render"
	rendertemplate "github.com/goliatone/go-formfill/pkg/render/template"
	gotemplate "github.com/goliatone/go-formfill/pkg/render/template/gotemplate"
)

const pageTemplate = "templates/page.tmpl"

// themeAssetStylesheet is the manifest asset key resolved into the page's
// stylesheet link.
const themeAssetStylesheet = "page.stylesheet"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	sanitizer        *bluemonday.Policy
	title            string
	themeConfig      *theme.RendererConfig
	selector         theme.ThemeSelector
	provider         theme.ThemeProvider
	themeName        string
	themeVariant     string
}

// WithTemplatesFS supplies an alternate page template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads the page template bundle from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSanitizer overrides the bluemonday policy applied to the rendered
// fragment before it is embedded in the page.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.sanitizer = policy
		}
	}
}

// WithTitle fixes the document title. When unset the form name is used.
func WithTitle(title string) Option {
	return func(cfg *config) {
		cfg.title = strings.TrimSpace(title)
	}
}

// WithThemeSelector resolves the named theme and variant through a go-theme
// selector on every render.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.selector = selector
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// WithThemeProvider resolves the named theme and variant through a go-theme
// provider (registry) on every render. The provider must support selection;
// New reports an error when it does not.
func WithThemeProvider(provider theme.ThemeProvider, name, variant string) Option {
	return func(cfg *config) {
		cfg.provider = provider
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// WithThemeConfig supplies a flattened theme configuration directly,
// bypassing selection.
func WithThemeConfig(themeConfig *theme.RendererConfig) Option {
	return func(cfg *config) {
		cfg.themeConfig = themeConfig
	}
}

// Preview renders a form plus one response into a standalone HTML page.
type Preview struct {
	templates    rendertemplate.TemplateRenderer
	sanitizer    *bluemonday.Policy
	title        string
	themeConfig  *theme.RendererConfig
	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
}

var _ render.Renderer = (*Preview)(nil)

// New constructs the preview renderer applying any provided options.
func New(options ...Option) (*Preview, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	if cfg.provider != nil && cfg.selector == nil {
		selector, ok := cfg.provider.(theme.ThemeSelector)
		if !ok {
			return nil, errors.New("preview: theme provider cannot select themes")
		}
		cfg.selector = selector
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("preview: configure template renderer: %w", err)
		}
		renderer = engine
	}

	sanitizer := cfg.sanitizer
	if sanitizer == nil {
		sanitizer = bluemonday.UGCPolicy()
	}

	return &Preview{
		templates:    renderer,
		sanitizer:    sanitizer,
		title:        cfg.title,
		themeConfig:  cfg.themeConfig,
		selector:     cfg.selector,
		themeName:    cfg.themeName,
		themeVariant: cfg.themeVariant,
	}, nil
}

// Name reports the renderer identifier.
func (p *Preview) Name() string {
	return "page"
}

// ContentType reports the MIME type for generated documents.
func (p *Preview) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the preview page for one response.
func (p *Preview) Render(_ context.Context, form model.Form, resp model.Response) ([]byte, error) {
	cfg, err := p.resolveTheme()
	if err != nil {
		return nil, err
	}

	fragment := p.sanitizer.Sanitize(render.HTML(form, resp))

	data := map[string]any{
		"title":   p.pageTitle(form),
		"content": fragment,
	}
	if cfg != nil {
		data["theme_name"] = cfg.Theme
		data["theme_variant"] = cfg.Variant
		data["css_vars"] = cssVarsStyle(cfg.CSSVars)
		if cfg.AssetURL != nil {
			data["stylesheet_url"] = cfg.AssetURL(themeAssetStylesheet)
		}
	}

	out, err := p.templates.RenderTemplate(pageTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("preview: render page: %w", err)
	}
	return []byte(out), nil
}

func (p *Preview) resolveTheme() (*theme.RendererConfig, error) {
	if p.themeConfig != nil {
		return p.themeConfig, nil
	}
	if p.selector == nil {
		return nil, nil
	}
	selection, err := p.selector.Select(p.themeName, p.themeVariant)
	if err != nil {
		return nil, fmt.Errorf("preview: select theme %q: %w", p.themeName, err)
	}
	return ConfigFromSelection(selection), nil
}

func (p *Preview) pageTitle(form model.Form) string {
	if p.title != "" {
		return p.title
	}
	if name := strings.TrimSpace(form.Name); name != "" {
		return name
	}
	return "Form preview"
}
