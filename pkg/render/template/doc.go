// Package template defines the engine-agnostic template seam used by
// page-producing renderers such as the preview package.
package template
