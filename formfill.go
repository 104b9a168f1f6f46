// Package formfill turns form templates into personalized documents. A form
// declares its fillable slots as `{{Label}}` placeholders in plain text,
// responses map the derived field ids to answers, and renderers substitute
// the answers back into the template. This file is the facade: thin wrappers
// over the pkg packages so the common flows are one import away.
package formfill

import (
	"github.com/goliatone/go-formfill/internal/model"
	"github.com/goliatone/go-formfill/pkg/export"
	"github.com/goliatone/go-formfill/pkg/placeholder"
	"github.com/goliatone/go-formfill/pkg/render"
)

// Core types re-exported so callers rarely need the model package directly.
type (
	Form     = model.Form
	Field    = model.Field
	Response = model.Response
	Value    = model.Value
)

// Extract scans a template body and returns the field id → label mapping of
// every placeholder it contains.
func Extract(text string) map[string]string {
	return placeholder.Extract(text)
}

// RenderText substitutes a response's answers into the form template.
func RenderText(form Form, resp Response) string {
	return render.Text(form, resp)
}

// RenderHTML renders the template and converts line breaks to <br> tags.
func RenderHTML(form Form, resp Response) string {
	return render.HTML(form, resp)
}

// ExportCSV flattens responses into a CSV document, one row per response,
// with columns for the response id, respondent, timestamp, and every form
// field. Forms that declare no fields get them derived from the template
// text first, so hand-built forms export the same columns loaded ones do.
func ExportCSV(form Form, responses []Response, opts ...export.Option) string {
	model.EnsureFields(&form)
	return export.CSV(form, responses, opts...)
}
