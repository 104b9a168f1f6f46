// Package render fills form templates with captured response data.
//
// Rendering is a literal substitution pass, not a template language: every
// resolved field label is wrapped back into its {{Label}} token and each
// occurrence of that exact substring is replaced with the formatted response
// value. Placeholders without a resolved field stay in the output untouched,
// so authors can keep example tokens in draft text without breaking renders.
package render

import (
	"strings"

	"github.com/goliatone/go-formfill/internal/model"
)

// SequenceSeparator joins multi-value answers in rendered output.
const SequenceSeparator = ", "

var lineBreaks = strings.NewReplacer("\r\n", "<br>", "\r", "<br>", "\n", "<br>")

// Text substitutes response values into form.Text. Absent values render as
// empty strings, sequences join with SequenceSeparator, and a form without
// template text yields "".
func Text(form model.Form, resp model.Response) string {
	if form.Text == "" {
		return ""
	}

	out := form.Text
	for _, pair := range model.Labels(form) {
		token := "{{" + pair.Label + "}}"
		out = strings.ReplaceAll(out, token, resp.Value(pair.ID).Format(SequenceSeparator))
	}
	return out
}

// HTML renders like Text and converts every line break sequence to a <br>
// tag so the result can be embedded in a block element as-is.
func HTML(form model.Form, resp model.Response) string {
	return lineBreaks.Replace(Text(form, resp))
}
