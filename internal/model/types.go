package model

import "time"

// FieldType is the simplified enum for the field kinds a form can declare.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeArray   FieldType = "array"
)

// Field describes one fillable slot in a form. ID is the canonical lookup key
// for response data; Label is the human-readable name as it appears inside
// placeholder tokens. Struct fields are annotated so loaders can decode form
// documents from JSON or YAML directly.
type Field struct {
	ID       string            `json:"id" yaml:"id"`
	Label    string            `json:"label" yaml:"label"`
	Type     FieldType         `json:"type,omitempty" yaml:"type,omitempty"`
	Format   string            `json:"format,omitempty" yaml:"format,omitempty"`
	Required bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Enum     []string          `json:"enum,omitempty" yaml:"enum,omitempty"`
	Default  string            `json:"default,omitempty" yaml:"default,omitempty"`
	Help     string            `json:"help,omitempty" yaml:"help,omitempty"`
	When     string            `json:"when,omitempty" yaml:"when,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Form is the template record shared by the extractor, renderer, and
// exporter. Text carries the raw template body with `{{Label}}` tokens.
// Fields, when non-empty, pins the id→label mapping so identifiers stay
// stable even if the text is edited elsewhere; FieldLabels is a lighter
// precomputed mapping used when no descriptor list exists. An entirely zero
// Form is a degenerate but valid input everywhere: it renders to "" and
// exports a header-only CSV.
type Form struct {
	Name        string            `json:"name,omitempty" yaml:"name,omitempty"`
	Text        string            `json:"text" yaml:"text"`
	Fields      []Field           `json:"fields,omitempty" yaml:"fields,omitempty"`
	FieldLabels map[string]string `json:"fieldLabels,omitempty" yaml:"fieldLabels,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Response is one submission against a form: a respondent identity, a
// submission timestamp, and the answer per field id. Data values use the
// Value union; a missing key and an absent Value behave identically.
type Response struct {
	ID          string            `json:"id,omitempty" yaml:"id,omitempty"`
	Respondent  string            `json:"respondent,omitempty" yaml:"respondent,omitempty"`
	SubmittedAt time.Time         `json:"submittedAt,omitempty" yaml:"submittedAt,omitempty"`
	Data        map[string]Value  `json:"data" yaml:"data"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Value returns the answer stored for the given field id. Reading a missing
// key (or a nil Data map) yields an absent Value, never an error.
func (r Response) Value(fieldID string) Value {
	return r.Data[fieldID]
}
