package openapi

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formfill/internal/model"
	"github.com/goliatone/go-formfill/pkg/placeholder"
)

// FormFromOperation maps an operation's request body schema onto a form
// definition. Property names turn into display labels via the word-splitting
// labeler, field ids are the canonical form of those labels, and nested
// object properties flatten with the parent label as a prefix. Property
// order is alphabetical so the result is stable across runs.
func FormFromOperation(op Operation) model.Form {
	name := strings.TrimSpace(op.Summary)
	if name == "" {
		name = op.ID
	}
	return model.Form{
		Name:   name,
		Fields: fieldsFromSchema("", op.RequestBody),
	}
}

// TemplateScaffold produces a starter template body for a form: one
// "Label: {{Label}}" line per field. Filling in the text around the
// placeholders is the author's job.
func TemplateScaffold(form model.Form) string {
	if len(form.Fields) == 0 {
		return ""
	}
	var b strings.Builder
	for _, field := range form.Fields {
		b.WriteString(field.Label)
		b.WriteString(": {{")
		b.WriteString(field.Label)
		b.WriteString("}}\n")
	}
	return b.String()
}

func fieldsFromSchema(prefix string, schema Schema) []model.Field {
	if len(schema.Properties) == 0 {
		return nil
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var fields []model.Field
	for _, name := range names {
		prop := schema.Properties[name]
		label := joinLabel(prefix, model.Labelize(name))

		if len(prop.Properties) > 0 {
			fields = append(fields, fieldsFromSchema(label, prop)...)
			continue
		}

		fields = append(fields, model.Field{
			ID:       placeholder.FieldID(label),
			Label:    label,
			Type:     fieldType(prop),
			Format:   prop.Format,
			Required: required[name],
			Enum:     enumStrings(prop),
			Default:  stringify(prop.Default),
			Help:     prop.Description,
		})
	}
	return fields
}

func joinLabel(prefix, label string) string {
	if prefix == "" {
		return label
	}
	return prefix + " " + label
}

func fieldType(schema Schema) model.FieldType {
	switch schema.Type {
	case "integer", "number":
		return model.FieldTypeNumber
	case "boolean":
		return model.FieldTypeBoolean
	case "array":
		return model.FieldTypeArray
	default:
		return model.FieldTypeString
	}
}

// enumStrings flattens enum values to strings. Array fields take their
// choices from the item schema.
func enumStrings(schema Schema) []string {
	values := schema.Enum
	if len(values) == 0 && schema.Items != nil {
		values = schema.Items.Enum
	}
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value == nil {
			continue
		}
		out = append(out, stringify(value))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}
