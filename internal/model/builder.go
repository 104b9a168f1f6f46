package model

import (
	"strings"

	"github.com/goliatone/go-formfill/pkg/placeholder"
)

// SyncFields recomputes the ordered field list from the template text,
// keeping the configuration (type, format, required, enum, rules) of any id
// that already exists. Authoring flows call this after every text edit;
// field order follows first occurrence in the text and a label edit flows
// into the descriptor while the id stays stable only if the new label still
// normalizes to it.
func SyncFields(form *Form) {
	if form == nil {
		return
	}

	existing := make(map[string]Field, len(form.Fields))
	for _, field := range form.Fields {
		existing[field.ID] = field
	}

	pairs := placeholder.Pairs(form.Text)
	if len(pairs) == 0 {
		form.Fields = nil
		return
	}

	fields := make([]Field, 0, len(pairs))
	for _, pair := range pairs {
		field, ok := existing[pair.ID]
		if !ok {
			field = Field{ID: pair.ID, Type: FieldTypeString}
		}
		field.Label = pair.Label
		fields = append(fields, field)
	}
	form.Fields = fields
}

// EnsureFields leaves the form with a usable descriptor list: declared
// fields are normalized, and a form without any gets them derived from the
// text. Idempotent.
func EnsureFields(form *Form) {
	if form == nil {
		return
	}
	if len(form.Fields) > 0 {
		NormalizeFields(form)
		return
	}
	SyncFields(form)
}

// NormalizeFields completes partially specified descriptors in place: a
// missing id is derived from the label, a missing label from the id, and
// surrounding whitespace is trimmed from both. Descriptors left with neither
// id nor label are dropped.
func NormalizeFields(form *Form) {
	if form == nil || len(form.Fields) == 0 {
		return
	}

	fields := make([]Field, 0, len(form.Fields))
	for _, field := range form.Fields {
		field.ID = strings.TrimSpace(field.ID)
		field.Label = strings.TrimSpace(field.Label)

		if field.ID == "" {
			field.ID = placeholder.FieldID(field.Label)
		}
		if field.Label == "" {
			field.Label = Labelize(field.ID)
		}
		if field.ID == "" && field.Label == "" {
			continue
		}
		fields = append(fields, field)
	}

	if len(fields) == 0 {
		form.Fields = nil
		return
	}
	form.Fields = fields
}

// Labels resolves the id→label pairs the renderer substitutes, in priority
// order: the pinned field list, then the precomputed label mapping, then
// extraction over the raw text. The returned slice is ordered (field order,
// sorted ids, or first occurrence respectively) so replacement is
// deterministic.
func Labels(form Form) []placeholder.Pair {
	if len(form.Fields) > 0 {
		pairs := make([]placeholder.Pair, 0, len(form.Fields))
		for _, field := range form.Fields {
			if field.ID == "" {
				continue
			}
			label := field.Label
			if label == "" {
				label = Labelize(field.ID)
			}
			pairs = append(pairs, placeholder.Pair{ID: field.ID, Label: label})
		}
		return pairs
	}

	if len(form.FieldLabels) > 0 {
		return placeholder.SortedPairs(form.FieldLabels)
	}

	return placeholder.Pairs(form.Text)
}
