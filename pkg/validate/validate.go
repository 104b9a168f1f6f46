// Package validate checks captured responses against a form's field
// descriptors.
//
// Checking is advisory: the renderer and exporter accept any response, so
// callers decide whether issues block saving. Fields whose branching rule
// evaluates false are skipped entirely, including their required check.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formfill/internal/model"
	"github.com/goliatone/go-formfill/pkg/condition"
)

// Issue flags one problem with a submitted value.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result captures the outcome of checking one response.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Check validates resp against the form's field descriptors. Data keys
// without a matching descriptor are ignored. A malformed branching rule
// leaves its field visible rather than failing the response.
func Check(form model.Form, resp model.Response) Result {
	var issues []Issue

	for _, field := range form.Fields {
		if field.When != "" {
			if visible, err := condition.Eval(field.When, resp.Data); err == nil && !visible {
				continue
			}
		}

		value := resp.Value(field.ID)
		if isEmpty(value) {
			if field.Required {
				issues = append(issues, Issue{Field: field.ID, Message: "required field is missing"})
			}
			continue
		}

		issues = append(issues, checkValue(field, value)...)
	}

	return Result{Valid: len(issues) == 0, Issues: issues}
}

func isEmpty(value model.Value) bool {
	return value.IsAbsent() || strings.TrimSpace(value.String()) == ""
}

// checkValue applies per-scalar checks, unrolling sequences so every
// element is held to the field's enum and type.
func checkValue(field model.Field, value model.Value) []Issue {
	scalars := value.Elements()
	if scalars == nil {
		scalars = []model.Value{value}
	}

	var issues []Issue
	for _, scalar := range scalars {
		issues = append(issues, checkScalar(field, scalar)...)
	}
	return issues
}

func checkScalar(field model.Field, value model.Value) []Issue {
	var issues []Issue
	text := value.String()

	if len(field.Enum) > 0 && !contains(field.Enum, text) {
		issues = append(issues, Issue{
			Field:   field.ID,
			Message: fmt.Sprintf("value %q is not one of the allowed options", text),
		})
	}

	switch field.Type {
	case model.FieldTypeNumber:
		if !isNumeric(value) {
			issues = append(issues, Issue{
				Field:   field.ID,
				Message: fmt.Sprintf("value %q is not a number", text),
			})
		}
	case model.FieldTypeBoolean:
		if text != "true" && text != "false" {
			issues = append(issues, Issue{
				Field:   field.ID,
				Message: fmt.Sprintf("value %q is not true or false", text),
			})
		}
	}

	return issues
}

func isNumeric(value model.Value) bool {
	if _, ok := value.Number(); ok {
		return true
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(value.String()), 64)
	return err == nil
}

func contains(values []string, candidate string) bool {
	for _, value := range values {
		if value == candidate {
			return true
		}
	}
	return false
}
